package layouts

const siteName = "Mad Hatter Pub"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" && title != siteName {
		return title + " - " + siteName
	}
	return siteName
}
