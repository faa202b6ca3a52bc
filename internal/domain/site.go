package domain

// Hero is the banner at the top of the page.
type Hero struct {
	Images  []string `yaml:"images" validate:"omitempty,dive,required"`
	Title   string   `yaml:"title"`
	Tagline string   `yaml:"tagline"`
	CTAText string   `yaml:"cta_text"`
	CTAHref string   `yaml:"cta_href"`
}

// Landmark is a nearby attraction listed in the location section.
type Landmark struct {
	Name        string `yaml:"name" validate:"required"`
	Distance    string `yaml:"distance" validate:"required"`
	Description string `yaml:"description"`
}

// Location holds the contact card data.
type Location struct {
	Address   string     `yaml:"address" validate:"required"`
	Phone     string     `yaml:"phone" validate:"required"`
	Email     string     `yaml:"email" validate:"omitempty,email"`
	Landmarks []Landmark `yaml:"landmarks" validate:"dive"`
}
