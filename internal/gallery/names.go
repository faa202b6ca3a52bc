package gallery

import (
	"fmt"

	"github.com/madhatterpub/site/internal/domain"
)

// Gallery names, used in URLs, session keys and element ids.
const (
	Atmosphere = "atmosphere"
	Staff      = "staff"
	Team       = "team"
	PubTeam    = "pub-team"
)

// DialogGalleries lists the galleries whose cards open an enlarged view.
var DialogGalleries = []string{Staff, PubTeam}

// CheckDialog returns domain.ErrUnknownGallery unless name is a dialog gallery.
func CheckDialog(name string) error {
	for _, n := range DialogGalleries {
		if n == name {
			return nil
		}
	}
	return fmt.Errorf("gallery %q: %w", name, domain.ErrUnknownGallery)
}
