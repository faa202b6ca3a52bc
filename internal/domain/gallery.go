package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Labeled is implemented by every record that can be shown as an image card.
// Key is unique within its own list; Label is the descriptive text exposed as
// the image's alt attribute and card heading.
type Labeled interface {
	Key() int
	Label() string
}

// Card is a Labeled record that also carries an image and a caption.
type Card interface {
	Labeled
	ImageSource() string
	CaptionText() string
}

// GalleryCategory tags an atmosphere photo.
type GalleryCategory string

const (
	CategoryGames     GalleryCategory = "games"
	CategoryNightlife GalleryCategory = "nightlife"
)

var titleCaser = cases.Title(language.English)

// DisplayName returns the badge text for the category, e.g. "Games".
func (c GalleryCategory) DisplayName() string {
	return titleCaser.String(string(c))
}

// GalleryImage is a photo of the pub's atmosphere.
type GalleryImage struct {
	ID       int             `yaml:"id" validate:"gte=0"`
	Src      string          `yaml:"src" validate:"required"`
	Alt      string          `yaml:"alt" validate:"required"`
	Category GalleryCategory `yaml:"category" validate:"omitempty,oneof=games nightlife"`
	Caption  string          `yaml:"caption"`
}

func (g GalleryImage) Key() int            { return g.ID }
func (g GalleryImage) Label() string       { return g.Alt }
func (g GalleryImage) ImageSource() string { return g.Src }
func (g GalleryImage) CaptionText() string { return g.Caption }

// StaffImage is a photo of one or more staff members.
type StaffImage struct {
	ID      int    `yaml:"id" validate:"gte=0"`
	Src     string `yaml:"src" validate:"required"`
	Alt     string `yaml:"alt" validate:"required"`
	Caption string `yaml:"caption"`
}

func (s StaffImage) Key() int            { return s.ID }
func (s StaffImage) Label() string       { return s.Alt }
func (s StaffImage) ImageSource() string { return s.Src }
func (s StaffImage) CaptionText() string { return s.Caption }

// TeamMember is a named portrait in one of the team listings.
type TeamMember struct {
	ID       int    `yaml:"id" validate:"gte=0"`
	ImageURL string `yaml:"image_url" validate:"required"`
	Name     string `yaml:"name" validate:"required"`
	Caption  string `yaml:"caption"`
}

func (t TeamMember) Key() int            { return t.ID }
func (t TeamMember) Label() string       { return t.Name }
func (t TeamMember) ImageSource() string { return t.ImageURL }
func (t TeamMember) CaptionText() string { return t.Caption }

