package domain

import (
	"fmt"
	"strings"
)

// Tab is one of the two top-level menu lists.
type Tab string

const (
	TabFood   Tab = "food"
	TabDrinks Tab = "drinks"
)

// DefaultTab is the tab shown when a visitor has not chosen one.
const DefaultTab = TabFood

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabFood, TabDrinks}

// ParseTab converts a raw tab name into a Tab.
func ParseTab(s string) (Tab, error) {
	switch Tab(strings.ToLower(strings.TrimSpace(s))) {
	case TabFood:
		return TabFood, nil
	case TabDrinks:
		return TabDrinks, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Title returns the tab trigger text.
func (t Tab) Title() string {
	switch t {
	case TabDrinks:
		return "Drinks Menu"
	default:
		return "Food Menu"
	}
}

// MenuItem is a single dish or drink. Price is display text and is never
// parsed. Image and Tags are optional.
type MenuItem struct {
	ID          string   `yaml:"id" validate:"required"`
	Name        string   `yaml:"name" validate:"required"`
	Description string   `yaml:"description"`
	Price       string   `yaml:"price" validate:"required"`
	Image       *string  `yaml:"image,omitempty" validate:"omitempty,min=1"`
	Tags        []string `yaml:"tags,omitempty" validate:"omitempty,dive,required"`
}

// HasImage reports whether the item carries an image reference.
func (m MenuItem) HasImage() bool {
	return m.Image != nil && *m.Image != ""
}

// MenuCategory groups menu items under a heading.
type MenuCategory struct {
	ID    string     `yaml:"id" validate:"required"`
	Name  string     `yaml:"name" validate:"required"`
	Items []MenuItem `yaml:"items" validate:"unique=ID,dive"`
}
