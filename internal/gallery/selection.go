// Package gallery holds the click-to-enlarge selection state shared by the
// image grids.
package gallery

import (
	"fmt"

	"github.com/madhatterpub/site/internal/domain"
)

// Selection tracks at most one opened item. The zero value has nothing
// selected and is ready to use.
type Selection[T domain.Labeled] struct {
	item T
	set  bool
}

// Select makes item the current selection, replacing any prior one.
func (s *Selection[T]) Select(item T) {
	s.item = item
	s.set = true
}

// Clear removes the current selection.
func (s *Selection[T]) Clear() {
	var zero T
	s.item = zero
	s.set = false
}

// Selected returns the current selection, if any.
func (s *Selection[T]) Selected() (T, bool) {
	return s.item, s.set
}

// Visible reports whether the enlarged overlay should be rendered.
func (s *Selection[T]) Visible() bool {
	return s.set
}

// Gallery is an ordered list of image records plus its selection.
type Gallery[T domain.Labeled] struct {
	Name      string
	Items     []T
	Selection Selection[T]
}

// New creates a gallery over items. Items are used as given; duplicate keys
// are the caller's concern.
func New[T domain.Labeled](name string, items []T) *Gallery[T] {
	return &Gallery[T]{Name: name, Items: items}
}

// Find returns the first item with the given key.
func (g *Gallery[T]) Find(id int) (T, error) {
	for _, it := range g.Items {
		if it.Key() == id {
			return it, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s image %d: %w", g.Name, id, domain.ErrNotFound)
}

// SelectByID selects the item with the given key.
func (g *Gallery[T]) SelectByID(id int) error {
	it, err := g.Find(id)
	if err != nil {
		return err
	}
	g.Selection.Select(it)
	return nil
}

// SelectedID returns the key of the current selection, or 0 and false.
func (g *Gallery[T]) SelectedID() (int, bool) {
	it, ok := g.Selection.Selected()
	if !ok {
		return 0, false
	}
	return it.Key(), true
}
