// Package menu implements the food/drinks tab switcher and the per-category
// accordion state of the menu section.
package menu

import (
	"github.com/madhatterpub/site/internal/domain"
)

// Controller owns the active tab and the set of expanded categories of one
// menu instance. Not safe for concurrent use; each request builds its own.
type Controller struct {
	lists    map[domain.Tab][]domain.MenuCategory
	active   domain.Tab
	expanded map[string]bool
}

// New creates a controller over the two category lists. The food tab is
// active and its first category is expanded.
func New(food, drinks []domain.MenuCategory) *Controller {
	c := &Controller{
		lists: map[domain.Tab][]domain.MenuCategory{
			domain.TabFood:   food,
			domain.TabDrinks: drinks,
		},
	}
	c.SetActiveTab(domain.DefaultTab)
	return c
}

// SetActiveTab switches the visible list and resets expansion to the first
// category of that list. Expansion state does not survive a tab switch.
func (c *Controller) SetActiveTab(tab domain.Tab) {
	c.active = tab
	c.expanded = make(map[string]bool)
	if cats := c.lists[tab]; len(cats) > 0 {
		c.expanded[cats[0].ID] = true
	}
}

// ActiveTab returns the visible tab.
func (c *Controller) ActiveTab() domain.Tab {
	return c.active
}

// Categories returns the categories of the active tab.
func (c *Controller) Categories() []domain.MenuCategory {
	return c.lists[c.active]
}

// IsExpanded reports whether the category with id is open in the active tab.
func (c *Controller) IsExpanded(id string) bool {
	return c.expanded[id]
}

// Toggle flips one category. Other categories are unaffected. Ids that are
// not part of the active list are ignored.
func (c *Controller) Toggle(id string) {
	if !c.has(id) {
		return
	}
	if c.expanded[id] {
		delete(c.expanded, id)
		return
	}
	c.expanded[id] = true
}

// Expand opens one category of the active list.
func (c *Controller) Expand(id string) {
	if c.has(id) {
		c.expanded[id] = true
	}
}

// Collapse closes one category.
func (c *Controller) Collapse(id string) {
	delete(c.expanded, id)
}

// ExpandedIDs returns the open categories in display order. The result is
// never nil, so it can be fed back into Restore.
func (c *Controller) ExpandedIDs() []string {
	ids := []string{}
	for _, cat := range c.Categories() {
		if c.expanded[cat.ID] {
			ids = append(ids, cat.ID)
		}
	}
	return ids
}

// Restore applies a previously saved state. An expanded list of nil keeps the
// tab's default expansion; an empty non-nil list collapses everything.
func (c *Controller) Restore(tab domain.Tab, expanded []string) {
	c.SetActiveTab(tab)
	if expanded == nil {
		return
	}
	c.expanded = make(map[string]bool)
	for _, id := range expanded {
		c.Expand(id)
	}
}

func (c *Controller) has(id string) bool {
	for _, cat := range c.Categories() {
		if cat.ID == id {
			return true
		}
	}
	return false
}
