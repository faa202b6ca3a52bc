package view

import (
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/madhatterpub/site/internal/domain"
)

const (
	stateSessionName = "ui-state"
	keyMenuTab       = "menu.tab"
	keyMenuExpanded  = "menu.expanded"
	keyGalleryPrefix = "gallery."
)

// UIState is the per-visitor component state: the active menu tab, the open
// menu categories and the opened image of each dialog gallery.
type UIState struct {
	Tab domain.Tab
	// Expanded is nil when the visitor has not touched the accordion, which
	// means "first category of the active tab".
	Expanded   []string
	Selections map[string]int
}

// DefaultState is what a first-time visitor sees.
func DefaultState() UIState {
	return UIState{Tab: domain.DefaultTab, Selections: map[string]int{}}
}

// Selected returns the opened image id of a gallery.
func (s UIState) Selected(gallery string) (int, bool) {
	id, ok := s.Selections[gallery]
	return id, ok
}

// LoadState reads the visitor's UI state from the session. Missing or
// unreadable values fall back to the defaults.
func LoadState(c echo.Context) UIState {
	st := DefaultState()

	sess, err := session.Get(stateSessionName, c)
	if err != nil {
		return st
	}

	if raw, ok := sess.Values[keyMenuTab].(string); ok {
		if tab, err := domain.ParseTab(raw); err == nil {
			st.Tab = tab
		}
	}
	if ids, ok := sess.Values[keyMenuExpanded].([]string); ok {
		st.Expanded = append([]string{}, ids...)
	}
	for k, v := range sess.Values {
		key, ok := k.(string)
		if !ok || !strings.HasPrefix(key, keyGalleryPrefix) {
			continue
		}
		if id, ok := v.(int); ok {
			st.Selections[strings.TrimPrefix(key, keyGalleryPrefix)] = id
		}
	}
	return st
}

// SaveState writes st to the visitor's session cookie.
func SaveState(c echo.Context, st UIState) error {
	sess, err := session.Get(stateSessionName, c)
	if err != nil {
		return err
	}

	sess.Values[keyMenuTab] = string(st.Tab)
	if st.Expanded == nil {
		delete(sess.Values, keyMenuExpanded)
	} else {
		sess.Values[keyMenuExpanded] = append([]string{}, st.Expanded...)
	}

	for k := range sess.Values {
		if key, ok := k.(string); ok && strings.HasPrefix(key, keyGalleryPrefix) {
			delete(sess.Values, k)
		}
	}
	for name, id := range st.Selections {
		sess.Values[keyGalleryPrefix+name] = id
	}
	return sess.Save(c.Request(), c.Response())
}
