// Package menu provides a small menu system the hosts draw over the maze.
// A Menu does not own a loop: the host feeds it intents and draws it each frame.
package menu

import (
	engineinput "mazeroll/pkg/engine/input"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler supplies a menu's items and reacts to activation.
type MenuHandler interface {
	// GetTitle returns the menu title.
	GetTitle() string
	// GetMenuItems is called after every intent so items can refresh.
	GetMenuItems() []MenuItem
	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
}

// Menu is an open menu: its items, the selection and the last help text.
type Menu struct {
	handler  MenuHandler
	items    []MenuItem
	selected int
	helpText string
	closed   bool
}

// Open creates a menu for the handler with the first selectable item selected.
func Open(handler MenuHandler) *Menu {
	m := &Menu{handler: handler}
	m.refresh()
	return m
}

// Title returns the handler's title
func (m *Menu) Title() string {
	return m.handler.GetTitle()
}

// Items returns the current items
func (m *Menu) Items() []MenuItem {
	return m.items
}

// Selected returns the index of the selected item
func (m *Menu) Selected() int {
	return m.selected
}

// Closed reports whether the menu has been dismissed
func (m *Menu) Closed() bool {
	return m.closed
}

// Instructions returns the help text from the last activation, or the
// selected item's help.
func (m *Menu) Instructions() string {
	if m.helpText != "" {
		return m.helpText
	}
	if m.selected >= 0 && m.selected < len(m.items) {
		return m.items[m.selected].GetHelpText()
	}
	return ""
}

// HandleIntent applies one intent. Forward and back move the selection with
// wrap-around, confirm activates, and the menu key or quit dismisses it.
func (m *Menu) HandleIntent(intent engineinput.Intent) {
	if m.closed {
		return
	}

	switch intent.Action {
	case engineinput.ActionMoveForward, engineinput.ActionStrafeLeft:
		m.move(-1)
	case engineinput.ActionMoveBack, engineinput.ActionStrafeRight:
		m.move(1)
	case engineinput.ActionConfirm, engineinput.ActionNextLevel:
		if m.selected >= 0 && m.selected < len(m.items) && m.items[m.selected].IsSelectable() {
			shouldClose, helpText := m.handler.OnActivate(m.items[m.selected], m.selected)
			m.helpText = helpText
			if shouldClose {
				m.closed = true
				return
			}
		}
	case engineinput.ActionOpenMenu, engineinput.ActionQuit:
		m.closed = true
		return
	default:
		// Ignore other actions while in menu
		return
	}
	m.refresh()
}

// move steps the selection to the next selectable item in the given
// direction, wrapping around the ends.
func (m *Menu) move(step int) {
	n := len(m.items)
	for i := 1; i < n; i++ {
		idx := ((m.selected+step*i)%n + n) % n
		if m.items[idx].IsSelectable() {
			m.selected = idx
			m.helpText = "" // Clear help text when navigating
			return
		}
	}
}

// refresh reloads the items, keeping the selection if it is still valid.
func (m *Menu) refresh() {
	m.items = m.handler.GetMenuItems()
	if m.selected < len(m.items) && m.items[m.selected].IsSelectable() {
		return
	}
	m.selected = 0
	for i, item := range m.items {
		if item.IsSelectable() {
			m.selected = i
			return
		}
	}
}
