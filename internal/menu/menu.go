package menu

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Item represents a menu entry. Items with a non-nil Submenu are branches;
// everything else is a leaf.
type Item struct {
	ID          string
	Label       string
	Accelerator string
	Action      string
	Command     string
	Disabled    bool
	Separator   bool
	Submenu     []Item
}

// IsSubmenu reports whether the item opens a nested menu.
func (i Item) IsSubmenu() bool {
	return i.Submenu != nil
}

// Selectable reports whether keyboard or pointer navigation may land on the item.
func (i Item) Selectable() bool {
	return !i.Disabled && !i.Separator
}

// Context carries runtime data handed to action handlers.
type Context struct {
	Title    string
	MenuFile string
	Window   any
}

// Action executes the behaviour bound to a leaf item.
type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	Info string
	Err  error
}

// StyleToggleMsg asks the UI to flip between horizontal and vertical menus.
type StyleToggleMsg struct{}

// ReloadMsg carries a freshly loaded menu tree to the UI.
type ReloadMsg struct {
	Items  []Item
	Source string
}

const (
	// OverflowID identifies the synthetic item that collects overflowed entries.
	OverflowID = "overflow"
	// HamburgerID identifies the single button of the vertical menu style.
	HamburgerID = "menu-button"
)

// OverflowItem builds the synthetic "more" entry holding the overflowed items.
func OverflowItem(items []Item) Item {
	if items == nil {
		items = []Item{}
	}
	return Item{ID: OverflowID, Label: "…", Submenu: items}
}

// HamburgerItem wraps the whole menu into the single vertical-style button.
func HamburgerItem(items []Item) Item {
	if items == nil {
		items = []Item{}
	}
	return Item{ID: HamburgerID, Label: "Menu", Submenu: items}
}

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// Count returns the number of items in the tree, separators included.
func Count(items []Item) int {
	total := 0
	for _, item := range items {
		total++
		total += Count(item.Submenu)
	}
	return total
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == ':'
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
