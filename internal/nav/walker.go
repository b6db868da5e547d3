package nav

import (
	"github.com/atomicstack/tui-titlebar/internal/menu"
	"github.com/atomicstack/tui-titlebar/internal/ui/state"
)

// Role is the accessibility role of a rendered element.
type Role string

const (
	RoleMenuBar   Role = "menubar"
	RoleMenu      Role = "menu"
	RoleMenuItem  Role = "menuitem"
	RoleSeparator Role = "separator"
)

// ContainerRole returns the role of the list drawn at depth.
func ContainerRole(depth int) Role {
	if depth == 0 {
		return RoleMenuBar
	}
	return RoleMenu
}

// Node is the derived render state of one entry.
type Node struct {
	Index    int
	Depth    int
	Item     menu.Item
	Label    menu.SplitLabel
	Role     Role
	Selected bool
	Open     bool
	Focused  bool
	Hidden   bool
	Disabled bool
	HasPopup bool
	Children []Node
}

// Tree holds the walked top level.
type Tree struct {
	Nodes []Node
}

// OpenLevels returns the nodes of every open list from the bar downwards.
func (t Tree) OpenLevels() [][]Node {
	levels := [][]Node{t.Nodes}
	current := t.Nodes
	for {
		var next []Node
		for _, n := range current {
			if n.Open {
				next = n.Children
				break
			}
		}
		if next == nil {
			return levels
		}
		levels = append(levels, next)
		current = next
	}
}

// Walk derives the render state of display for the given path. focus is the
// top-level index holding keyboard focus and visible reports whether a
// top-level index is drawn.
func Walk(display []menu.Item, path state.Path, focus int, visible func(int) bool) Tree {
	return Tree{Nodes: walkLevel(display, path, 0, focus, visible)}
}

func walkLevel(items []menu.Item, path state.Path, depth, focus int, visible func(int) bool) []Node {
	nodes := make([]Node, len(items))
	selected := path.At(depth)
	for i, item := range items {
		n := Node{
			Index:    i,
			Depth:    depth,
			Item:     item,
			Label:    menu.Split(item.Label),
			Role:     RoleMenuItem,
			Selected: i == selected,
			Disabled: !item.Selectable(),
			HasPopup: item.IsSubmenu(),
		}
		if item.Separator {
			n.Role = RoleSeparator
		}
		if depth == 0 {
			n.Focused = i == focus
			if visible != nil {
				n.Hidden = !visible(i)
			}
		}
		n.Open = n.Selected && n.HasPopup && !n.Disabled
		if n.Open {
			n.Children = walkLevel(item.Submenu, path, depth+1, focus, visible)
		}
		nodes[i] = n
	}
	return nodes
}

// Walk derives the render state of the engine's current menu.
func (e *Engine) Walk() Tree {
	return Walk(e.display, e.state.Path, e.focus, e.Visible)
}
