package nav

import (
	"github.com/atomicstack/tui-titlebar/internal/logging/events"
	"github.com/atomicstack/tui-titlebar/internal/menu"
	"github.com/atomicstack/tui-titlebar/internal/ui/state"
)

// HoverButton reports the pointer entering (on) or leaving a top-level button.
// While a menu is open, entering another enabled button rolls over to it.
func (e *Engine) HoverButton(idx int, on bool) {
	if e.state.Hovering != on {
		e.Dispatch(state.SetHovering{Hovering: on})
	}
	if !on {
		return
	}
	open := e.state.Path.At(0)
	if open < 0 || open == idx || !e.buttonEnabled(idx) {
		return
	}
	e.Dispatch(state.ToggleAt{Depth: 0, Selected: idx})
}

// ClickButton toggles the top-level button at idx.
func (e *Engine) ClickButton(idx int) {
	if !e.buttonEnabled(idx) {
		return
	}
	e.focusButton(idx)
	e.Dispatch(state.ToggleAt{Depth: 0, Selected: idx})
}

// HoverItem reports the pointer over entry idx of the menu open at depth.
func (e *Engine) HoverItem(depth, idx int) {
	item, _, ok := e.itemAt(depth, idx)
	if !ok || !item.Selectable() {
		return
	}
	path := e.state.Path
	if item.IsSubmenu() {
		if path.At(depth) != idx {
			e.Dispatch(state.ToggleAt{Depth: depth, Selected: idx})
		}
		return
	}
	if path.At(depth) == idx && len(path) == depth+1 {
		return
	}
	e.Dispatch(state.SetAt{Depth: depth, Selected: idx})
}

// ClickItem toggles a branch or activates a leaf in the menu open at depth.
func (e *Engine) ClickItem(depth, idx int) {
	item, items, ok := e.itemAt(depth, idx)
	if !ok || !item.Selectable() {
		return
	}
	if item.IsSubmenu() {
		e.Dispatch(state.ToggleAt{Depth: depth, Selected: idx})
		return
	}
	e.activate(PointerEvent{Depth: depth, Index: idx}, menu.Selection{
		Item:  item,
		Index: idx,
		Depth: depth,
		Menu:  items,
	})
}

// ClickAway closes every menu after a click outside the bar and its dropdowns.
func (e *Engine) ClickAway() {
	e.dropFocus()
	e.Close(events.ReasonAway)
}

func (e *Engine) buttonEnabled(idx int) bool {
	if idx < 0 || idx >= len(e.display) || !e.Visible(idx) {
		return false
	}
	return e.display[idx].Selectable()
}

// itemAt resolves an entry of a dropdown. Depth 0 is the bar itself.
func (e *Engine) itemAt(depth, idx int) (menu.Item, []menu.Item, bool) {
	if depth < 1 {
		return menu.Item{}, nil, false
	}
	items := menu.MenuAt(e.display, e.state.Path, depth)
	if idx < 0 || idx >= len(items) {
		return menu.Item{}, nil, false
	}
	return items[idx], items, true
}
