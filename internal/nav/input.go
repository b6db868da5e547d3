package nav

import (
	"github.com/atomicstack/tui-titlebar/internal/logging/events"
	"github.com/atomicstack/tui-titlebar/internal/menu"
	"github.com/atomicstack/tui-titlebar/internal/ui/state"
)

// HandleKey applies one key event and reports whether it was consumed.
func (e *Engine) HandleKey(ev KeyEvent) bool {
	events.Input.Key(ev.String(), ev.Alt, ev.Release)
	lone := e.tap.observe(ev)

	if ev.Release {
		if e.state.AltKey {
			e.Dispatch(state.SetAlt{Active: false})
		}
		if lone {
			return e.altTapped()
		}
		return false
	}

	if ev.Alt || ev.Key == KeyAlt {
		if !e.state.AltKey {
			e.Dispatch(state.SetAlt{Active: true})
		}
		if ev.Key == KeyAlt {
			return false
		}
		return e.mnemonic(ev)
	}

	if !e.Engaged() {
		return false
	}

	switch ev.Key {
	case KeyEnter, KeySpace:
		return e.enter(ev)
	case KeyEscape:
		e.blur()
		if e.state.IsOpen() {
			events.Menu.Reset(events.ReasonEscape)
		}
		e.Dispatch(state.Reset{})
		return true
	case KeyArrowDown:
		e.step(true)
		return true
	case KeyArrowUp:
		e.step(false)
		return true
	case KeyArrowRight:
		if sel, ok := menu.SelectedItem(e.display, e.state.Path); ok && sel.Item.IsSubmenu() {
			if e.descend(sel) {
				return true
			}
		}
		cur := e.current()
		e.moveTop(cur, menu.ValidNext(e.display, cur, e.Limit()))
		return true
	case KeyArrowLeft:
		if len(e.state.Path) <= 2 {
			cur := e.current()
			e.moveTop(cur, menu.ValidPrevious(e.display, cur, e.Limit()))
			return true
		}
		e.Dispatch(state.DeleteFrom{Depth: len(e.state.Path) - 1})
		return true
	}
	return false
}

// altTapped toggles keyboard focus on the first top-level button.
func (e *Engine) altTapped() bool {
	if e.tapFocused {
		focused := e.focus
		e.blur()
		events.Input.AltTap(focused, e.focus)
		return true
	}
	if len(e.display) == 0 || !e.Visible(0) {
		return false
	}
	e.prevFocus = e.focus
	e.focusButton(0)
	e.tapFocused = true
	events.Input.AltTap(0, e.prevFocus)
	return true
}

func (e *Engine) mnemonic(ev KeyEvent) bool {
	if ev.Key != KeyRune || ev.Rune == 0 {
		return false
	}
	idx := menu.FindMnemonic(e.display, ev.Rune, 0)
	if idx < 0 {
		return false
	}
	if e.opts.Style != StyleVertical && !e.overflow.Hide && idx > e.overflow.Index {
		idx = e.overflow.Index
	}
	events.Input.Mnemonic(string(ev.Rune), idx)
	e.Dispatch(state.SetAt{Depth: 0, Selected: idx})
	if e.display[idx].IsSubmenu() {
		e.Dispatch(state.SetAt{Depth: 1, Selected: -1})
	}
	return true
}

func (e *Engine) enter(ev KeyEvent) bool {
	sel, ok := menu.SelectedItem(e.display, e.state.Path)
	if !ok {
		if e.focus >= 0 {
			e.ClickButton(e.focus)
			return true
		}
		return false
	}
	if ev.Key == KeySpace {
		return false
	}
	if sel.Item.IsSubmenu() {
		e.descend(sel)
		return true
	}
	if sel.Item.Selectable() {
		e.activate(ev, sel)
	}
	return true
}

// descend selects the first enabled child of a branch.
func (e *Engine) descend(sel menu.Selection) bool {
	if !sel.Item.Selectable() {
		return false
	}
	first := menu.ValidNext(sel.Item.Submenu, -1, 0)
	if first < 0 {
		return false
	}
	e.Dispatch(state.SetAt{Depth: sel.Depth + 1, Selected: first})
	return true
}

// step moves the selection within the deepest level that has entries.
func (e *Engine) step(forward bool) {
	path := e.state.Path
	depth := len(path) - 1
	for depth > 0 && len(menu.MenuAt(e.display, path, depth)) == 0 {
		depth--
	}
	if depth < 0 {
		return
	}
	items := menu.MenuAt(e.display, path, depth)
	limit := 0
	if depth == 0 {
		limit = e.Limit()
	}
	var next int
	if forward {
		next = menu.ValidNext(items, path.At(depth), limit)
	} else {
		next = menu.ValidPrevious(items, path.At(depth), limit)
	}
	if next < 0 {
		return
	}
	e.Dispatch(state.SetAt{Depth: depth, Selected: next})
}

// current is the top-level origin for left/right moves.
func (e *Engine) current() int {
	if cur := e.state.Path.At(0); cur >= 0 {
		return cur
	}
	return e.focus
}

func (e *Engine) moveTop(cur, next int) {
	if next < 0 || next == cur {
		return
	}
	if e.focus >= 0 {
		e.focusButton(next)
	}
	e.Dispatch(state.ToggleAt{Depth: 0, Selected: next})
}
