package nav

import (
	"github.com/atomicstack/tui-titlebar/internal/logging/events"
	"github.com/atomicstack/tui-titlebar/internal/menu"
	"github.com/atomicstack/tui-titlebar/internal/ui/state"
)

// Style selects how the top-level list is presented.
type Style string

const (
	StyleHorizontal Style = "horizontal"
	StyleVertical   Style = "vertical"
	StyleStacked    Style = "stacked"
)

// Styles lists every supported style.
func Styles() []Style {
	return []Style{StyleHorizontal, StyleVertical, StyleStacked}
}

// DefaultMarkerWidth is the column count reserved for the overflow button
// until the front end measures it.
const DefaultMarkerWidth = 3

// Options configures an Engine.
type Options struct {
	Style          Style
	EnableOverflow bool
	MarkerWidth    int
	Window         any
	OnOpen         func(bool)
	OnButtonHover  func(bool)
	OnActivate     func(Activation)
}

// PointerEvent identifies the entry a pointer acted on.
type PointerEvent struct {
	Depth int
	Index int
}

// Activation is handed to OnActivate when a leaf item is chosen. Event holds
// either the KeyEvent or the PointerEvent that triggered it.
type Activation struct {
	Event    any
	Index    int
	Item     menu.Item
	Menu     []menu.Item
	Dispatch func(state.Action)
	Window   any
}

// LayoutObserver receives measurements from the front end.
type LayoutObserver interface {
	ItemWidthsChanged(widths []int)
	ContainerResized(width int)
}

// Engine owns the navigation state of one menu bar. It is not safe for
// concurrent use; every call is expected on the UI goroutine.
type Engine struct {
	opts     Options
	items    []menu.Item
	display  []menu.Item
	overflow state.OverflowState
	state    state.MenuState

	widths    []int
	container int

	focus      int
	prevFocus  int
	tapFocused bool
	tap        altTap

	windowFocused bool
	unsubscribe   func()

	lastOpen  bool
	lastHover bool
}

var _ LayoutObserver = (*Engine)(nil)

// New builds an engine over items.
func New(items []menu.Item, opts Options) *Engine {
	if opts.Style == "" {
		opts.Style = StyleHorizontal
	}
	if opts.MarkerWidth <= 0 {
		opts.MarkerWidth = DefaultMarkerWidth
	}
	e := &Engine{
		opts:          opts,
		items:         menu.CloneItems(items),
		state:         state.Initial(),
		focus:         -1,
		prevFocus:     -1,
		windowFocused: true,
	}
	e.recompute()
	return e
}

// Attach subscribes the engine to src and publishes the current outputs.
// Attaching an attached engine is a no-op.
func (e *Engine) Attach(src KeySource) {
	if e.unsubscribe != nil || src == nil {
		return
	}
	e.unsubscribe = src.Subscribe(e.HandleKey)
	events.Menu.Attach(string(e.opts.Style), len(e.items))
	e.emit(true)
}

// Detach removes the key subscription.
func (e *Engine) Detach() {
	if e.unsubscribe == nil {
		return
	}
	e.unsubscribe()
	e.unsubscribe = nil
	e.tap.reset()
	events.Menu.Detach(string(e.opts.Style))
}

// Attached reports whether the engine currently receives key events.
func (e *Engine) Attached() bool {
	return e.unsubscribe != nil
}

// Dispatch applies a transition and publishes output changes.
func (e *Engine) Dispatch(a state.Action) {
	if a == nil {
		return
	}
	e.state = state.Reduce(e.state, a)
	events.Menu.Dispatch(a.String(), e.state.Path)
	e.emit(false)
}

// Close resets the selection and drops keyboard focus.
func (e *Engine) Close(reason events.ResetReason) {
	e.blur()
	if e.state.Path.Equal(state.Initial().Path) {
		return
	}
	events.Menu.Reset(reason)
	e.Dispatch(state.Reset{})
}

func (e *Engine) emit(force bool) {
	open := e.state.IsOpen()
	if force || open != e.lastOpen {
		e.lastOpen = open
		events.Menu.Open(open)
		if e.opts.OnOpen != nil {
			e.opts.OnOpen(open)
		}
	}
	hover := e.state.Hovering
	if e.opts.Style != StyleVertical {
		hover = hover || e.state.AltKey
	}
	if force || hover != e.lastHover {
		e.lastHover = hover
		if e.opts.OnButtonHover != nil {
			e.opts.OnButtonHover(hover)
		}
	}
}

// State returns the current navigation state.
func (e *Engine) State() state.MenuState {
	s := e.state
	s.Path = s.Path.Clone()
	return s
}

// Style returns the configured style.
func (e *Engine) Style() Style {
	return e.opts.Style
}

// Items returns the source menu.
func (e *Engine) Items() []menu.Item {
	return e.items
}

// Display returns the top-level list as navigated: the source items with the
// overflow marker spliced in, or the single hamburger button.
func (e *Engine) Display() []menu.Item {
	return e.display
}

// Overflow returns the latest overflow calculation.
func (e *Engine) Overflow() state.OverflowState {
	return e.overflow
}

// FocusIndex returns the top-level button holding keyboard focus, or -1.
func (e *Engine) FocusIndex() int {
	return e.focus
}

// Engaged reports whether navigation keys are routed to the menu.
func (e *Engine) Engaged() bool {
	return e.state.IsOpen() || e.focus >= 0
}

// Limit returns how many leading top-level entries keyboard navigation may reach.
func (e *Engine) Limit() int {
	if e.opts.Style == StyleVertical {
		return len(e.display)
	}
	return e.overflow.Limit(len(e.display))
}

// Visible reports whether the top-level entry at idx is drawn.
func (e *Engine) Visible(idx int) bool {
	if idx < 0 || idx >= len(e.display) {
		return false
	}
	if e.opts.Style == StyleVertical {
		return len(e.items) > 0
	}
	return e.overflow.Visible(idx)
}

// SetItems replaces the source menu.
func (e *Engine) SetItems(items []menu.Item) {
	e.items = menu.CloneItems(items)
	e.widths = nil
	e.recompute()
	if e.state.IsOpen() && e.state.Path.At(0) >= len(e.display) {
		e.Close(events.ReasonReload)
	}
	if e.focus >= len(e.display) || e.prevFocus >= len(e.display) {
		e.dropFocus()
	}
}

// SetWindowFocus records host window focus. Losing focus closes open menus.
func (e *Engine) SetWindowFocus(focused bool) {
	e.windowFocused = focused
	if focused {
		return
	}
	e.tap.reset()
	if e.state.AltKey {
		e.Dispatch(state.SetAlt{Active: false})
	}
	e.dropFocus()
	e.Close(events.ReasonBlur)
}

// WindowFocused reports the last host focus state.
func (e *Engine) WindowFocused() bool {
	return e.windowFocused
}

// ItemWidthsChanged records the measured widths of the source items.
func (e *Engine) ItemWidthsChanged(widths []int) {
	e.widths = append([]int(nil), widths...)
	e.recompute()
}

// ContainerResized records the width available to the menu. A change closes
// any open menu.
func (e *Engine) ContainerResized(width int) {
	if width == e.container {
		return
	}
	e.container = width
	if e.state.IsOpen() {
		e.Close(events.ReasonResize)
	}
	e.recompute()
}

// SetMarkerWidth updates the measured width of the overflow button.
func (e *Engine) SetMarkerWidth(width int) {
	if width <= 0 || width == e.opts.MarkerWidth {
		return
	}
	e.opts.MarkerWidth = width
	e.recompute()
}

func (e *Engine) recompute() {
	if e.opts.Style == StyleVertical {
		e.overflow = state.OverflowState{Index: len(e.items), Hide: true, Menu: []menu.Item{}}
		e.display = []menu.Item{menu.HamburgerItem(e.items)}
		return
	}
	prev := e.overflow
	e.overflow = state.CalculateOverflow(state.OverflowInput{
		Items:       e.items,
		Widths:      e.widths,
		Container:   e.container,
		MarkerWidth: e.opts.MarkerWidth,
		Enabled:     e.opts.EnableOverflow,
	})
	e.display = state.Splice(e.items, e.overflow)
	if prev.Index != e.overflow.Index || prev.Hide != e.overflow.Hide {
		events.Overflow.Recompute(e.overflow.Index, e.overflow.Hide, len(e.overflow.Menu), e.container)
	}
}

func (e *Engine) focusButton(idx int) {
	e.focus = idx
}

// blur drops keyboard focus. Focus taken by an Alt tap falls back to what
// held it before the tap.
func (e *Engine) blur() {
	if e.focus < 0 {
		return
	}
	if e.tapFocused {
		e.focus = e.prevFocus
	} else {
		e.focus = -1
	}
	e.prevFocus = -1
	e.tapFocused = false
}

// dropFocus clears keyboard focus along with any focus remembered by an Alt tap.
func (e *Engine) dropFocus() {
	e.focus = -1
	e.prevFocus = -1
	e.tapFocused = false
}

func (e *Engine) activate(ev any, sel menu.Selection) {
	events.Menu.Activate(sel.Item.ID, menu.PlainLabel(sel.Item.Label), sel.Index)
	if e.opts.OnActivate == nil {
		return
	}
	e.opts.OnActivate(Activation{
		Event:    ev,
		Index:    sel.Index,
		Item:     sel.Item,
		Menu:     sel.Menu,
		Dispatch: e.Dispatch,
		Window:   e.opts.Window,
	})
}
