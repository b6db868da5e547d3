package events

import "github.com/atomicstack/tui-titlebar/internal/logging"

type MenuTracer struct{}

type InputTracer struct{}

type OverflowTracer struct{}

type ResetReason string

const (
	ReasonEscape ResetReason = "escape"
	ReasonBlur   ResetReason = "blur"
	ReasonResize ResetReason = "resize"
	ReasonAway   ResetReason = "click-away"
	ReasonAction ResetReason = "activate"
	ReasonReload ResetReason = "reload"
)

var (
	Menu     = MenuTracer{}
	Input    = InputTracer{}
	Overflow = OverflowTracer{}
)

func (MenuTracer) Dispatch(action string, path []int) {
	logging.Trace("menu.dispatch", map[string]interface{}{"action": action, "path": path})
}

func (MenuTracer) Reset(reason ResetReason) {
	logging.Trace("menu.reset", map[string]interface{}{"reason": string(reason)})
}

func (MenuTracer) Open(open bool) {
	logging.Trace("menu.open", map[string]interface{}{"open": open})
}

func (MenuTracer) Activate(id, label string, index int) {
	logging.Trace("menu.activate", map[string]interface{}{"id": id, "label": label, "index": index})
}

func (MenuTracer) Attach(style string, items int) {
	logging.Trace("menu.attach", map[string]interface{}{"style": style, "items": items})
}

func (MenuTracer) Reload(source string, items int) {
	logging.Trace("menu.reload", map[string]interface{}{"source": source, "items": items})
}

func (MenuTracer) Detach(style string) {
	logging.Trace("menu.detach", map[string]interface{}{"style": style})
}

func (InputTracer) Mnemonic(letter string, index int) {
	logging.Trace("input.mnemonic", map[string]interface{}{"letter": letter, "index": index})
}

func (InputTracer) AltTap(focus, restored int) {
	logging.Trace("input.alt-tap", map[string]interface{}{"focus": focus, "restored": restored})
}

func (InputTracer) Key(key string, alt, release bool) {
	logging.Trace("input.key", map[string]interface{}{"key": key, "alt": alt, "release": release})
}

func (OverflowTracer) Recompute(index int, hide bool, hidden int, container int) {
	logging.Trace("overflow.recompute", map[string]interface{}{
		"index":     index,
		"hide":      hide,
		"hidden":    hidden,
		"container": container,
	})
}
