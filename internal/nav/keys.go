package nav

// Key names a key the engine reacts to. Printable characters use KeyRune and
// carry the character in KeyEvent.Rune.
type Key string

const (
	KeyAlt        Key = "Alt"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeySpace      Key = "Space"
	KeyTab        Key = "Tab"
	KeyRune       Key = "Rune"
	KeyOther      Key = "Other"
)

// KeyEvent is one key press or release.
type KeyEvent struct {
	Key     Key
	Rune    rune
	Alt     bool
	Release bool
}

func (e KeyEvent) String() string {
	name := string(e.Key)
	if e.Key == KeyRune && e.Rune != 0 {
		name = string(e.Rune)
	}
	if e.Alt && e.Key != KeyAlt {
		name = "alt+" + name
	}
	if e.Release {
		name += " (up)"
	}
	return name
}

// KeyHandler reports whether it consumed the event.
type KeyHandler func(KeyEvent) bool

// KeySource delivers key events to subscribers. The returned func removes the
// subscription and may be called more than once.
type KeySource interface {
	Subscribe(KeyHandler) func()
}

// Broadcaster fans key events out to every subscriber in subscription order.
type Broadcaster struct {
	next     int
	handlers []subscription
}

type subscription struct {
	id      int
	handler KeyHandler
}

// NewBroadcaster returns an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers handler until the returned func is called.
func (b *Broadcaster) Subscribe(handler KeyHandler) func() {
	if handler == nil {
		return func() {}
	}
	b.next++
	id := b.next
	b.handlers = append(b.handlers, subscription{id: id, handler: handler})
	return func() {
		for i, sub := range b.handlers {
			if sub.id == id {
				b.handlers = append(b.handlers[:i:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers ev to every subscriber and reports whether any consumed it.
func (b *Broadcaster) Publish(ev KeyEvent) bool {
	handled := false
	subs := append([]subscription(nil), b.handlers...)
	for _, sub := range subs {
		if sub.handler(ev) {
			handled = true
		}
	}
	return handled
}

// Len returns the number of live subscriptions.
func (b *Broadcaster) Len() int {
	return len(b.handlers)
}
