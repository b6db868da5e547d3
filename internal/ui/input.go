package ui

import (
	"github.com/atomicstack/tui-titlebar/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultAltKey = "f10"

type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Menu      key.Binding
	Navigate  key.Binding
	Select    key.Binding
	Close     key.Binding
}

func newKeyMap(altKey string) keyMap {
	if altKey == "" {
		altKey = defaultAltKey
	}
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Menu:      key.NewBinding(key.WithKeys(altKey), key.WithHelp(altKey, "menu")),
		Navigate:  key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "navigate")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Navigate, k.Select, k.Close, k.Quit}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keyMap.ForceQuit) {
		return tea.Quit
	}
	if key.Matches(keyMsg, m.keyMap.Menu) {
		// Terminals never report a bare Alt, so the menu key stands in for a tap.
		m.keys.Publish(nav.KeyEvent{Key: nav.KeyAlt})
		m.keys.Publish(nav.KeyEvent{Key: nav.KeyAlt, Release: true})
		return nil
	}
	ev, ok := translateKey(keyMsg)
	if !ok {
		return nil
	}
	if m.publishKey(ev) {
		return nil
	}
	if key.Matches(keyMsg, m.keyMap.Quit) && (m.engine == nil || !m.engine.Engaged()) {
		return tea.Quit
	}
	return nil
}

// publishKey sends the press and release for ev. Alt chords are wrapped in
// Alt down and up so subscribers see the modifier the way a desktop would.
func (m *Model) publishKey(ev nav.KeyEvent) bool {
	if !ev.Alt {
		consumed := m.keys.Publish(ev)
		ev.Release = true
		m.keys.Publish(ev)
		return consumed
	}
	m.keys.Publish(nav.KeyEvent{Key: nav.KeyAlt})
	consumed := m.keys.Publish(ev)
	ev.Release = true
	m.keys.Publish(ev)
	m.keys.Publish(nav.KeyEvent{Key: nav.KeyAlt, Release: true})
	return consumed
}

// translateKey maps a terminal key to a navigation key event. Pastes and
// multi-rune input are dropped.
func translateKey(msg tea.KeyMsg) (nav.KeyEvent, bool) {
	if msg.Paste {
		return nav.KeyEvent{}, false
	}
	ev := nav.KeyEvent{Alt: msg.Alt}
	switch msg.Type {
	case tea.KeyEnter:
		ev.Key = nav.KeyEnter
	case tea.KeyEsc:
		ev.Key = nav.KeyEscape
	case tea.KeyUp:
		ev.Key = nav.KeyArrowUp
	case tea.KeyDown:
		ev.Key = nav.KeyArrowDown
	case tea.KeyLeft:
		ev.Key = nav.KeyArrowLeft
	case tea.KeyRight:
		ev.Key = nav.KeyArrowRight
	case tea.KeyTab:
		ev.Key = nav.KeyTab
	case tea.KeySpace:
		ev.Key = nav.KeySpace
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return nav.KeyEvent{}, false
		}
		if msg.Runes[0] == ' ' {
			ev.Key = nav.KeySpace
			break
		}
		ev.Key = nav.KeyRune
		ev.Rune = msg.Runes[0]
	default:
		ev.Key = nav.KeyOther
	}
	return ev, true
}
