package ui

import (
	"github.com/atomicstack/tui-titlebar/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	l := m.computeLayout()
	switch mouse.Action {
	case tea.MouseActionMotion:
		m.mouseMoved(l, mouse.X, mouse.Y)
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft {
			return nil
		}
		return m.mousePressed(l, mouse.X, mouse.Y)
	}
	return nil
}

func (m *Model) mouseMoved(l layout, x, y int) {
	if m.engine == nil {
		return
	}
	over := -1
	if btn, ok := l.buttonAt(x, y); ok {
		over = btn.node.Index
	}
	if over != m.mouseOver {
		if m.mouseOver >= 0 && over < 0 {
			m.engine.HoverButton(m.mouseOver, false)
		}
		m.mouseOver = over
		if over >= 0 {
			m.engine.HoverButton(over, true)
		}
	}
	if over >= 0 {
		return
	}
	if box, ok := l.dropdownAt(x, y); ok {
		if idx, ok := box.rowAt(y); ok {
			m.engine.HoverItem(box.depth, idx)
		}
	}
}

func (m *Model) mousePressed(l layout, x, y int) tea.Cmd {
	if c, ok := l.controlAt(x, y); ok {
		if m.engine != nil {
			m.engine.ClickAway()
		}
		return m.pressControl(c.kind)
	}
	if m.engine == nil {
		return nil
	}
	if btn, ok := l.buttonAt(x, y); ok {
		if m.menuVisible() {
			m.engine.ClickButton(btn.node.Index)
		}
		return nil
	}
	if box, ok := l.dropdownAt(x, y); ok {
		if idx, ok := box.rowAt(y); ok {
			m.engine.ClickItem(box.depth, idx)
		}
		return nil
	}
	m.engine.ClickAway()
	return nil
}

func (m *Model) pressControl(kind controlKind) tea.Cmd {
	if m.controlDisabled(kind) {
		return nil
	}
	switch kind {
	case controlMinimize:
		m.minimized = !m.minimized
		events.UI.Control("minimize", m.minimized)
	case controlMaximize:
		m.maximized = !m.maximized
		events.UI.Control("maximize", m.maximized)
		if m.maximized {
			return tea.EnterAltScreen
		}
		return tea.ExitAltScreen
	case controlClose:
		events.UI.Control("close", true)
		return tea.Quit
	}
	return nil
}
