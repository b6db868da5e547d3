package ui

import (
	"fmt"

	"github.com/atomicstack/tui-titlebar/internal/logging/events"
	"github.com/atomicstack/tui-titlebar/internal/menu"
	"github.com/atomicstack/tui-titlebar/internal/nav"
	"github.com/atomicstack/tui-titlebar/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// onActivate runs inside the engine when a leaf is chosen. The menu is closed
// here rather than by the engine, and the action is queued for the next
// command batch.
func (m *Model) onActivate(a nav.Activation) {
	if m.engine != nil {
		m.engine.Close(events.ReasonAction)
	}
	req := command.NewRequest(m.registry, a.Item)
	m.errMsg = ""
	if m.verbose {
		m.setInfo(fmt.Sprintf("Running %s…", req.Label))
	}
	m.pending = append(m.pending, m.bus.Execute(m.menuContext(), req))
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}

func (m *Model) handleStyleToggleMsg(tea.Msg) tea.Cmd {
	next := nav.StyleVertical
	if m.style == nav.StyleVertical {
		next = nav.StyleHorizontal
	}
	m.setStyle(next)
	m.setInfo(fmt.Sprintf("Menu style: %s", next))
	return nil
}

// setStyle swaps the engine for one presenting the menu in the new style.
func (m *Model) setStyle(style nav.Style) {
	if style == m.style {
		return
	}
	events.UI.StyleChange(string(m.style), string(style))
	m.detachEngine()
	m.style = style
	m.attachEngine()
}

// handleReloadMsg swaps in a reloaded menu tree. The engine closes any menu
// whose path no longer exists.
func (m *Model) handleReloadMsg(msg tea.Msg) tea.Cmd {
	reload, ok := msg.(menu.ReloadMsg)
	if !ok {
		return nil
	}
	m.items = menu.CloneItems(reload.Items)
	if m.engine != nil {
		m.measuredWidths = nil
		m.engine.SetItems(m.items)
	}
	events.Menu.Reload(reload.Source, len(m.items))
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("Menu reloaded from %s", reload.Source))
	return nil
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{
		Title:    m.title,
		MenuFile: m.menuFile,
		Window:   m.window,
	}
}
