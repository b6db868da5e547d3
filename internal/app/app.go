package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/tui-titlebar/internal/format/table"
	"github.com/atomicstack/tui-titlebar/internal/logging"
	"github.com/atomicstack/tui-titlebar/internal/menu"
	"github.com/atomicstack/tui-titlebar/internal/nav"
	"github.com/atomicstack/tui-titlebar/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Title           string
	MenuFile        string
	Items           []menu.Item
	Style           nav.Style
	Platform        string
	AutoHide        bool
	Overflow        bool
	Controls        bool
	DisableMinimize bool
	DisableMaximize bool
	AltKey          string
	Maximized       bool
	Width           int
	Height          int
	ShowFooter      bool
	Verbose         bool
}

// Options converts the configuration into model options.
func (c Config) Options() ui.Options {
	return ui.Options{
		Title:           c.Title,
		MenuFile:        c.MenuFile,
		Items:           c.Items,
		Style:           c.Style,
		Platform:        c.Platform,
		AutoHide:        c.AutoHide,
		Overflow:        c.Overflow,
		Controls:        c.Controls,
		DisableMinimize: c.DisableMinimize,
		DisableMaximize: c.DisableMaximize,
		AltKey:          c.AltKey,
		ShowFooter:      c.ShowFooter,
		Verbose:         c.Verbose,
		Maximized:       c.Maximized,
		Width:           c.Width,
		Height:          c.Height,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	opts := cfg.Options()
	opts.Window = cfg.Title
	model := ui.NewModel(opts)
	logging.Infof("starting: style=%s platform=%s items=%d", cfg.Style, cfg.Platform, menu.Count(cfg.Items))
	programOpts := []tea.ProgramOption{tea.WithMouseAllMotion(), tea.WithReportFocus()}
	if cfg.Maximized {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, programOpts...)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// PrintMenu writes the menu tree as an indented table of label, accelerator
// and action.
func PrintMenu(w io.Writer, items []menu.Item) error {
	rows := [][]string{{"MENU", "KEY", "ACTION"}}
	rows = appendRows(rows, items, 0)
	out := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft})
	_, err := fmt.Fprintln(w, strings.Join(out, "\n"))
	return err
}

func appendRows(rows [][]string, items []menu.Item, depth int) [][]string {
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		if item.Separator {
			rows = append(rows, []string{indent + "────", "", ""})
			continue
		}
		label := indent + menu.PlainLabel(item.Label)
		if item.Disabled {
			label += " (disabled)"
		}
		action := item.Action
		if action == "" && !item.IsSubmenu() {
			action = item.ID
		}
		rows = append(rows, []string{label, item.Accelerator, action})
		if item.IsSubmenu() {
			rows = appendRows(rows, item.Submenu, depth+1)
		}
	}
	return rows
}
