package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const execTimeout = 5 * time.Second

var runCommandFn = func(ctx context.Context, command string) ([]byte, error) {
	return exec.CommandContext(ctx, "sh", "-c", command).CombinedOutput()
}

// ActionHandlers maps action identifiers to their built-in handlers.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		"app:quit":          QuitAction,
		"app:about":         AboutAction,
		"exec":              ExecAction,
		"view:toggle-style": ToggleStyleAction,
		"view:reload-menu":  ReloadMenuAction,
	}
}

// QuitAction exits the program.
func QuitAction(Context, Item) tea.Cmd {
	return tea.Quit
}

// AboutAction reports the window title.
func AboutAction(ctx Context, _ Item) tea.Cmd {
	title := strings.TrimSpace(ctx.Title)
	if title == "" {
		title = "titlebar"
	}
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("%s: terminal title bar with an application menu", title)}
	}
}

// ToggleStyleAction flips the menu between the horizontal bar and the
// hamburger button.
func ToggleStyleAction(Context, Item) tea.Cmd {
	return func() tea.Msg { return StyleToggleMsg{} }
}

// ReloadMenuAction re-reads the menu file. Without one the built-in menu is
// restored.
func ReloadMenuAction(ctx Context, _ Item) tea.Cmd {
	path := strings.TrimSpace(ctx.MenuFile)
	return func() tea.Msg {
		if path == "" {
			return ReloadMsg{Items: DefaultItems(), Source: "built-in"}
		}
		items, err := LoadFile(path)
		if err != nil {
			return ActionResult{Err: fmt.Errorf("reload menu: %w", err)}
		}
		return ReloadMsg{Items: items, Source: path}
	}
}

// ExecAction runs the item's command through the shell and reports the first
// line of its output.
func ExecAction(_ Context, item Item) tea.Cmd {
	command := strings.TrimSpace(item.Command)
	label := PlainLabel(item.Label)
	return func() tea.Msg {
		if command == "" {
			return ActionResult{Err: fmt.Errorf("%s: no command configured", label)}
		}
		ctx, cancel := context.WithTimeout(context.Background(), execTimeout)
		defer cancel()
		out, err := runCommandFn(ctx, command)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ActionResult{Err: fmt.Errorf("%s: timed out after %s", label, execTimeout)}
		}
		if err != nil {
			return ActionResult{Err: fmt.Errorf("%s: %w", label, err)}
		}
		return ActionResult{Info: firstLine(string(out), fmt.Sprintf("%s finished", label))}
	}
}

func firstLine(text, fallback string) string {
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line
		}
	}
	return fallback
}

// DefaultAction reports the selection for items without a bound action.
func DefaultAction(_ Context, item Item) tea.Cmd {
	label := PlainLabel(item.Label)
	if label == "" {
		label = prettyLabel(item.ID)
	}
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("Selected %s (no action defined yet)", label)}
	}
}
