package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/tui-titlebar/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

func TestOverlayReplacesColumns(t *testing.T) {
	cases := []struct {
		bg, fg string
		x      int
		want   string
	}{
		{"abcdefgh", "XY", 2, "abXYefgh"},
		{"abc", "XY", 5, "abc  XY"},
		{"abcdef", "XYZ", 4, "abcdXYZ"},
		{"", "XY", 0, "XY"},
	}
	for _, tc := range cases {
		if got := overlay(tc.bg, tc.fg, tc.x); got != tc.want {
			t.Fatalf("overlay(%q, %q, %d) = %q, want %q", tc.bg, tc.fg, tc.x, got, tc.want)
		}
	}
}

func TestRenderTitleTruncates(t *testing.T) {
	m := NewModel(Options{Title: "a very long window title", Width: 80})
	got := m.renderTitle(10)
	if !strings.HasSuffix(strings.TrimSpace(got), "…") {
		t.Fatalf("expected truncated title, got %q", got)
	}
	if w := len([]rune(got)); w != 10 {
		t.Fatalf("expected 10 columns, got %d (%q)", w, got)
	}
	centered := NewModel(Options{Title: "abc", Width: 80}).renderTitle(9)
	if centered != "   abc   " {
		t.Fatalf("expected centred title, got %q", centered)
	}
}

func TestViewHeightIsBounded(t *testing.T) {
	h := newTestHarness(Options{Height: 4})
	h.Send(altRune('f'))
	if got := len(strings.Split(h.View(), "\n")); got != 4 {
		t.Fatalf("expected view clipped to 4 rows, got %d", got)
	}
}

func TestDropdownRowsAlign(t *testing.T) {
	h := newTestHarness(Options{})
	h.Send(altRune('f'))
	l := h.Model().computeLayout()
	if len(l.dropdowns) != 1 {
		t.Fatalf("expected one dropdown, got %d", len(l.dropdowns))
	}
	box := l.dropdowns[0]
	if box.x != 0 || box.y != 1 {
		t.Fatalf("expected dropdown under File, got x=%d y=%d", box.x, box.y)
	}
	for _, line := range box.lines {
		if w := len([]rune(line)); w != box.width {
			t.Fatalf("ragged dropdown line %q (%d != %d)", line, w, box.width)
		}
	}

	for i := 0; i < 3; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	l = h.Model().computeLayout()
	if len(l.dropdowns) != 2 {
		t.Fatalf("expected the Open Recent submenu, got %d dropdowns", len(l.dropdowns))
	}
	sub := l.dropdowns[1]
	if sub.x != box.x+box.width || sub.y != box.y+2 {
		t.Fatalf("expected cascade beside Open Recent, got x=%d y=%d", sub.x, sub.y)
	}
}

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want nav.KeyEvent
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, nav.KeyEvent{Key: nav.KeyEnter}, true},
		{tea.KeyMsg{Type: tea.KeyEsc}, nav.KeyEvent{Key: nav.KeyEscape}, true},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, nav.KeyEvent{Key: nav.KeySpace}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, nav.KeyEvent{Key: nav.KeySpace}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, nav.KeyEvent{Key: nav.KeyRune, Rune: 'x', Alt: true}, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, nav.KeyEvent{Key: nav.KeyArrowLeft}, true},
		{tea.KeyMsg{Type: tea.KeyTab}, nav.KeyEvent{Key: nav.KeyTab}, true},
		{tea.KeyMsg{Type: tea.KeyHome}, nav.KeyEvent{Key: nav.KeyOther}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, nav.KeyEvent{}, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Paste: true}, nav.KeyEvent{}, false},
	}
	for _, tc := range cases {
		got, ok := translateKey(tc.msg)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("translateKey(%v) = %#v, %v; want %#v, %v", tc.msg, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLimitHeightAddsEllipsis(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 10)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("unexpected lines %#v", got)
	}
	if got := limitHeight(lines, 0, 10); got != nil {
		t.Fatalf("expected nil for zero height")
	}
}
