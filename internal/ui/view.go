package ui

import (
	"strings"
	"time"

	"github.com/atomicstack/tui-titlebar/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const infoTTL = 5 * time.Second

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	l := m.computeLayout()
	rows := []string{m.renderTitleRow(l)}
	if l.menuRow != l.titleRow {
		rows = append(rows, m.renderMenuRow(l))
	}

	body := m.bodyLines(len(rows))
	out := append(rows, strings.Split(renderLines(applyWidth(body, m.width)), "\n")...)
	if len(body) == 0 {
		out = rows
	}
	for _, box := range l.dropdowns {
		for i, line := range box.lines {
			y := box.y + i
			for len(out) <= y {
				out = append(out, "")
			}
			out[y] = overlay(out[y], line, box.x)
		}
	}
	if m.height > 0 && len(out) > m.height {
		out = out[:m.height]
	}
	return strings.Join(out, "\n")
}

func (m *Model) barStyle() lipgloss.Style {
	if !m.windowFocused {
		return *styles.BarBlurred
	}
	return *styles.Bar
}

func (m *Model) renderTitleRow(l layout) string {
	var b strings.Builder
	cursor := 0
	fill := m.barStyle()
	pad := func(to int) {
		if to > cursor {
			b.WriteString(fill.Render(strings.Repeat(" ", to-cursor)))
			cursor = to
		}
	}

	if m.platform == platformMac {
		cursor = m.writeControls(&b, l, cursor)
	}
	if l.menuRow == l.titleRow {
		cursor = m.writeButtons(&b, l, cursor)
	}
	pad(l.title.x)
	if l.title.width > 0 {
		b.WriteString(m.renderTitle(l.title.width))
		cursor = l.title.x + l.title.width
	}
	if m.platform != platformMac && len(l.controls) > 0 {
		pad(l.controls[0].x)
		cursor = m.writeControls(&b, l, cursor)
	}
	pad(m.width)
	return b.String()
}

func (m *Model) renderMenuRow(l layout) string {
	var b strings.Builder
	cursor := m.writeButtons(&b, l, 0)
	if m.width > cursor {
		b.WriteString(m.barStyle().Render(strings.Repeat(" ", m.width-cursor)))
	}
	return b.String()
}

func (m *Model) writeControls(b *strings.Builder, l layout, cursor int) int {
	for _, c := range l.controls {
		b.WriteString(renderControl(c.kind, m.controlGlyph(c.kind), !m.windowFocused, m.controlDisabled(c.kind)))
		cursor = c.x + c.width
	}
	return cursor
}

func (m *Model) writeButtons(b *strings.Builder, l layout, cursor int) int {
	visible := m.menuVisible()
	underline := m.engine != nil && (m.engine.State().AltKey || m.engine.FocusIndex() >= 0)
	for _, btn := range l.buttons {
		if btn.x > cursor {
			b.WriteString(m.barStyle().Render(strings.Repeat(" ", btn.x-cursor)))
		}
		st := m.buttonStyle(btn)
		if !visible {
			b.WriteString(m.barStyle().Render(strings.Repeat(" ", btn.width)))
		} else {
			b.WriteString(renderLabel(buttonLabel(btn.node.Item), st, underline && !btn.node.Disabled, buttonPad))
		}
		cursor = btn.x + btn.width
	}
	return cursor
}

func (m *Model) buttonStyle(btn buttonBox) lipgloss.Style {
	if !m.windowFocused {
		return *styles.BarBlurred
	}
	switch {
	case btn.node.Disabled:
		return *styles.ButtonDisabled
	case btn.node.Open, btn.node.Selected:
		return *styles.ButtonOpen
	case btn.node.Focused:
		return *styles.ButtonFocused
	}
	return *styles.Button
}

// renderTitle centres the title in width columns, truncating when needed.
func (m *Model) renderTitle(width int) string {
	st := *styles.Title
	if !m.windowFocused {
		st = *styles.BarBlurred
	}
	title := m.title
	if ansi.StringWidth(title) > width {
		if width <= 1 {
			return st.Render(strings.Repeat(" ", width))
		}
		title = truncate.StringWithTail(title, uint(width), "…")
	}
	left := (width - ansi.StringWidth(title)) / 2
	right := width - left - ansi.StringWidth(title)
	return st.Render(strings.Repeat(" ", left) + title + strings.Repeat(" ", right))
}

// bodyLines builds everything below the bar. used is the number of bar rows.
func (m *Model) bodyLines(used int) []styledLine {
	if m.minimized {
		return nil
	}
	var tail []styledLine
	if m.errMsg != "" {
		tail = append(tail, styledLine{text: m.errMsg, style: styles.Error})
	} else if info := m.currentInfo(); info != "" {
		tail = append(tail, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		m.help.Width = m.width
		footer := m.help.ShortHelpView(m.keyMap.ShortHelp())
		tail = append(tail, styledLine{text: styles.Footer.Render(footer), raw: true})
	}
	if m.height <= 0 {
		return tail
	}
	space := m.height - used - len(tail)
	if space < 0 {
		return limitHeight(tail, m.height-used, m.width)
	}
	lines := make([]styledLine, 0, space+len(tail))
	for i := 0; i < space; i++ {
		lines = append(lines, styledLine{})
	}
	return append(lines, tail...)
}

// overlay draws fg over bg starting at column x.
func overlay(bg, fg string, x int) string {
	bgWidth := ansi.StringWidth(bg)
	if bgWidth < x {
		bg += strings.Repeat(" ", x-bgWidth)
		bgWidth = x
	}
	fgWidth := ansi.StringWidth(fg)
	left := ansi.Cut(bg, 0, x)
	right := ""
	if bgWidth > x+fgWidth {
		right = ansi.Cut(bg, x+fgWidth, bgWidth)
	}
	return left + fg + right
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 {
		return nil
	}
	if len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
