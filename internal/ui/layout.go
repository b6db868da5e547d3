package ui

import (
	"strings"

	"github.com/atomicstack/tui-titlebar/internal/format/table"
	"github.com/atomicstack/tui-titlebar/internal/menu"
	"github.com/atomicstack/tui-titlebar/internal/nav"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	buttonPad     = 1
	itemPad       = 1
	verticalIcon  = "≡"
	submenuArrow  = "›"
	separatorRune = "─"
	restoreGlyph  = "❐"
)

type controlKind int

const (
	controlMinimize controlKind = iota
	controlMaximize
	controlClose
)

var controlGlyphs = []struct {
	kind  controlKind
	glyph string
}{
	{controlMinimize, "–"},
	{controlMaximize, "□"},
	{controlClose, "×"},
}

type span struct {
	x     int
	width int
}

func (s span) contains(x int) bool {
	return x >= s.x && x < s.x+s.width
}

type buttonBox struct {
	span
	node nav.Node
}

type controlBox struct {
	span
	kind controlKind
}

type dropdownRow struct {
	y     int
	index int
}

type dropdownBox struct {
	span
	depth  int
	y      int
	height int
	open   int
	rows   []dropdownRow
	lines  []string
}

func (d dropdownBox) contains(x, y int) bool {
	return d.span.contains(x) && y >= d.y && y < d.y+d.height
}

// layout is the geometry of one frame, shared by View and mouse hit testing.
type layout struct {
	titleRow  int
	menuRow   int
	buttons   []buttonBox
	controls  []controlBox
	title     span
	dropdowns []dropdownBox
}

func (l layout) buttonAt(x, y int) (buttonBox, bool) {
	if y != l.menuRow {
		return buttonBox{}, false
	}
	for _, b := range l.buttons {
		if b.contains(x) {
			return b, true
		}
	}
	return buttonBox{}, false
}

func (l layout) controlAt(x, y int) (controlBox, bool) {
	if y != l.titleRow {
		return controlBox{}, false
	}
	for _, c := range l.controls {
		if c.contains(x) {
			return c, true
		}
	}
	return controlBox{}, false
}

// dropdownAt returns the deepest dropdown covering the cell.
func (l layout) dropdownAt(x, y int) (dropdownBox, bool) {
	for i := len(l.dropdowns) - 1; i >= 0; i-- {
		if l.dropdowns[i].contains(x, y) {
			return l.dropdowns[i], true
		}
	}
	return dropdownBox{}, false
}

func (d dropdownBox) rowAt(y int) (int, bool) {
	for _, r := range d.rows {
		if r.y == y {
			return r.index, true
		}
	}
	return -1, false
}

func controlsWidth() int {
	total := 0
	for _, c := range controlGlyphs {
		total += ansi.StringWidth(renderControl(c.kind, c.glyph, false, false))
	}
	return total
}

func (m *Model) controlGlyph(kind controlKind) string {
	for _, c := range controlGlyphs {
		if c.kind != kind {
			continue
		}
		if kind == controlMaximize && m.maximized {
			return restoreGlyph
		}
		return c.glyph
	}
	return ""
}

func (m *Model) controlDisabled(kind controlKind) bool {
	switch kind {
	case controlMinimize:
		return m.disableMinimize
	case controlMaximize:
		return m.disableMaximize
	}
	return false
}

// buttonLabel is the label drawn for a top-level entry.
func buttonLabel(item menu.Item) menu.SplitLabel {
	if item.ID == menu.HamburgerID {
		return menu.Split(verticalIcon)
	}
	return menu.Split(item.Label)
}

// buttonWidth measures the rendered button for item.
func buttonWidth(item menu.Item) int {
	return ansi.StringWidth(renderLabel(buttonLabel(item), *styles.Button, false, buttonPad))
}

// renderLabel draws a label with its mnemonic letter optionally underlined.
func renderLabel(label menu.SplitLabel, st lipgloss.Style, underline bool, pad int) string {
	padding := strings.Repeat(" ", pad)
	var b strings.Builder
	b.WriteString(st.Render(padding + label.Before))
	if label.Letter != "" {
		letter := st
		if underline {
			letter = st.Inherit(*styles.Mnemonic)
		}
		b.WriteString(letter.Render(label.Letter))
	}
	b.WriteString(st.Render(label.After + padding))
	return b.String()
}

func renderControl(kind controlKind, glyph string, blurred, disabled bool) string {
	st := *styles.Control
	if kind == controlClose {
		st = *styles.ControlClose
	}
	switch {
	case blurred:
		st = *styles.BarBlurred
	case disabled:
		st = *styles.ButtonDisabled
	}
	return st.Render(" " + glyph + " ")
}

// menuContainerWidth is the width the overflow calculation may fill.
func (m *Model) menuContainerWidth() int {
	if m.width <= 0 {
		return 0
	}
	if m.style == nav.StyleStacked {
		return m.width
	}
	avail := m.width
	if m.controls {
		avail -= controlsWidth()
	}
	avail -= m.titleReserve()
	if avail < 0 {
		return 0
	}
	return avail
}

// titleReserve keeps room for the title next to the menu buttons.
func (m *Model) titleReserve() int {
	if m.style == nav.StyleStacked {
		return 0
	}
	reserve := ansi.StringWidth(m.title) + 2
	if third := m.width / 3; reserve > third {
		reserve = third
	}
	return reserve
}

// syncMeasurements pushes button and container widths to the engine.
func (m *Model) syncMeasurements() {
	if m.engine == nil || m.width <= 0 {
		return
	}
	widths := make([]int, len(m.items))
	for i, item := range m.items {
		widths[i] = buttonWidth(item)
	}
	if !equalInts(widths, m.measuredWidths) {
		m.measuredWidths = widths
		m.engine.ItemWidthsChanged(widths)
	}
	m.engine.SetMarkerWidth(buttonWidth(menu.OverflowItem(nil)))
	m.engine.ContainerResized(m.menuContainerWidth())
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (m *Model) computeLayout() layout {
	l := layout{}
	if m.style == nav.StyleStacked && m.engine != nil {
		l.menuRow = 1
	}

	menuX := 0
	titleEnd := m.width
	if m.controls {
		cw := controlsWidth()
		x := m.width - cw
		if m.platform == platformMac {
			x = 0
			menuX = cw
		} else {
			titleEnd = x
		}
		if x < 0 {
			x = 0
		}
		for _, c := range controlGlyphs {
			w := ansi.StringWidth(renderControl(c.kind, c.glyph, false, false))
			l.controls = append(l.controls, controlBox{span: span{x: x, width: w}, kind: c.kind})
			x += w
		}
	}

	x := menuX
	if m.engine != nil {
		tree := m.engine.Walk()
		for _, n := range tree.Nodes {
			if n.Hidden {
				continue
			}
			w := buttonWidth(n.Item)
			l.buttons = append(l.buttons, buttonBox{span: span{x: x, width: w}, node: n})
			x += w
		}
		l.dropdowns = m.layoutDropdowns(tree, l)
	}

	titleStart := menuX
	if l.menuRow == l.titleRow {
		titleStart = x
	}
	if titleEnd < titleStart {
		titleEnd = titleStart
	}
	l.title = span{x: titleStart, width: titleEnd - titleStart}
	return l
}

func (m *Model) layoutDropdowns(tree nav.Tree, l layout) []dropdownBox {
	levels := tree.OpenLevels()
	if len(levels) < 2 {
		return nil
	}
	var boxes []dropdownBox
	x, y := 0, l.menuRow+1
	for _, b := range l.buttons {
		if b.node.Open {
			x = b.x
			break
		}
	}
	for depth := 1; depth < len(levels); depth++ {
		if depth > 1 {
			parent := boxes[len(boxes)-1]
			x = parent.x + parent.width
			y = parent.y + parent.open
		}
		box := m.buildDropdown(levels[depth], depth)
		if m.width > 0 && x+box.width > m.width {
			x = m.width - box.width
		}
		if x < 0 {
			x = 0
		}
		box.x = x
		box.y = y
		for i := range box.rows {
			box.rows[i].y = y + 1 + i
		}
		boxes = append(boxes, box)
	}
	return boxes
}

// buildDropdown renders one open list as a bordered box.
func (m *Model) buildDropdown(nodes []nav.Node, depth int) dropdownBox {
	plain := make([][]string, len(nodes))
	for i, n := range nodes {
		if n.Role == nav.RoleSeparator {
			plain[i] = []string{""}
			continue
		}
		arrow := ""
		if n.HasPopup {
			arrow = submenuArrow
		}
		plain[i] = []string{n.Label.Text(), n.Item.Accelerator, arrow}
	}
	widths := table.ColumnWidths(plain)
	for len(widths) < 3 {
		widths = append(widths, 0)
	}
	inner := itemPad*2 + widths[0]
	if widths[1] > 0 {
		inner += 2 + widths[1]
	}
	if widths[2] > 0 {
		inner += 1 + widths[2]
	}
	if inner < 2*itemPad+1 {
		inner = 2*itemPad + 1
	}

	box := dropdownBox{depth: depth, open: -1}
	lines := make([]string, 0, len(nodes))
	for i, n := range nodes {
		if n.Open {
			box.open = i
		}
		if n.Role == nav.RoleSeparator {
			lines = append(lines, styles.Separator.Render(strings.Repeat(separatorRune, inner)))
			box.rows = append(box.rows, dropdownRow{index: i})
			continue
		}
		lines = append(lines, m.renderRow(n, widths, inner))
		box.rows = append(box.rows, dropdownRow{index: i})
	}
	if len(lines) == 0 {
		lines = append(lines, styles.DisabledItem.Render(strings.Repeat(" ", inner)))
	}
	rendered := styles.Dropdown.Render(strings.Join(lines, "\n"))
	box.lines = strings.Split(rendered, "\n")
	box.width = ansi.StringWidth(box.lines[0])
	box.height = len(box.lines)
	if box.open < 0 {
		box.open = 0
	}
	return box
}

func (m *Model) renderRow(n nav.Node, widths []int, inner int) string {
	st := *styles.Item
	switch {
	case n.Disabled:
		st = *styles.DisabledItem
	case n.Selected:
		st = *styles.SelectedItem
	}
	pad := strings.Repeat(" ", itemPad)
	label := n.Label
	used := table.CellWidth(label.Before) + table.CellWidth(label.Letter)
	label.After = table.Pad(label.After, table.CellWidth(label.After), widths[0]-used, table.AlignLeft)

	var b strings.Builder
	b.WriteString(st.Render(pad))
	b.WriteString(renderLabel(label, st, !n.Disabled, 0))
	written := itemPad + widths[0]
	if widths[1] > 0 {
		acc := table.Pad(n.Item.Accelerator, table.CellWidth(n.Item.Accelerator), widths[1], table.AlignRight)
		b.WriteString(st.Render("  "))
		b.WriteString(styles.Accelerator.Inherit(st).Render(acc))
		written += 2 + widths[1]
	}
	if widths[2] > 0 {
		arrow := ""
		if n.HasPopup {
			arrow = submenuArrow
		}
		b.WriteString(st.Render(" " + table.Pad(arrow, table.CellWidth(arrow), widths[2], table.AlignLeft)))
		written += 1 + widths[2]
	}
	if gap := inner - written; gap > 0 {
		b.WriteString(st.Render(strings.Repeat(" ", gap)))
	}
	return b.String()
}
