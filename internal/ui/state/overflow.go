package state

import "github.com/atomicstack/tui-titlebar/internal/menu"

// OverflowState describes where the synthetic overflow entry sits in the
// top-level list and which items it holds.
type OverflowState struct {
	Index int
	Hide  bool
	Menu  []menu.Item
}

// OverflowInput carries the measurements for one calculation. Widths
// missing for an item count as zero.
type OverflowInput struct {
	Items       []menu.Item
	Widths      []int
	Container   int
	MarkerWidth int
	Enabled     bool
}

// CalculateOverflow picks the longest prefix of items that fits alongside the
// overflow marker. Unmeasured containers show everything.
func CalculateOverflow(in OverflowInput) OverflowState {
	n := len(in.Items)
	everything := OverflowState{Index: n, Hide: true, Menu: []menu.Item{}}
	if !in.Enabled || in.Container <= 0 || n == 0 {
		return everything
	}

	total := 0
	for i := 0; i < n; i++ {
		total += widthAt(in.Widths, i)
	}
	if total <= in.Container {
		return everything
	}

	marker := in.MarkerWidth
	if marker < 0 {
		marker = 0
	}
	k := 0
	used := marker
	for k < n {
		w := widthAt(in.Widths, k)
		if used+w > in.Container {
			break
		}
		used += w
		k++
	}
	if k >= n {
		// only reachable when the marker has no width
		return everything
	}
	return OverflowState{
		Index: clampIndex(k, n),
		Hide:  false,
		Menu:  menu.CloneItems(in.Items[k:]),
	}
}

func widthAt(widths []int, i int) int {
	if i < 0 || i >= len(widths) || widths[i] < 0 {
		return 0
	}
	return widths[i]
}

func clampIndex(idx, n int) int {
	if idx < 0 || idx > n {
		return n
	}
	return idx
}

// Splice returns the displayed top-level list: items with the overflow entry
// inserted at the overflow index.
func Splice(items []menu.Item, o OverflowState) []menu.Item {
	idx := clampIndex(o.Index, len(items))
	out := make([]menu.Item, 0, len(items)+1)
	out = append(out, items[:idx]...)
	out = append(out, menu.OverflowItem(o.Menu))
	out = append(out, items[idx:]...)
	return out
}

// Limit returns how many leading entries of the displayed list keyboard
// navigation may reach.
func (o OverflowState) Limit(displayed int) int {
	if o.Hide {
		return displayed - 1
	}
	return o.Index + 1
}

// Visible reports whether the displayed entry at idx is drawn.
func (o OverflowState) Visible(idx int) bool {
	if idx == o.Index {
		return !o.Hide
	}
	return o.Hide || idx < o.Index
}
