package state

import (
	"testing"

	"github.com/atomicstack/tui-titlebar/internal/menu"
)

func namedItems(labels ...string) []menu.Item {
	items := make([]menu.Item, len(labels))
	for i, label := range labels {
		items[i] = menu.Item{ID: label, Label: label, Submenu: []menu.Item{}}
	}
	return items
}

func TestCalculateOverflowEverythingFits(t *testing.T) {
	o := CalculateOverflow(OverflowInput{
		Items:       namedItems("a", "b", "c"),
		Widths:      []int{5, 5, 5},
		Container:   15,
		MarkerWidth: 3,
		Enabled:     true,
	})
	if o.Index != 3 || !o.Hide || len(o.Menu) != 0 {
		t.Fatalf("expected everything visible, got %#v", o)
	}
}

func TestCalculateOverflowSplits(t *testing.T) {
	items := namedItems("a", "b", "c", "d")
	o := CalculateOverflow(OverflowInput{
		Items:       items,
		Widths:      []int{6, 6, 6, 6},
		Container:   16,
		MarkerWidth: 3,
		Enabled:     true,
	})
	if o.Index != 2 || o.Hide {
		t.Fatalf("expected split at 2, got %#v", o)
	}
	if len(o.Menu) != 2 || o.Menu[0].ID != "c" || o.Menu[1].ID != "d" {
		t.Fatalf("expected c and d in overflow, got %#v", o.Menu)
	}
}

func TestCalculateOverflowUnmeasured(t *testing.T) {
	items := namedItems("a", "b")
	cases := []OverflowInput{
		{Items: items, Widths: []int{10, 10}, Container: 0, MarkerWidth: 3, Enabled: true},
		{Items: items, Widths: nil, Container: 5, MarkerWidth: 3, Enabled: true},
		{Items: items, Widths: []int{10, 10}, Container: 5, MarkerWidth: 3, Enabled: false},
		{Items: nil, Widths: nil, Container: 5, MarkerWidth: 3, Enabled: true},
	}
	for i, in := range cases {
		o := CalculateOverflow(in)
		if o.Index != len(in.Items) || !o.Hide {
			t.Fatalf("case %d: expected show-everything, got %#v", i, o)
		}
	}
}

func TestCalculateOverflowCoverage(t *testing.T) {
	widths := []int{7, 3, 9, 4, 6, 2, 8}
	items := namedItems("a", "b", "c", "d", "e", "f", "g")
	const marker = 3
	for container := 1; container <= 45; container++ {
		o := CalculateOverflow(OverflowInput{
			Items:       items,
			Widths:      widths,
			Container:   container,
			MarkerWidth: marker,
			Enabled:     true,
		})
		k := o.Index
		if o.Hide != (k == len(items)) {
			t.Fatalf("width %d: hide=%v with k=%d", container, o.Hide, k)
		}
		if k < len(items) {
			sum := marker
			for _, w := range widths[:k] {
				sum += w
			}
			if sum > container {
				t.Fatalf("width %d: prefix %d needs %d columns", container, k, sum)
			}
			if sum+widths[k] <= container {
				t.Fatalf("width %d: prefix %d is not maximal", container, k)
			}
			if len(o.Menu) != len(items)-k {
				t.Fatalf("width %d: expected %d overflowed, got %d", container, len(items)-k, len(o.Menu))
			}
		}
	}
}

func TestSpliceAndVisibility(t *testing.T) {
	items := namedItems("a", "b", "c")
	o := OverflowState{Index: 1, Menu: items[1:]}
	display := Splice(items, o)
	if len(display) != 4 || display[1].ID != menu.OverflowID {
		t.Fatalf("expected marker at 1, got %#v", display)
	}
	if len(display[1].Submenu) != 2 {
		t.Fatalf("expected overflow submenu of 2, got %d", len(display[1].Submenu))
	}
	if o.Limit(len(display)) != 2 {
		t.Fatalf("expected limit 2, got %d", o.Limit(len(display)))
	}
	want := []bool{true, true, false, false}
	for i, v := range want {
		if o.Visible(i) != v {
			t.Fatalf("visible(%d) = %v, want %v", i, o.Visible(i), v)
		}
	}

	hidden := OverflowState{Index: 3, Hide: true}
	display = Splice(items, hidden)
	if display[3].ID != menu.OverflowID || hidden.Visible(3) {
		t.Fatalf("expected hidden trailing marker")
	}
	if hidden.Limit(len(display)) != 3 {
		t.Fatalf("expected limit 3, got %d", hidden.Limit(len(display)))
	}

	clamped := Splice(items, OverflowState{Index: 99, Hide: true})
	if clamped[3].ID != menu.OverflowID {
		t.Fatalf("expected out-of-range index clamped to end")
	}
}
