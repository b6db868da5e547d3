package state

import "testing"

func path(entries ...int) Path {
	return Path(entries)
}

func TestReduceTransitions(t *testing.T) {
	cases := []struct {
		name   string
		start  Path
		action Action
		want   Path
	}{
		{"reset", path(1, 2, 3), Reset{}, path(-1)},
		{"set truncates then appends", path(1, 2, 3), SetAt{Depth: 1, Selected: 0}, path(1, 0)},
		{"set opens next level", path(1, 2), SetAt{Depth: 2, Selected: 4}, path(1, 2, 4)},
		{"set past end keeps path", path(1), SetAt{Depth: 3, Selected: 0}, path(1, 0)},
		{"delete collapses", path(1, 2, 3), DeleteFrom{Depth: 1}, path(1)},
		{"delete past end is a no-op", path(1, 2), DeleteFrom{Depth: 5}, path(1, 2)},
		{"toggle opens", path(-1), ToggleAt{Depth: 0, Selected: 2}, path(2, -1)},
		{"toggle closes open branch", path(2, -1), ToggleAt{Depth: 0, Selected: 2}, path(-1)},
		{"toggle retargets", path(1, 3, -1), ToggleAt{Depth: 0, Selected: 2}, path(2, -1)},
		{"toggle nested", path(1, -1), ToggleAt{Depth: 1, Selected: 0}, path(1, 0, -1)},
		{"negative depth clamps", path(1, 2), SetAt{Depth: -3, Selected: 0}, path(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reduce(MenuState{Path: tc.start}, tc.action)
			if !got.Path.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got.Path)
			}
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	start := path(1, 2, 3)
	s := MenuState{Path: start}
	Reduce(s, SetAt{Depth: 1, Selected: 9})
	Reduce(s, ToggleAt{Depth: 0, Selected: 4})
	Reduce(s, DeleteFrom{Depth: 0})
	if !start.Equal(path(1, 2, 3)) {
		t.Fatalf("expected input path untouched, got %v", start)
	}
}

func TestReduceFlagsLeavePathAlone(t *testing.T) {
	s := MenuState{Path: path(0, 1)}
	s = Reduce(s, SetAlt{Active: true})
	s = Reduce(s, SetHovering{Hovering: true})
	if !s.AltKey || !s.Hovering {
		t.Fatalf("expected flags set, got %#v", s)
	}
	if !s.Path.Equal(path(0, 1)) {
		t.Fatalf("expected path unchanged, got %v", s.Path)
	}
	s = Reduce(s, nil)
	if !s.Path.Equal(path(0, 1)) {
		t.Fatalf("expected nil action to be ignored, got %v", s.Path)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	starts := []Path{path(-1), path(0, -1), path(3, 1, 2), path()}
	for _, start := range starts {
		s := MenuState{Path: start, AltKey: true}
		once := Reduce(s, Reset{})
		twice := Reduce(once, Reset{})
		if !once.Path.Equal(twice.Path) || once.AltKey != twice.AltKey {
			t.Fatalf("reset not idempotent for %v: %v vs %v", start, once.Path, twice.Path)
		}
	}
}

func TestToggleSymmetry(t *testing.T) {
	starts := []Path{path(-1), path(1, -1), path(1, 0, -1), path(2, 3)}
	for _, start := range starts {
		for depth := 0; depth < len(start); depth++ {
			selected := start[depth] + 5
			s := Reduce(MenuState{Path: start}, ToggleAt{Depth: depth, Selected: selected})
			s = Reduce(s, ToggleAt{Depth: depth, Selected: selected})
			want := append(start.Clone()[:depth], -1)
			if !s.Path.Equal(want) {
				t.Fatalf("start %v depth %d: expected %v, got %v", start, depth, want, s.Path)
			}
		}
	}
}

func TestDeleteFromTruncates(t *testing.T) {
	start := path(4, 2, 1, 0)
	for depth := 0; depth <= len(start); depth++ {
		s := Reduce(MenuState{Path: start}, DeleteFrom{Depth: depth})
		if len(s.Path) != depth {
			t.Fatalf("expected length %d, got %v", depth, s.Path)
		}
	}
}

func TestInitialAndIsOpen(t *testing.T) {
	s := Initial()
	if !s.Path.Equal(path(-1)) || s.IsOpen() {
		t.Fatalf("unexpected initial state %#v", s)
	}
	s = Reduce(s, ToggleAt{Depth: 0, Selected: 0})
	if !s.IsOpen() {
		t.Fatalf("expected open after toggle")
	}
	if (MenuState{}).IsOpen() {
		t.Fatalf("expected empty path to read as closed")
	}
}
