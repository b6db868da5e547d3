package state

// Path records the open item at every nesting depth; -1 means nothing is
// selected at that depth. Depth d+1 is only meaningful while Path[d] >= 0.
type Path []int

// At returns the index selected at depth, or -1 when the path is shorter.
func (p Path) At(depth int) int {
	if depth < 0 || depth >= len(p) {
		return -1
	}
	return p[depth]
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	dup := make(Path, len(p))
	copy(dup, p)
	return dup
}

// Equal reports whether both paths hold the same entries.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// prefix copies the first depth entries, tolerating depths past the end.
func (p Path) prefix(depth int, extra int) Path {
	if depth < 0 {
		depth = 0
	}
	if depth > len(p) {
		depth = len(p)
	}
	out := make(Path, depth, depth+extra)
	copy(out, p[:depth])
	return out
}

// MenuState is the navigation state owned by one menu bar.
type MenuState struct {
	Path     Path
	AltKey   bool
	Hovering bool
}

// Initial returns the state of a freshly mounted menu bar.
func Initial() MenuState {
	return MenuState{Path: Path{-1}}
}

// IsOpen reports whether a top-level branch is open.
func (s MenuState) IsOpen() bool {
	return s.Path.At(0) >= 0
}

// Action is a state transition. The set of implementations is closed.
type Action interface {
	action()
	String() string
}

// SetAlt records whether the Alt modifier is held.
type SetAlt struct{ Active bool }

// Reset closes every menu.
type Reset struct{}

// SetAt truncates the path at Depth and appends Selected.
type SetAt struct{ Depth, Selected int }

// DeleteFrom collapses the path from Depth onwards.
type DeleteFrom struct{ Depth int }

// ToggleAt opens Selected at Depth, or closes it when it is already open.
type ToggleAt struct{ Depth, Selected int }

// SetHovering records whether a top-level button is under the pointer.
type SetHovering struct{ Hovering bool }

func (SetAlt) action()      {}
func (Reset) action()       {}
func (SetAt) action()       {}
func (DeleteFrom) action()  {}
func (ToggleAt) action()    {}
func (SetHovering) action() {}

func (SetAlt) String() string      { return "alt" }
func (Reset) String() string       { return "reset" }
func (SetAt) String() string       { return "set" }
func (DeleteFrom) String() string  { return "del" }
func (ToggleAt) String() string    { return "toggle" }
func (SetHovering) String() string { return "hovering" }

// Reduce applies an action and returns the new state. The input path is
// never modified.
func Reduce(s MenuState, a Action) MenuState {
	switch act := a.(type) {
	case SetAlt:
		s.AltKey = act.Active
	case Reset:
		s.Path = Path{-1}
	case SetAt:
		next := s.Path.prefix(act.Depth, 1)
		s.Path = append(next, act.Selected)
	case DeleteFrom:
		s.Path = s.Path.prefix(act.Depth, 0)
	case ToggleAt:
		if s.Path.At(act.Depth) == act.Selected {
			s.Path = append(s.Path.prefix(act.Depth, 1), -1)
			break
		}
		s.Path = append(s.Path.prefix(act.Depth, 2), act.Selected, -1)
	case SetHovering:
		s.Hovering = act.Hovering
	}
	return s
}
