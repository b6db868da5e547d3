package nav

// altTap recognises Alt pressed and released with no other key in between.
type altTap struct {
	held    bool
	presses int
}

// observe feeds one event to the tracker and reports whether it completed a
// lone Alt tap.
func (a *altTap) observe(ev KeyEvent) bool {
	if ev.Key == KeyAlt {
		if !ev.Release {
			if !a.held {
				a.held = true
				a.presses = 0
			}
			return false
		}
		lone := a.held && a.presses == 0
		a.held = false
		a.presses = 0
		return lone
	}
	if a.held && !ev.Release {
		a.presses++
	}
	return false
}

func (a *altTap) reset() {
	a.held = false
	a.presses = 0
}
