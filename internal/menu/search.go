package menu

// clampLimit bounds a search to the first limit items. Non-positive or
// oversized limits cover the whole list.
func clampLimit(items []Item, limit int) int {
	if limit <= 0 || limit > len(items) {
		return len(items)
	}
	return limit
}

// ValidNext returns the next selectable index after current, wrapping within
// the first limit items. It returns -1 when nothing is selectable.
func ValidNext(items []Item, current, limit int) int {
	return validStep(items, current, limit, 1)
}

// ValidPrevious is ValidNext searching backwards.
func ValidPrevious(items []Item, current, limit int) int {
	return validStep(items, current, limit, -1)
}

func validStep(items []Item, current, limit, step int) int {
	n := clampLimit(items, limit)
	if n == 0 {
		return -1
	}
	if current < 0 || current >= n {
		// an unselected level starts just outside the range
		if step > 0 {
			current = -1
		} else {
			current = n
		}
	}
	idx := current
	for i := 0; i < n; i++ {
		idx = ((idx+step)%n + n) % n
		if items[idx].Selectable() {
			return idx
		}
	}
	return -1
}

// MenuAt returns the list shown at depth for the given selection path, or nil
// when the path does not open that deep.
func MenuAt(items []Item, path []int, depth int) []Item {
	current := items
	for d := 0; d < depth; d++ {
		if d >= len(path) {
			return nil
		}
		idx := path[d]
		if idx < 0 || idx >= len(current) {
			return nil
		}
		current = current[idx].Submenu
	}
	return current
}

// Selection describes the deepest selected item along a path.
type Selection struct {
	Item  Item
	Index int
	Depth int
	Menu  []Item
}

// SelectedItem walks the path and returns the deepest selected item.
func SelectedItem(items []Item, path []int) (Selection, bool) {
	var sel Selection
	found := false
	current := items
	for d, idx := range path {
		if idx < 0 || idx >= len(current) {
			break
		}
		sel = Selection{Item: current[idx], Index: idx, Depth: d, Menu: current}
		found = true
		current = current[idx].Submenu
	}
	return sel, found
}
