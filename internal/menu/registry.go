package menu

import (
	"sort"
	"strings"
)

// Registry maps action identifiers to their execution logic.
type Registry struct {
	actions map[string]Action
}

// BuildRegistry constructs the registry from the built-in action handlers.
func BuildRegistry() *Registry {
	r := &Registry{actions: make(map[string]Action)}
	for id, action := range ActionHandlers() {
		r.Register(id, action)
	}
	return r
}

// Register binds an action to id, replacing any previous binding.
func (r *Registry) Register(id string, action Action) {
	id = normalizeID(id)
	if id == "" || action == nil {
		return
	}
	r.actions[id] = action
}

// Find locates an action by ID.
func (r *Registry) Find(id string) (Action, bool) {
	if r == nil {
		return nil, false
	}
	action, ok := r.actions[normalizeID(id)]
	return action, ok
}

// Resolve returns the action for an item, falling back to its ID when the
// item does not name one explicitly.
func (r *Registry) Resolve(item Item) (string, Action, bool) {
	for _, id := range []string{item.Action, item.ID} {
		if strings.TrimSpace(id) == "" {
			continue
		}
		if action, ok := r.Find(id); ok {
			return normalizeID(id), action, true
		}
	}
	return "", nil, false
}

// IDs lists the registered action identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.actions))
	for id := range r.actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
