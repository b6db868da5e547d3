package command

import (
	"fmt"

	"github.com/atomicstack/tui-titlebar/internal/logging/events"
	"github.com/atomicstack/tui-titlebar/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Request is an activated menu leaf paired with the action bound to it.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Item    menu.Item
}

// NewRequest resolves item against the registry. Leaves without a registered
// action get menu.DefaultAction under their own ID.
func NewRequest(reg *menu.Registry, item menu.Item) Request {
	req := Request{
		ID:    item.ID,
		Label: menu.PlainLabel(item.Label),
		Item:  item,
	}
	if reg != nil {
		if id, handler, ok := reg.Resolve(item); ok {
			req.ID = id
			req.Handler = handler
			return req
		}
	}
	req.Handler = menu.DefaultAction
	return req
}

// Bus turns activations into Bubble Tea commands.
type Bus struct{}

func New() *Bus {
	return &Bus{}
}

// Execute defers the action until Bubble Tea runs the returned command, so
// slow handlers such as exec never block the menu. The message the action
// produces is handed back to the model unchanged.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		return func() tea.Msg {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
	}
	return func() tea.Msg {
		cmd := req.Handler(ctx, req.Item)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
