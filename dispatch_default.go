package sandwich

import (
	"context"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
)

var dispatchHandlers = make(map[string]DispatchHandler)

type BuiltinDispatchProvider struct {
	dispatchHandlers map[string]DispatchHandler
}

func NewBuiltinDispatchProvider() *BuiltinDispatchProvider {
	return &BuiltinDispatchProvider{
		dispatchHandlers: dispatchHandlers,
	}
}

// Dispatch dispatches an event to the appropriate handler.
func (p *BuiltinDispatchProvider) Dispatch(ctx context.Context, client *Client, msg *discord.GatewayPayload) error {
	if handler, ok := p.dispatchHandlers[msg.Type]; ok {
		return handler(ctx, client, msg)
	}

	return ErrNoDispatchHandler
}

func registerDispatchHandler(eventType string, handler DispatchHandler) {
	dispatchHandlers[eventType] = handler
}
