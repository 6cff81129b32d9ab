package sandwich

import (
	"context"
	"errors"
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
)

// EventProviderWithBlacklist is an event provider that will not handle events that are in the blacklist.
// Events without a dispatch handler are ignored.
type EventProviderWithBlacklist struct {
	dispatchProvider EventDispatchProvider
	eventBlacklist   map[string]struct{}
}

func NewEventProviderWithBlacklist(dispatchProvider EventDispatchProvider, eventBlacklist []string) *EventProviderWithBlacklist {
	blacklist := make(map[string]struct{}, len(eventBlacklist))

	for _, eventType := range eventBlacklist {
		blacklist[eventType] = struct{}{}
	}

	return &EventProviderWithBlacklist{
		dispatchProvider: dispatchProvider,
		eventBlacklist:   blacklist,
	}
}

func (p *EventProviderWithBlacklist) Dispatch(ctx context.Context, client *Client, msg *discord.GatewayPayload) error {
	if _, ok := p.eventBlacklist[msg.Type]; ok {
		return nil
	}

	err := p.dispatchProvider.Dispatch(ctx, client, msg)
	if err != nil {
		if errors.Is(err, ErrNoDispatchHandler) {
			return nil
		}

		return fmt.Errorf("failed to dispatch event: %w", err)
	}

	return nil
}
