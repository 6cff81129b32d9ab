package sandwich

import (
	"context"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
)

type DispatchHandler func(ctx context.Context, client *Client, msg *discord.GatewayPayload) error

type EventDispatchProvider interface {
	Dispatch(ctx context.Context, client *Client, msg *discord.GatewayPayload) error
}
