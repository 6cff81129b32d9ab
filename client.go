package sandwich

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/WelcomerTeam/Sandwich-Interactions/messaging"
	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Client receives produced payloads and dispatches them to its events.
type Client struct {
	Logger zerolog.Logger

	// Structures is used to construct every structure the client creates.
	Structures *Structures

	InteractionCreate Event[Interaction]
	GuildCreate       Event[GuildStructure]
	GuildUpdate       Event[GuildStructure]
	MessageCreate     Event[MessageStructure]
	Debug             Event[*DebugEvent]

	Guilds   *Manager[GuildStructure]
	Channels *Manager[ChannelStructure]
	Messages *Manager[MessageStructure]
	Users    *Manager[UserStructure]
	Members  *Manager[GuildMemberStructure]
	Roles    *Manager[RoleStructure]

	dispatchProvider EventDispatchProvider
	processed        *atomic.Int64
}

type ClientOptions struct {
	// Logger defaults to a disabled logger.
	Logger *zerolog.Logger

	// Structures defaults to DefaultStructures.
	Structures *Structures

	// EventBlacklist lists event types that are not dispatched.
	EventBlacklist []string
}

func NewClient(options ClientOptions) *Client {
	client := &Client{
		Logger:     zerolog.Nop(),
		Structures: options.Structures,
		processed:  atomic.NewInt64(0),
	}

	if options.Logger != nil {
		client.Logger = options.Logger.With().Str("component", "client").Logger()
	}

	if client.Structures == nil {
		client.Structures = DefaultStructures()
	}

	client.dispatchProvider = NewEventProviderWithBlacklist(NewBuiltinDispatchProvider(), options.EventBlacklist)

	client.Guilds = NewManager[GuildStructure](client, StructureGuild)
	client.Channels = NewManager[ChannelStructure](client, StructureChannel)
	client.Messages = NewManager[MessageStructure](client, StructureMessage)
	client.Users = NewManager[UserStructure](client, StructureUser)
	client.Members = NewManager[GuildMemberStructure](client, StructureGuildMember)
	client.Roles = NewManager[RoleStructure](client, StructureRole)

	return client
}

// Processed returns the number of payloads handled by Run.
func (c *Client) Processed() int64 {
	return c.processed.Load()
}

// HandlePayload decodes a produced payload and dispatches it. Panics raised
// while handling the payload, including by listeners, are returned as errors.
func (c *Client) HandlePayload(ctx context.Context, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger.Error().
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("Recovered panic while handling payload")

			err = fmt.Errorf("%w: %v", ErrEventPanic, r)
		}
	}()

	var payload ProducedPayload

	if err = sandwichjson.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	RecordEvent(payload.Type)

	ctx = WithMetadata(ctx, payload.Metadata)

	if err = c.dispatchProvider.Dispatch(ctx, c, &payload.GatewayPayload); err != nil {
		RecordEventError(payload.Type)

		c.Debug.Publish(ctx, &DebugEvent{
			Err:       err,
			Message:   "failed to handle event",
			EventType: payload.Type,
		})

		return err
	}

	return nil
}

// Run subscribes to channel and handles every message, one at a time and in
// the order they arrive, until the context is done or the subscription ends.
func (c *Client) Run(ctx context.Context, mq messaging.MQClient, channel string) error {
	messages, err := mq.Subscribe(ctx, channel)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	c.Logger.Info().
		Str("mq", mq.String()).
		Str("channel", channel).
		Msg("Consuming events")

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				c.Logger.Info().Msg("Subscription closed")

				return nil
			}

			if err := c.HandlePayload(ctx, msg); err != nil {
				c.Logger.Error().Err(err).Msg("Failed to handle payload")
			}

			c.processed.Inc()
		}
	}
}
