package sandwich

import (
	"context"
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
)

func init() {
	registerDispatchHandler(discord.DiscordEventInteractionCreate, OnInteractionCreate)
	registerDispatchHandler(discord.DiscordEventGuildCreate, OnGuildCreate)
	registerDispatchHandler(discord.DiscordEventGuildUpdate, OnGuildUpdate)
	registerDispatchHandler(discord.DiscordEventMessageCreate, OnMessageCreate)
}

// OnInteractionCreate handles the INTERACTION_CREATE event. It never returns an
// error, interactions that cannot be dispatched are dropped.
func OnInteractionCreate(ctx context.Context, client *Client, msg *discord.GatewayPayload) error {
	client.DispatchInteraction(ctx, msg.Data)

	return nil
}

// OnGuildCreate handles the GUILD_CREATE event. Unavailable guilds are ignored.
func OnGuildCreate(ctx context.Context, client *Client, msg *discord.GatewayPayload) error {
	var availability struct {
		Unavailable bool `json:"unavailable"`
	}

	if err := unmarshalPayload(msg, &availability); err != nil {
		return err
	}

	if availability.Unavailable {
		return nil
	}

	guild, err := client.Guilds.Create(msg.Data)
	if err != nil {
		return fmt.Errorf("failed to create guild: %w", err)
	}

	client.GuildCreate.Publish(ctx, guild)

	return nil
}

func OnGuildUpdate(ctx context.Context, client *Client, msg *discord.GatewayPayload) error {
	guild, err := client.Guilds.Create(msg.Data)
	if err != nil {
		return fmt.Errorf("failed to create guild: %w", err)
	}

	client.GuildUpdate.Publish(ctx, guild)

	return nil
}

func OnMessageCreate(ctx context.Context, client *Client, msg *discord.GatewayPayload) error {
	message, err := client.Messages.Create(msg.Data)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	client.MessageCreate.Publish(ctx, message)

	return nil
}
