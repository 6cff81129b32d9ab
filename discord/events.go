package discord

import "encoding/json"

// events.go contains the gateway payload envelope and the names of dispatched events.

// GatewayOp represents the operation of a gateway payload.
type GatewayOp uint8

const (
	GatewayOpDispatch GatewayOp = 0
)

// Dispatched event names.
const (
	DiscordEventReady             = "READY"
	DiscordEventGuildCreate       = "GUILD_CREATE"
	DiscordEventGuildUpdate       = "GUILD_UPDATE"
	DiscordEventChannelCreate     = "CHANNEL_CREATE"
	DiscordEventMessageCreate     = "MESSAGE_CREATE"
	DiscordEventMessageUpdate     = "MESSAGE_UPDATE"
	DiscordEventGuildMemberAdd    = "GUILD_MEMBER_ADD"
	DiscordEventInteractionCreate = "INTERACTION_CREATE"
)

// GatewayPayload represents the base payload received from discord gateway.
type GatewayPayload struct {
	Type     string          `json:"t"`
	Data     json.RawMessage `json:"d"`
	Sequence int32           `json:"s"`
	Op       GatewayOp       `json:"op"`
}
