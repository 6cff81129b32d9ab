package discord

import "encoding/json"

// application.go represents application commands.

// ApplicationCommandType represents the different types of application command.
type ApplicationCommandType uint16

const (
	ApplicationCommandTypeChatInput ApplicationCommandType = 1 + iota
	ApplicationCommandTypeUser
	ApplicationCommandTypeMessage
	// ApplicationCommandTypePrimaryEntryPoint launches an activity from the app launcher.
	ApplicationCommandTypePrimaryEntryPoint
)

// ApplicationCommandOptionType represents the different types of options.
type ApplicationCommandOptionType uint16

const (
	ApplicationCommandOptionTypeSubCommand ApplicationCommandOptionType = 1 + iota
	ApplicationCommandOptionTypeSubCommandGroup
	ApplicationCommandOptionTypeString
	ApplicationCommandOptionTypeInteger
	ApplicationCommandOptionTypeBoolean
	ApplicationCommandOptionTypeUser
	ApplicationCommandOptionTypeChannel
	ApplicationCommandOptionTypeRole
	ApplicationCommandOptionTypeMentionable
	ApplicationCommandOptionTypeNumber
	ApplicationCommandOptionTypeAttachment
)

// ApplicationCommandOptionChoice represents the different choices.
type ApplicationCommandOptionChoice struct {
	NameLocalizations map[string]string `json:"name_localizations,omitempty"`
	Name              string            `json:"name"`
	Value             json.RawMessage   `json:"value"`
}
