package discord

import "encoding/json"

// interactions.go represents the interaction objects.

// InteractionType represents the type of interaction.
type InteractionType uint16

const (
	InteractionTypePing InteractionType = 1 + iota
	InteractionTypeApplicationCommand
	InteractionTypeMessageComponent
	InteractionTypeApplicationCommandAutocomplete
	InteractionTypeModalSubmit
)

// InteractionCallbackType represents the type of interaction callbacks.
type InteractionCallbackType uint16

const (
	InteractionCallbackTypePong InteractionCallbackType = 1 + iota

	_
	_

	// InteractionCallbackTypeChannelMessageSource responds to an interaction with a message.
	InteractionCallbackTypeChannelMessageSource

	// InteractionCallbackTypeDeferredChannelMessageSource acknowledges an interaction and
	// edits a response later, users see a loading state.
	InteractionCallbackTypeDeferredChannelMessageSource

	// InteractionCallbackTypeDeferredUpdateMessage acknowledges an interaction and edits
	// a response later, users do not see a loading state.
	InteractionCallbackTypeDeferredUpdateMessage

	// InteractionCallbackTypeUpdateMessage edits the message the component was attached to.
	InteractionCallbackTypeUpdateMessage

	// InteractionCallbackTypeAutocompleteResult responds to an autocomplete interaction.
	InteractionCallbackTypeAutocompleteResult

	// InteractionCallbackTypeModal responds to an interaction with a popup modal.
	InteractionCallbackTypeModal
)

// ComponentType represents the type of component.
type ComponentType uint16

const (
	// ComponentTypeActionRow is a non-interactive container for other components.
	// You can have up to 5 action rows per message and cannot contain other action rows.
	ComponentTypeActionRow ComponentType = 1 + iota
	// ComponentTypeButton is an interactive component that renders in messages.
	// They can be clicked by users and must be in an action row.
	ComponentTypeButton
	// ComponentTypeStringSelect allows for users to select from predefined text options.
	ComponentTypeStringSelect
	// ComponentTypeTextInput allows for users to freely input text.
	ComponentTypeTextInput
	ComponentTypeUserSelect
	ComponentTypeRoleSelect
	ComponentTypeMentionableSelect
	ComponentTypeChannelSelect
)

// IsSelectMenu returns true for every select menu component type.
func (ct ComponentType) IsSelectMenu() bool {
	switch ct {
	case ComponentTypeStringSelect,
		ComponentTypeUserSelect,
		ComponentTypeRoleSelect,
		ComponentTypeMentionableSelect,
		ComponentTypeChannelSelect:
		return true
	default:
		return false
	}
}

// ButtonStyle represents the style of a button.
type ButtonStyle uint16

const (
	ButtonStylePrimary ButtonStyle = 1 + iota
	ButtonStyleSecondary
	ButtonStyleSuccess
	ButtonStyleDanger
	ButtonStyleLink
	// ButtonStylePremium links to a SKU and has no custom_id, label, url or emoji.
	ButtonStylePremium
)

// TextInputStyle represents the style of a text input.
type TextInputStyle uint16

const (
	// TextInputStyleShort allows for a single-line input on text inputs.
	TextInputStyleShort TextInputStyle = 1 + iota
	// TextInputStyleParagraph allows for a multi-line input on text inputs.
	TextInputStyleParagraph
)

// SelectDefaultValueType represents what a default value of an auto-populated select refers to.
type SelectDefaultValueType string

const (
	SelectDefaultValueTypeUser    SelectDefaultValueType = "user"
	SelectDefaultValueTypeRole    SelectDefaultValueType = "role"
	SelectDefaultValueTypeChannel SelectDefaultValueType = "channel"
)

// Interaction represents the structure of an interaction.
type Interaction struct {
	Member         *GuildMember     `json:"member,omitempty"`
	Message        *Message         `json:"message,omitempty"`
	AppPermissions *Int64           `json:"app_permissions,omitempty"`
	Data           *InteractionData `json:"data,omitempty"`
	GuildID        *GuildID         `json:"guild_id,omitempty"`
	ChannelID      *ChannelID       `json:"channel_id,omitempty"`
	Channel        *Channel         `json:"channel,omitempty"`
	User           *User            `json:"user,omitempty"`
	Token          string           `json:"token"`
	Locale         string           `json:"locale,omitempty"`
	GuildLocale    string           `json:"guild_locale,omitempty"`
	ID             InteractionID    `json:"id"`
	ApplicationID  ApplicationID    `json:"application_id"`
	Version        int32            `json:"version"`
	Type           InteractionType  `json:"type"`
}

// InteractionResponse represents the interaction response object.
type InteractionResponse struct {
	Data *InteractionCallbackData `json:"data,omitempty"`
	Type InteractionCallbackType  `json:"type"`
}

// InteractionData represents the structure of interaction data.
type InteractionData struct {
	TargetID      *Snowflake               `json:"target_id,omitempty"`
	Resolved      *InteractionResolvedData `json:"resolved,omitempty"`
	GuildID       *GuildID                 `json:"guild_id,omitempty"`
	ComponentType *ComponentType           `json:"component_type,omitempty"`
	Name          string                   `json:"name,omitempty"`
	CustomID      string                   `json:"custom_id,omitempty"`
	Options       []InteractionDataOption  `json:"options,omitempty"`
	Values        []string                 `json:"values,omitempty"`
	Components    []json.RawMessage        `json:"components,omitempty"`
	ID            ApplicationCommandID     `json:"id,omitempty"`
	Type          ApplicationCommandType   `json:"type,omitempty"`
}

// InteractionCallbackData represents the structure of the interaction callback data.
// Not all message fields are supported, allowed fields are: tts, content
// embeds, allowed_mentions, flags, components and attachments.
type InteractionCallbackData struct {
	Content         string                           `json:"content,omitempty"`
	Title           string                           `json:"title,omitempty"`
	CustomID        string                           `json:"custom_id,omitempty"`
	AllowedMentions *MessageAllowedMentions          `json:"allowed_mentions,omitempty"`
	Components      []json.RawMessage                `json:"components,omitempty"`
	Choices         []ApplicationCommandOptionChoice `json:"choices,omitempty"`
	Flags           MessageFlags                     `json:"flags,omitempty"`
	TTS             bool                             `json:"tts,omitempty"`
}

// InteractionDataOption represents the structure of an interaction option.
type InteractionDataOption struct {
	Name    string                       `json:"name"`
	Value   json.RawMessage              `json:"value,omitempty"`
	Options []InteractionDataOption      `json:"options,omitempty"`
	Type    ApplicationCommandOptionType `json:"type"`
	Focused bool                         `json:"focused,omitempty"`
}

// InteractionResolvedData represents any extra payload data for an interaction.
type InteractionResolvedData struct {
	Users       map[UserID]User                    `json:"users,omitempty"`
	Members     map[UserID]GuildMember             `json:"members,omitempty"`
	Roles       map[RoleID]Role                    `json:"roles,omitempty"`
	Channels    map[ChannelID]Channel              `json:"channels,omitempty"`
	Messages    map[MessageID]Message              `json:"messages,omitempty"`
	Attachments map[AttachmentID]MessageAttachment `json:"attachments,omitempty"`
}

// SelectOption represents an option of a string select menu.
type SelectOption struct {
	Emoji       *PartialEmoji `json:"emoji,omitempty"`
	Label       string        `json:"label"`
	Value       string        `json:"value"`
	Description string        `json:"description,omitempty"`
	Default     bool          `json:"default,omitempty"`
}

// SelectDefaultValue represents a pre-selected value of an auto-populated select menu.
type SelectDefaultValue struct {
	ID   Snowflake              `json:"id"`
	Type SelectDefaultValueType `json:"type"`
}
