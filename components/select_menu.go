package components

import (
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
)

// SelectMenu covers every select menu type. The type is chosen on
// construction and decides which of Options, ChannelTypes and DefaultValues
// are serialized.
type SelectMenu struct {
	ID            *int32
	MinValues     *int32
	MaxValues     *int32
	CustomID      string
	Placeholder   string
	Options       []discord.SelectOption
	ChannelTypes  []discord.ChannelType
	DefaultValues []discord.SelectDefaultValue
	Disabled      bool

	componentType discord.ComponentType
}

type selectMenuPayload struct {
	ID            *int32                       `json:"id,omitempty"`
	MinValues     *int32                       `json:"min_values,omitempty"`
	MaxValues     *int32                       `json:"max_values,omitempty"`
	CustomID      string                       `json:"custom_id"`
	Placeholder   string                       `json:"placeholder,omitempty"`
	Options       []discord.SelectOption       `json:"options,omitempty"`
	ChannelTypes  []discord.ChannelType        `json:"channel_types,omitempty"`
	DefaultValues []discord.SelectDefaultValue `json:"default_values,omitempty"`
	Type          discord.ComponentType        `json:"type"`
	Disabled      bool                         `json:"disabled,omitempty"`
}

func newSelectMenu(componentType discord.ComponentType) *SelectMenu {
	return &SelectMenu{
		componentType: componentType,
	}
}

func NewStringSelectMenu(customID string, options ...discord.SelectOption) *SelectMenu {
	menu := newSelectMenu(discord.ComponentTypeStringSelect)
	menu.CustomID = customID
	menu.Options = options

	return menu
}

func NewUserSelectMenu(customID string) *SelectMenu {
	menu := newSelectMenu(discord.ComponentTypeUserSelect)
	menu.CustomID = customID

	return menu
}

func NewRoleSelectMenu(customID string) *SelectMenu {
	menu := newSelectMenu(discord.ComponentTypeRoleSelect)
	menu.CustomID = customID

	return menu
}

func NewMentionableSelectMenu(customID string) *SelectMenu {
	menu := newSelectMenu(discord.ComponentTypeMentionableSelect)
	menu.CustomID = customID

	return menu
}

func NewChannelSelectMenu(customID string, channelTypes ...discord.ChannelType) *SelectMenu {
	menu := newSelectMenu(discord.ComponentTypeChannelSelect)
	menu.CustomID = customID
	menu.ChannelTypes = channelTypes

	return menu
}

func (sm *SelectMenu) Type() discord.ComponentType {
	return sm.componentType
}

func (sm *SelectMenu) SetCustomID(customID string) *SelectMenu {
	sm.CustomID = customID

	return sm
}

func (sm *SelectMenu) SetPlaceholder(placeholder string) *SelectMenu {
	sm.Placeholder = placeholder

	return sm
}

func (sm *SelectMenu) SetMinMaxValues(minValues, maxValues *int32) *SelectMenu {
	sm.MinValues = minValues
	sm.MaxValues = maxValues

	return sm
}

func (sm *SelectMenu) SetDisabled(disabled bool) *SelectMenu {
	sm.Disabled = disabled

	return sm
}

func (sm *SelectMenu) SetID(id int32) *SelectMenu {
	sm.ID = &id

	return sm
}

// AddOptions appends options. Only string selects serialize options.
func (sm *SelectMenu) AddOptions(options ...discord.SelectOption) *SelectMenu {
	sm.Options = append(sm.Options, options...)

	return sm
}

// SetOptions replaces every option.
func (sm *SelectMenu) SetOptions(options []discord.SelectOption) *SelectMenu {
	sm.Options = append(make([]discord.SelectOption, 0, len(options)), options...)

	return sm
}

// SetChannelTypes limits which channels a channel select offers.
func (sm *SelectMenu) SetChannelTypes(channelTypes ...discord.ChannelType) *SelectMenu {
	sm.ChannelTypes = channelTypes

	return sm
}

// AddDefaultValues pre-selects values of user, role, mentionable and channel selects.
func (sm *SelectMenu) AddDefaultValues(values ...discord.SelectDefaultValue) *SelectMenu {
	sm.DefaultValues = append(sm.DefaultValues, values...)

	return sm
}

func (sm *SelectMenu) MarshalJSON() ([]byte, error) {
	payload := selectMenuPayload{
		ID:          sm.ID,
		MinValues:   sm.MinValues,
		MaxValues:   sm.MaxValues,
		CustomID:    sm.CustomID,
		Placeholder: sm.Placeholder,
		Type:        sm.componentType,
		Disabled:    sm.Disabled,
	}

	switch sm.componentType {
	case discord.ComponentTypeStringSelect:
		payload.Options = sm.Options
	case discord.ComponentTypeChannelSelect:
		payload.ChannelTypes = sm.ChannelTypes
		payload.DefaultValues = sm.DefaultValues
	default:
		payload.DefaultValues = sm.DefaultValues
	}

	return sandwichjson.Marshal(payload)
}

func (sm *SelectMenu) UnmarshalJSON(data []byte) error {
	var payload selectMenuPayload

	if err := sandwichjson.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal select menu: %w", err)
	}

	if sm.componentType == 0 {
		sm.componentType = payload.Type
	}

	sm.ID = payload.ID
	sm.MinValues = payload.MinValues
	sm.MaxValues = payload.MaxValues
	sm.CustomID = payload.CustomID
	sm.Placeholder = payload.Placeholder
	sm.Disabled = payload.Disabled
	sm.Options = nil
	sm.ChannelTypes = nil
	sm.DefaultValues = nil

	switch sm.componentType {
	case discord.ComponentTypeStringSelect:
		sm.Options = payload.Options
	case discord.ComponentTypeChannelSelect:
		sm.ChannelTypes = payload.ChannelTypes
		sm.DefaultValues = payload.DefaultValues
	default:
		sm.DefaultValues = payload.DefaultValues
	}

	return nil
}
