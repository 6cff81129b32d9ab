package components

import (
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
)

// Button is an interactive component that renders in messages.
// Link buttons carry a URL and premium buttons a SKU instead of a custom ID.
type Button struct {
	Emoji    *discord.PartialEmoji
	ID       *int32
	SKUID    *discord.SKUID
	Label    string
	CustomID string
	URL      string
	Style    discord.ButtonStyle
	Disabled bool
}

type buttonPayload struct {
	Emoji    *discord.PartialEmoji `json:"emoji,omitempty"`
	ID       *int32                `json:"id,omitempty"`
	SKUID    *discord.SKUID        `json:"sku_id,omitempty"`
	Label    string                `json:"label,omitempty"`
	CustomID string                `json:"custom_id,omitempty"`
	URL      string                `json:"url,omitempty"`
	Type     discord.ComponentType `json:"type"`
	Style    discord.ButtonStyle   `json:"style"`
	Disabled bool                  `json:"disabled,omitempty"`
}

func NewButton(style discord.ButtonStyle) *Button {
	return &Button{
		Style: style,
	}
}

// NewLinkButton returns a link button pointing to url.
func NewLinkButton(url, label string) *Button {
	return &Button{
		Style: discord.ButtonStyleLink,
		URL:   url,
		Label: label,
	}
}

func (b *Button) Type() discord.ComponentType {
	return discord.ComponentTypeButton
}

func (b *Button) SetStyle(style discord.ButtonStyle) *Button {
	b.Style = style

	return b
}

func (b *Button) SetLabel(label string) *Button {
	b.Label = label

	return b
}

func (b *Button) SetCustomID(customID string) *Button {
	b.CustomID = customID

	return b
}

func (b *Button) SetURL(url string) *Button {
	b.URL = url

	return b
}

func (b *Button) SetEmoji(emoji *discord.PartialEmoji) *Button {
	b.Emoji = emoji

	return b
}

func (b *Button) SetSKUID(skuID discord.SKUID) *Button {
	b.SKUID = &skuID

	return b
}

func (b *Button) SetDisabled(disabled bool) *Button {
	b.Disabled = disabled

	return b
}

func (b *Button) SetID(id int32) *Button {
	b.ID = &id

	return b
}

func (b *Button) MarshalJSON() ([]byte, error) {
	return sandwichjson.Marshal(buttonPayload{
		Emoji:    b.Emoji,
		ID:       b.ID,
		SKUID:    b.SKUID,
		Label:    b.Label,
		CustomID: b.CustomID,
		URL:      b.URL,
		Type:     discord.ComponentTypeButton,
		Style:    b.Style,
		Disabled: b.Disabled,
	})
}

func (b *Button) UnmarshalJSON(data []byte) error {
	var payload buttonPayload

	if err := sandwichjson.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal button: %w", err)
	}

	b.Emoji = payload.Emoji
	b.ID = payload.ID
	b.SKUID = payload.SKUID
	b.Label = payload.Label
	b.CustomID = payload.CustomID
	b.URL = payload.URL
	b.Style = payload.Style
	b.Disabled = payload.Disabled

	return nil
}
