package components

import (
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
)

// TextInput allows for users to freely input text in a modal.
type TextInput struct {
	ID          *int32
	MinLength   *int32
	MaxLength   *int32
	Required    *bool
	CustomID    string
	Label       string
	Value       string
	Placeholder string
	Style       discord.TextInputStyle
}

type textInputPayload struct {
	ID          *int32                 `json:"id,omitempty"`
	MinLength   *int32                 `json:"min_length,omitempty"`
	MaxLength   *int32                 `json:"max_length,omitempty"`
	Required    *bool                  `json:"required,omitempty"`
	CustomID    string                 `json:"custom_id"`
	Label       string                 `json:"label,omitempty"`
	Value       string                 `json:"value,omitempty"`
	Placeholder string                 `json:"placeholder,omitempty"`
	Type        discord.ComponentType  `json:"type"`
	Style       discord.TextInputStyle `json:"style,omitempty"`
}

func NewTextInput(customID string, style discord.TextInputStyle, label string) *TextInput {
	return &TextInput{
		CustomID: customID,
		Style:    style,
		Label:    label,
	}
}

func (ti *TextInput) Type() discord.ComponentType {
	return discord.ComponentTypeTextInput
}

func (ti *TextInput) SetCustomID(customID string) *TextInput {
	ti.CustomID = customID

	return ti
}

func (ti *TextInput) SetStyle(style discord.TextInputStyle) *TextInput {
	ti.Style = style

	return ti
}

func (ti *TextInput) SetLabel(label string) *TextInput {
	ti.Label = label

	return ti
}

func (ti *TextInput) SetValue(value string) *TextInput {
	ti.Value = value

	return ti
}

func (ti *TextInput) SetPlaceholder(placeholder string) *TextInput {
	ti.Placeholder = placeholder

	return ti
}

func (ti *TextInput) SetLength(minLength, maxLength *int32) *TextInput {
	ti.MinLength = minLength
	ti.MaxLength = maxLength

	return ti
}

func (ti *TextInput) SetRequired(required bool) *TextInput {
	ti.Required = &required

	return ti
}

func (ti *TextInput) SetID(id int32) *TextInput {
	ti.ID = &id

	return ti
}

func (ti *TextInput) MarshalJSON() ([]byte, error) {
	return sandwichjson.Marshal(textInputPayload{
		ID:          ti.ID,
		MinLength:   ti.MinLength,
		MaxLength:   ti.MaxLength,
		Required:    ti.Required,
		CustomID:    ti.CustomID,
		Label:       ti.Label,
		Value:       ti.Value,
		Placeholder: ti.Placeholder,
		Type:        discord.ComponentTypeTextInput,
		Style:       ti.Style,
	})
}

func (ti *TextInput) UnmarshalJSON(data []byte) error {
	var payload textInputPayload

	if err := sandwichjson.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal text input: %w", err)
	}

	ti.ID = payload.ID
	ti.MinLength = payload.MinLength
	ti.MaxLength = payload.MaxLength
	ti.Required = payload.Required
	ti.CustomID = payload.CustomID
	ti.Label = payload.Label
	ti.Value = payload.Value
	ti.Placeholder = payload.Placeholder
	ti.Style = payload.Style

	return nil
}
