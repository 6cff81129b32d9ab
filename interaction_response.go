package sandwich

import (
	"github.com/WelcomerTeam/Sandwich-Interactions/components"
	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
)

// MessageResponse describes a message sent in response to an interaction.
type MessageResponse struct {
	AllowedMentions *discord.MessageAllowedMentions
	Content         string
	Components      []*components.ActionRow
	Ephemeral       bool
	TTS             bool
}

func (m MessageResponse) callbackData() (*discord.InteractionCallbackData, error) {
	rows, err := components.SerializeAll(m.Components)
	if err != nil {
		return nil, err
	}

	data := &discord.InteractionCallbackData{
		Content:         m.Content,
		AllowedMentions: m.AllowedMentions,
		Components:      rows,
		TTS:             m.TTS,
	}

	if m.Ephemeral {
		data.Flags |= discord.MessageFlagEphemeral
	}

	return data, nil
}

// NewMessageResponse responds to an interaction with a new message.
func NewMessageResponse(message MessageResponse) (*discord.InteractionResponse, error) {
	data, err := message.callbackData()
	if err != nil {
		return nil, err
	}

	return &discord.InteractionResponse{
		Type: discord.InteractionCallbackTypeChannelMessageSource,
		Data: data,
	}, nil
}

// NewUpdateResponse edits the message the component was attached to.
func NewUpdateResponse(message MessageResponse) (*discord.InteractionResponse, error) {
	data, err := message.callbackData()
	if err != nil {
		return nil, err
	}

	return &discord.InteractionResponse{
		Type: discord.InteractionCallbackTypeUpdateMessage,
		Data: data,
	}, nil
}

// NewDeferredResponse acknowledges an interaction, showing a loading state.
func NewDeferredResponse(ephemeral bool) *discord.InteractionResponse {
	response := &discord.InteractionResponse{
		Type: discord.InteractionCallbackTypeDeferredChannelMessageSource,
	}

	if ephemeral {
		response.Data = &discord.InteractionCallbackData{Flags: discord.MessageFlagEphemeral}
	}

	return response
}

// NewDeferredUpdateResponse acknowledges a component interaction without a loading state.
func NewDeferredUpdateResponse() *discord.InteractionResponse {
	return &discord.InteractionResponse{
		Type: discord.InteractionCallbackTypeDeferredUpdateMessage,
	}
}

// NewModalResponse responds to an interaction with a popup modal.
func NewModalResponse(modal *components.Modal) (*discord.InteractionResponse, error) {
	rows, err := components.SerializeAll(modal.ActionRows())
	if err != nil {
		return nil, err
	}

	return &discord.InteractionResponse{
		Type: discord.InteractionCallbackTypeModal,
		Data: &discord.InteractionCallbackData{
			CustomID:   modal.CustomID,
			Title:      modal.Title,
			Components: rows,
		},
	}, nil
}

// NewAutocompleteResponse responds to an autocomplete interaction with choices.
func NewAutocompleteResponse(choices ...discord.ApplicationCommandOptionChoice) *discord.InteractionResponse {
	return &discord.InteractionResponse{
		Type: discord.InteractionCallbackTypeAutocompleteResult,
		Data: &discord.InteractionCallbackData{
			Choices: append(make([]discord.ApplicationCommandOptionChoice, 0, len(choices)), choices...),
		},
	}
}
