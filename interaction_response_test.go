package sandwich_test

import (
	"testing"

	sandwich "github.com/WelcomerTeam/Sandwich-Interactions"
	"github.com/WelcomerTeam/Sandwich-Interactions/components"
	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageResponse(t *testing.T) {
	t.Parallel()

	response, err := sandwich.NewMessageResponse(sandwich.MessageResponse{
		Content: "Pick one",
		Components: []*components.ActionRow{
			components.NewActionRow(
				components.NewButton(discord.ButtonStylePrimary).SetCustomID("accept").SetLabel("Accept"),
			),
		},
		Ephemeral: true,
	})
	require.NoError(t, err)

	data, err := sandwichjson.Marshal(response)
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":4,"data":{"content":"Pick one","flags":64,"components":[`+
		`{"type":1,"components":[{"type":2,"style":1,"custom_id":"accept","label":"Accept"}]}]}}`, string(data))
}

func TestNewUpdateResponse(t *testing.T) {
	t.Parallel()

	response, err := sandwich.NewUpdateResponse(sandwich.MessageResponse{Content: "Done"})
	require.NoError(t, err)

	assert.Equal(t, discord.InteractionCallbackTypeUpdateMessage, response.Type)
	assert.Equal(t, "Done", response.Data.Content)
	assert.Zero(t, response.Data.Flags)
}

func TestNewDeferredResponses(t *testing.T) {
	t.Parallel()

	response := sandwich.NewDeferredResponse(false)
	assert.Equal(t, discord.InteractionCallbackTypeDeferredChannelMessageSource, response.Type)
	assert.Nil(t, response.Data)

	response = sandwich.NewDeferredResponse(true)
	require.NotNil(t, response.Data)
	assert.Equal(t, discord.MessageFlagEphemeral, response.Data.Flags)

	response = sandwich.NewDeferredUpdateResponse()
	assert.Equal(t, discord.InteractionCallbackTypeDeferredUpdateMessage, response.Type)
}

func TestNewModalResponse(t *testing.T) {
	t.Parallel()

	modal := components.NewModal("feedback", "Feedback").AddTextInputs(
		components.NewTextInput("body", discord.TextInputStyleParagraph, "Body"),
	)

	response, err := sandwich.NewModalResponse(modal)
	require.NoError(t, err)

	data, err := sandwichjson.Marshal(response)
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":9,"data":{"custom_id":"feedback","title":"Feedback","components":[`+
		`{"type":1,"components":[{"type":4,"custom_id":"body","style":2,"label":"Body"}]}]}}`, string(data))
}

func TestNewAutocompleteResponse(t *testing.T) {
	t.Parallel()

	response := sandwich.NewAutocompleteResponse(discord.ApplicationCommandOptionChoice{
		Name:  "Sandwich",
		Value: []byte(`"sandwich"`),
	})

	assert.Equal(t, discord.InteractionCallbackTypeAutocompleteResult, response.Type)
	require.Len(t, response.Data.Choices, 1)
	assert.Equal(t, "Sandwich", response.Data.Choices[0].Name)
}
