package sandwich_test

import (
	"bytes"
	"context"
	"testing"

	sandwich "github.com/WelcomerTeam/Sandwich-Interactions"
	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionStructureName(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		payload  []byte
		expected sandwich.StructureName
	}{
		"chat input":     {interactionJSON(2, `{"id":"1","name":"ping","type":1}`), sandwich.StructureChatInputCommandInteraction},
		"user command":   {interactionJSON(2, `{"id":"1","name":"info","type":2,"target_id":"500"}`), sandwich.StructureUserContextMenuCommandInteraction},
		"message":        {interactionJSON(2, `{"id":"1","name":"quote","type":3,"target_id":"600"}`), sandwich.StructureMessageContextMenuCommandInteraction},
		"entry point":    {interactionJSON(2, `{"id":"1","name":"launch","type":4}`), sandwich.StructurePrimaryEntryPointCommandInteraction},
		"button":         {buttonJSON(), sandwich.StructureButtonInteraction},
		"string select":  {interactionJSON(3, `{"custom_id":"s","component_type":3,"values":["a"]}`), sandwich.StructureStringSelectMenuInteraction},
		"user select":    {interactionJSON(3, `{"custom_id":"s","component_type":5,"values":["500"]}`), sandwich.StructureUserSelectMenuInteraction},
		"role select":    {interactionJSON(3, `{"custom_id":"s","component_type":6,"values":["700"]}`), sandwich.StructureRoleSelectMenuInteraction},
		"mentionable":    {interactionJSON(3, `{"custom_id":"s","component_type":7,"values":["700"]}`), sandwich.StructureMentionableSelectMenuInteraction},
		"channel select": {interactionJSON(3, `{"custom_id":"s","component_type":8,"values":["400"]}`), sandwich.StructureChannelSelectMenuInteraction},
		"autocomplete":   {interactionJSON(4, `{"id":"1","name":"search","type":1}`), sandwich.StructureAutocompleteInteraction},
		"modal submit":   {interactionJSON(5, `{"custom_id":"form","components":[]}`), sandwich.StructureModalSubmitInteraction},
	}

	for name, test := range tests {
		actual, err := sandwich.InteractionStructureName(test.payload)
		require.NoError(t, err, name)
		assert.Equal(t, test.expected, actual, name)
	}
}

func TestInteractionStructureNameUnknown(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		payload []byte
		field   string
		value   uint16
	}{
		"ping":              {interactionJSON(1, ""), "type", 1},
		"unknown type":      {interactionJSON(9999, ""), "type", 9999},
		"unknown command":   {interactionJSON(2, `{"id":"1","name":"x","type":42}`), "data.type", 42},
		"text input":        {interactionJSON(3, `{"custom_id":"x","component_type":4}`), "data.component_type", 4},
		"action row":        {interactionJSON(3, `{"custom_id":"x","component_type":1}`), "data.component_type", 1},
		"component no data": {interactionJSON(3, ""), "data.component_type", 0},
	}

	for name, test := range tests {
		_, err := sandwich.InteractionStructureName(test.payload)
		assert.ErrorIs(t, err, sandwich.ErrUnknownInteraction, name)

		var unknownTypeError *discord.UnknownTypeError

		require.ErrorAs(t, err, &unknownTypeError, name)
		assert.Equal(t, test.field, unknownTypeError.Field, name)
		assert.Equal(t, test.value, unknownTypeError.Value, name)
	}
}

func TestDispatchButtonInteraction(t *testing.T) {
	t.Parallel()

	client, r := newRecordedClient(t, nil)

	client.DispatchInteraction(context.Background(), buttonJSON())

	require.Len(t, r.interactions, 1)
	assert.Empty(t, r.debug)

	button, ok := r.interactions[0].(*sandwich.ButtonInteraction)
	require.True(t, ok, "expected *ButtonInteraction, got %T", r.interactions[0])

	assert.Equal(t, "accept", button.CustomID())
	assert.Equal(t, discord.ComponentTypeButton, button.ComponentType())
	assert.True(t, button.IsMessageComponent())
	assert.Same(t, client, button.Client())
}

func TestDispatchButtonWithUnsupportedMessageComponents(t *testing.T) {
	t.Parallel()

	newerMessage := `{"id":"600","channel_id":"400","content":"pick one","author":{"id":"800","username":"bot"},` +
		`"components":[{"type":10,"content":"Choose wisely"},` +
		`{"type":1,"components":[{"type":2,"style":1,"custom_id":"accept","label":"Accept"}]}]}`

	payload := bytes.Replace(buttonJSON(), []byte(messageJSON), []byte(newerMessage), 1)

	client, r := newRecordedClient(t, nil)

	client.DispatchInteraction(context.Background(), payload)

	require.Len(t, r.interactions, 1)
	assert.Empty(t, r.debug)

	button, ok := r.interactions[0].(*sandwich.ButtonInteraction)
	require.True(t, ok, "expected *ButtonInteraction, got %T", r.interactions[0])

	require.NotNil(t, button.Message)
	assert.Len(t, button.Message.AsMessage().Components(), 1)

	component, found := button.Component()
	require.True(t, found)
	assert.Equal(t, discord.ComponentTypeButton, component.Type())
}

func TestDispatchEveryInteraction(t *testing.T) {
	t.Parallel()

	payloads := [][]byte{
		interactionJSON(2, `{"id":"1","name":"ping","type":1}`),
		interactionJSON(2, `{"id":"1","name":"info","type":2,"target_id":"500"}`),
		interactionJSON(2, `{"id":"1","name":"quote","type":3,"target_id":"600"}`),
		interactionJSON(2, `{"id":"1","name":"launch","type":4}`),
		buttonJSON(),
		interactionJSON(3, `{"custom_id":"s","component_type":3,"values":["a"]}`),
		interactionJSON(3, `{"custom_id":"s","component_type":5,"values":["500"]}`),
		interactionJSON(3, `{"custom_id":"s","component_type":6,"values":["700"]}`),
		interactionJSON(3, `{"custom_id":"s","component_type":7,"values":["700"]}`),
		interactionJSON(3, `{"custom_id":"s","component_type":8,"values":["400"]}`),
		interactionJSON(4, `{"id":"1","name":"search","type":1}`),
		interactionJSON(5, `{"custom_id":"form","components":[]}`),
	}

	client, r := newRecordedClient(t, nil)

	for _, payload := range payloads {
		client.DispatchInteraction(context.Background(), payload)
	}

	assert.Empty(t, r.debug)
	require.Len(t, r.interactions, len(payloads))

	assert.IsType(t, &sandwich.ChatInputCommandInteraction{}, r.interactions[0])
	assert.IsType(t, &sandwich.UserContextMenuCommandInteraction{}, r.interactions[1])
	assert.IsType(t, &sandwich.MessageContextMenuCommandInteraction{}, r.interactions[2])
	assert.IsType(t, &sandwich.PrimaryEntryPointCommandInteraction{}, r.interactions[3])
	assert.IsType(t, &sandwich.ButtonInteraction{}, r.interactions[4])
	assert.IsType(t, &sandwich.StringSelectMenuInteraction{}, r.interactions[5])
	assert.IsType(t, &sandwich.UserSelectMenuInteraction{}, r.interactions[6])
	assert.IsType(t, &sandwich.RoleSelectMenuInteraction{}, r.interactions[7])
	assert.IsType(t, &sandwich.MentionableSelectMenuInteraction{}, r.interactions[8])
	assert.IsType(t, &sandwich.ChannelSelectMenuInteraction{}, r.interactions[9])
	assert.IsType(t, &sandwich.AutocompleteInteraction{}, r.interactions[10])
	assert.IsType(t, &sandwich.ModalSubmitInteraction{}, r.interactions[11])
}

func TestDispatchUnknownInteractionIsDropped(t *testing.T) {
	t.Parallel()

	client, r := newRecordedClient(t, nil)

	assert.NotPanics(t, func() {
		client.DispatchInteraction(context.Background(), interactionJSON(9999, ""))
	})

	assert.Empty(t, r.interactions)
	require.Len(t, r.debug, 1)
	assert.ErrorIs(t, r.debug[0].Err, sandwich.ErrUnknownInteraction)
	assert.Equal(t, discord.DiscordEventInteractionCreate, r.debug[0].EventType)

	var unknownTypeError *discord.UnknownTypeError

	require.ErrorAs(t, r.debug[0].Err, &unknownTypeError)
	assert.Equal(t, uint16(9999), unknownTypeError.Value)
}

func TestDispatchMalformedInteractionIsDropped(t *testing.T) {
	t.Parallel()

	client, r := newRecordedClient(t, nil)

	assert.NotPanics(t, func() {
		client.DispatchInteraction(context.Background(), []byte(`{"type":`))
		client.DispatchInteraction(context.Background(), interactionJSON(3, "null"))
	})

	assert.Empty(t, r.interactions)
	assert.Len(t, r.debug, 2)
}

func TestDispatchUsesOverriddenStructures(t *testing.T) {
	t.Parallel()

	builder := sandwich.NewStructuresBuilder()

	require.NoError(t, builder.Extend(sandwich.StructureButtonInteraction, func(base sandwich.Class) sandwich.Class {
		return sandwich.Derive(base, func(button *sandwich.ButtonInteraction) *MyButton {
			return &MyButton{ButtonInteraction: button}
		})
	}))

	require.NoError(t, builder.Extend(sandwich.StructureGuild, func(base sandwich.Class) sandwich.Class {
		return sandwich.Derive(base, func(guild *sandwich.Guild) *MyGuild {
			return &MyGuild{Guild: guild}
		})
	}))

	client, r := newRecordedClient(t, builder.Build())

	client.DispatchInteraction(context.Background(), buttonJSON())

	require.Len(t, r.interactions, 1)

	button, ok := r.interactions[0].(*MyButton)
	require.True(t, ok, "expected *MyButton, got %T", r.interactions[0])
	assert.Equal(t, "accept", button.CustomID())

	require.NoError(t, client.HandlePayload(context.Background(), producedJSON(discord.DiscordEventGuildCreate, []byte(guildJSON))))

	require.Len(t, r.guilds, 1)
	assert.IsType(t, &MyGuild{}, r.guilds[0])
}

func TestDispatchPublishesInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	client := sandwich.NewClient(sandwich.ClientOptions{})

	var order []int

	for i := 0; i < 3; i++ {
		i := i

		client.InteractionCreate.Subscribe(func(_ context.Context, _ sandwich.Interaction) {
			order = append(order, i)
		})
	}

	client.DispatchInteraction(context.Background(), buttonJSON())

	assert.Equal(t, []int{0, 1, 2}, order)
}
