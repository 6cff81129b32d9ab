package components_test

import (
	"encoding/json"
	"testing"

	"github.com/WelcomerTeam/Sandwich-Interactions/components"
	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var componentPayloads = map[discord.ComponentType]string{
	discord.ComponentTypeActionRow:         `{"type":1,"components":[{"type":2,"style":1,"label":"Accept","custom_id":"accept"}]}`,
	discord.ComponentTypeButton:            `{"type":2,"style":5,"label":"Docs","url":"https://discord.com","emoji":{"name":"📖"},"disabled":true}`,
	discord.ComponentTypeStringSelect:      `{"type":3,"custom_id":"colour","placeholder":"Pick","min_values":1,"max_values":2,"options":[{"label":"Red","value":"red","default":true}]}`,
	discord.ComponentTypeTextInput:         `{"type":4,"custom_id":"reason","style":2,"label":"Reason","min_length":10,"max_length":400,"required":true,"placeholder":"Why?"}`,
	discord.ComponentTypeUserSelect:        `{"type":5,"custom_id":"users","default_values":[{"id":"80351110224678912","type":"user"}]}`,
	discord.ComponentTypeRoleSelect:        `{"type":6,"custom_id":"roles","disabled":true}`,
	discord.ComponentTypeMentionableSelect: `{"type":7,"custom_id":"mentionables","max_values":25}`,
	discord.ComponentTypeChannelSelect:     `{"type":8,"custom_id":"channels","channel_types":[0,5]}`,
}

func TestCreateKnownTypes(t *testing.T) {
	t.Parallel()

	for componentType, payload := range componentPayloads {
		component, err := components.Create(components.FromJSON([]byte(payload)))
		require.NoError(t, err, "type %d", componentType)

		assert.Equal(t, componentType, component.Type())

		serialized, err := components.Serialize(component)
		require.NoError(t, err)

		assert.JSONEq(t, payload, string(serialized), "type %d", componentType)
	}
}

func TestCreateIsIdempotent(t *testing.T) {
	t.Parallel()

	for componentType, payload := range componentPayloads {
		first, err := components.Parse([]byte(payload))
		require.NoError(t, err)

		firstJSON, err := components.Serialize(first)
		require.NoError(t, err)

		second, err := components.Parse(firstJSON)
		require.NoError(t, err)

		secondJSON, err := components.Serialize(second)
		require.NoError(t, err)

		assert.Equal(t, string(firstJSON), string(secondJSON), "type %d", componentType)
	}
}

func TestCreateReturnsConstructedComponent(t *testing.T) {
	t.Parallel()

	button := components.NewButton(discord.ButtonStylePrimary).SetCustomID("accept")

	data := components.FromComponent(button)
	assert.True(t, data.IsComponent())

	component, err := components.Create(data)
	require.NoError(t, err)

	assert.Same(t, button, component)
}

func TestCreateRejectsNilComponent(t *testing.T) {
	t.Parallel()

	data := components.FromComponent((*components.Button)(nil))
	assert.False(t, data.IsComponent())

	component, err := components.Create(data)
	assert.Nil(t, component)
	assert.ErrorIs(t, err, components.ErrNilComponent)
}

func TestCreateUnsupportedType(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{`{"type":9}`, `{"type":0}`, `{"custom_id":"no-type"}`, `{"type":42,"label":"x"}`} {
		component, err := components.Parse([]byte(payload))
		assert.Nil(t, component)
		assert.ErrorIs(t, err, components.ErrUnsupportedComponentType)

		var unsupported *components.UnsupportedComponentTypeError
		require.ErrorAs(t, err, &unsupported)
	}

	_, err := components.Parse([]byte(`{"type":1234}`))

	var unsupported *components.UnsupportedComponentTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, discord.ComponentType(1234), unsupported.Type)
}

func TestCreateInvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := components.Parse([]byte(`{"type":`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, components.ErrUnsupportedComponentType)
}

func TestCreateIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	component, err := components.Parse([]byte(`{"type":2,"style":1,"custom_id":"a","options":[{"label":"x","value":"y"}],"unknown":true}`))
	require.NoError(t, err)

	serialized, err := components.Serialize(component)
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":2,"style":1,"custom_id":"a"}`, string(serialized))
}

func TestSelectMenuOnlySerializesRelevantFields(t *testing.T) {
	t.Parallel()

	component, err := components.Parse([]byte(`{"type":5,"custom_id":"u","options":[{"label":"x","value":"y"}],"channel_types":[0]}`))
	require.NoError(t, err)

	serialized, err := components.Serialize(component)
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":5,"custom_id":"u"}`, string(serialized))
}

func TestBuilderWireNames(t *testing.T) {
	t.Parallel()

	menu := components.NewStringSelectMenu("colour").
		SetPlaceholder("Pick a colour").
		SetMinMaxValues(components.Int32(1), components.Int32(3)).
		AddOptions(discord.SelectOption{Label: "Red", Value: "red"})

	serialized, err := components.Serialize(menu)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(serialized, &fields))

	for _, key := range []string{"type", "custom_id", "placeholder", "min_values", "max_values", "options"} {
		assert.Contains(t, fields, key)
	}

	input := components.NewTextInput("reason", discord.TextInputStyleShort, "Reason").
		SetLength(components.Int32(1), components.Int32(10)).
		SetRequired(false)

	serialized, err = components.Serialize(input)
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":4,"custom_id":"reason","style":1,"label":"Reason","min_length":1,"max_length":10,"required":false}`, string(serialized))
}

func TestPremiumButton(t *testing.T) {
	t.Parallel()

	button := components.NewButton(discord.ButtonStylePremium).SetSKUID(1088510058284990888)

	serialized, err := components.Serialize(button)
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":2,"style":6,"sku_id":"1088510058284990888"}`, string(serialized))
}
