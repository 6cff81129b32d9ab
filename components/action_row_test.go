package components_test

import (
	"encoding/json"
	"testing"

	"github.com/WelcomerTeam/Sandwich-Interactions/components"
	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serializedChildren(t *testing.T, row *components.ActionRow) []json.RawMessage {
	t.Helper()

	serialized, err := components.Serialize(row)
	require.NoError(t, err)

	var payload struct {
		Components []json.RawMessage `json:"components"`
		Type       int               `json:"type"`
	}

	require.NoError(t, json.Unmarshal(serialized, &payload))
	assert.Equal(t, int(discord.ComponentTypeActionRow), payload.Type)

	return payload.Components
}

func mustSerialize(t *testing.T, component components.Component) string {
	t.Helper()

	serialized, err := components.Serialize(component)
	require.NoError(t, err)

	return string(serialized)
}

func TestActionRowAddComponentsPreservesOrder(t *testing.T) {
	t.Parallel()

	a := components.NewButton(discord.ButtonStylePrimary).SetCustomID("a")
	b := components.NewButton(discord.ButtonStyleDanger).SetCustomID("b")

	row := components.NewActionRow()
	assert.Same(t, row, row.AddComponents(a, b))

	children := serializedChildren(t, row)
	require.Len(t, children, 2)

	assert.JSONEq(t, mustSerialize(t, a), string(children[0]))
	assert.JSONEq(t, mustSerialize(t, b), string(children[1]))
}

func TestActionRowSetComponentsDiscardsPrevious(t *testing.T) {
	t.Parallel()

	row, err := components.ActionRowFromJSON([]byte(`{"type":1,"components":[{"type":2,"style":1,"custom_id":"a"},{"type":2,"style":1,"custom_id":"b"}]}`))
	require.NoError(t, err)
	require.Equal(t, 2, row.Len())

	c := components.NewStringSelectMenu("c", discord.SelectOption{Label: "C", Value: "c"})

	assert.Same(t, row, row.SetComponents([]components.Component{c}))

	children := serializedChildren(t, row)
	require.Len(t, children, 1)
	assert.JSONEq(t, mustSerialize(t, c), string(children[0]))
}

func TestActionRowFromJSONTypesChildren(t *testing.T) {
	t.Parallel()

	row, err := components.ActionRowFromJSON([]byte(`{"type":1,"components":[{"type":2,"style":1,"custom_id":"a"},{"type":3,"custom_id":"b","options":[]}]}`))
	require.NoError(t, err)

	children := row.Components()
	require.Len(t, children, 2)

	assert.IsType(t, &components.Button{}, children[0])
	assert.IsType(t, &components.SelectMenu{}, children[1])
	assert.Equal(t, discord.ComponentTypeStringSelect, children[1].Type())
}

func TestActionRowFromJSONRejectsUnsupportedChild(t *testing.T) {
	t.Parallel()

	_, err := components.ActionRowFromJSON([]byte(`{"type":1,"components":[{"type":99}]}`))
	assert.ErrorIs(t, err, components.ErrUnsupportedComponentType)
}

func TestActionRowComponentsIsACopy(t *testing.T) {
	t.Parallel()

	row := components.NewActionRow(components.NewButton(discord.ButtonStylePrimary).SetCustomID("a"))

	children := row.Components()
	children[0] = nil

	assert.NotNil(t, row.Components()[0])
}

func TestEmptyActionRowSerializesEmptyList(t *testing.T) {
	t.Parallel()

	assert.JSONEq(t, `{"type":1,"components":[]}`, mustSerialize(t, components.NewActionRow()))
}

func TestModal(t *testing.T) {
	t.Parallel()

	modal := components.NewModal("feedback", "Feedback").
		AddTextInputs(
			components.NewTextInput("name", discord.TextInputStyleShort, "Name"),
			components.NewTextInput("body", discord.TextInputStyleParagraph, "Body"),
		)

	require.Len(t, modal.ActionRows(), 2)

	serialized, err := json.Marshal(modal)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"custom_id":"feedback",
		"title":"Feedback",
		"components":[
			{"type":1,"components":[{"type":4,"custom_id":"name","style":1,"label":"Name"}]},
			{"type":1,"components":[{"type":4,"custom_id":"body","style":2,"label":"Body"}]}
		]
	}`, string(serialized))

	var decoded components.Modal
	require.NoError(t, json.Unmarshal(serialized, &decoded))

	assert.Equal(t, "feedback", decoded.CustomID)
	require.Len(t, decoded.ActionRows(), 2)
	assert.IsType(t, &components.TextInput{}, decoded.ActionRows()[1].Components()[0])
}
