package components

import (
	"encoding/json"
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
)

// ActionRow is a non-interactive container holding an ordered list of components.
// Platform limits on the number of children are not enforced.
type ActionRow struct {
	ID *int32

	components []Component
}

type actionRowPayload struct {
	ID         *int32                `json:"id,omitempty"`
	Components []json.RawMessage     `json:"components"`
	Type       discord.ComponentType `json:"type"`
}

type actionRowOutput struct {
	ID         *int32                `json:"id,omitempty"`
	Components []Component           `json:"components"`
	Type       discord.ComponentType `json:"type"`
}

func NewActionRow(components ...Component) *ActionRow {
	return &ActionRow{
		components: append(make([]Component, 0, len(components)), components...),
	}
}

// ActionRowFromJSON constructs an action row from a wire payload. Every child
// is passed through Parse so the row never holds untyped JSON.
func ActionRowFromJSON(raw []byte) (*ActionRow, error) {
	row := NewActionRow()

	if err := row.UnmarshalJSON(raw); err != nil {
		return nil, err
	}

	return row, nil
}

func (ar *ActionRow) Type() discord.ComponentType {
	return discord.ComponentTypeActionRow
}

// Components returns a copy of the children in order.
func (ar *ActionRow) Components() []Component {
	return append(make([]Component, 0, len(ar.components)), ar.components...)
}

// Len returns the number of children.
func (ar *ActionRow) Len() int {
	return len(ar.components)
}

// AddComponents appends components to the end of the row.
func (ar *ActionRow) AddComponents(components ...Component) *ActionRow {
	ar.components = append(ar.components, components...)

	return ar
}

// SetComponents replaces every child of the row.
func (ar *ActionRow) SetComponents(components []Component) *ActionRow {
	ar.components = append(make([]Component, 0, len(components)), components...)

	return ar
}

func (ar *ActionRow) SetID(id int32) *ActionRow {
	ar.ID = &id

	return ar
}

func (ar *ActionRow) MarshalJSON() ([]byte, error) {
	return sandwichjson.Marshal(actionRowOutput{
		ID:         ar.ID,
		Components: append(make([]Component, 0, len(ar.components)), ar.components...),
		Type:       discord.ComponentTypeActionRow,
	})
}

func (ar *ActionRow) UnmarshalJSON(data []byte) error {
	var payload actionRowPayload

	if err := sandwichjson.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal action row: %w", err)
	}

	components, err := ParseAll(payload.Components)
	if err != nil {
		return err
	}

	ar.ID = payload.ID
	ar.components = components

	return nil
}
