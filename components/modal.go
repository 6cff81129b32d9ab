package components

import (
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
)

// Modal is a popup form shown in response to an interaction.
type Modal struct {
	CustomID string
	Title    string

	rows []*ActionRow
}

type modalPayload struct {
	CustomID   string       `json:"custom_id"`
	Title      string       `json:"title"`
	Components []*ActionRow `json:"components"`
}

func NewModal(customID, title string) *Modal {
	return &Modal{
		CustomID: customID,
		Title:    title,
	}
}

func (m *Modal) SetCustomID(customID string) *Modal {
	m.CustomID = customID

	return m
}

func (m *Modal) SetTitle(title string) *Modal {
	m.Title = title

	return m
}

// AddActionRows appends rows to the modal.
func (m *Modal) AddActionRows(rows ...*ActionRow) *Modal {
	m.rows = append(m.rows, rows...)

	return m
}

// AddTextInputs places each text input in its own action row.
func (m *Modal) AddTextInputs(inputs ...*TextInput) *Modal {
	for _, input := range inputs {
		m.rows = append(m.rows, NewActionRow(input))
	}

	return m
}

// ActionRows returns a copy of the rows of the modal.
func (m *Modal) ActionRows() []*ActionRow {
	return append(make([]*ActionRow, 0, len(m.rows)), m.rows...)
}

func (m *Modal) MarshalJSON() ([]byte, error) {
	return sandwichjson.Marshal(modalPayload{
		CustomID:   m.CustomID,
		Title:      m.Title,
		Components: append(make([]*ActionRow, 0, len(m.rows)), m.rows...),
	})
}

func (m *Modal) UnmarshalJSON(data []byte) error {
	var payload modalPayload

	if err := sandwichjson.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal modal: %w", err)
	}

	m.CustomID = payload.CustomID
	m.Title = payload.Title
	m.rows = payload.Components

	return nil
}
