// Package components converts message component wire JSON into typed,
// mutable builders and back.
//
// Every component implements Component. Raw payloads are turned into
// components by Create or Parse, which dispatch on the "type" field:
//
//	row, err := components.Parse(raw)
//
// Builders are configured with chained setters and serialized with
// Serialize or any json encoder:
//
//	row := components.NewActionRow(
//		components.NewButton(discord.ButtonStylePrimary).SetCustomID("accept").SetLabel("Accept"),
//	)
package components

import (
	"encoding/json"
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
)

// Component represents any typed message component.
type Component interface {
	json.Marshaler

	// Type returns the discriminant of the component. It never changes
	// once the component has been constructed.
	Type() discord.ComponentType
}

// Serialize returns the wire format of a component.
func Serialize(component Component) (json.RawMessage, error) {
	data, err := sandwichjson.Marshal(component)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal component: %w", err)
	}

	return data, nil
}

// SerializeAll serializes components in order.
func SerializeAll[T Component](components []T) ([]json.RawMessage, error) {
	serialized := make([]json.RawMessage, 0, len(components))

	for _, component := range components {
		data, err := Serialize(component)
		if err != nil {
			return nil, err
		}

		serialized = append(serialized, data)
	}

	return serialized, nil
}

// Int32 returns a pointer to the value, for optional fields such as min and max values.
func Int32(v int32) *int32 {
	return &v
}

// Bool returns a pointer to the value.
func Bool(v bool) *bool {
	return &v
}
