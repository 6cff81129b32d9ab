package components

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
	"github.com/WelcomerTeam/Sandwich-Interactions/sandwichjson"
)

// Data is either raw wire JSON or an already constructed component.
type Data struct {
	component Component
	raw       json.RawMessage
}

// FromJSON wraps a raw wire payload.
func FromJSON(raw []byte) Data {
	return Data{raw: raw}
}

// FromComponent wraps a constructed component. Create returns it as is.
func FromComponent(component Component) Data {
	return Data{component: component}
}

// IsComponent returns true when the data already holds a typed component.
// A nil pointer does not count.
func (d Data) IsComponent() bool {
	return d.component != nil && !isNilComponent(d.component)
}

func isNilComponent(component Component) bool {
	value := reflect.ValueOf(component)

	return value.Kind() == reflect.Ptr && value.IsNil()
}

// Used only for partial JSON parsing.
type typeExtractor struct {
	Type discord.ComponentType `json:"type"`
}

// Create returns the typed component for data. A constructed component is
// returned unchanged. Raw payloads are dispatched on their type field and
// fail with an *UnsupportedComponentTypeError for unknown types.
func Create(data Data) (Component, error) {
	if data.component != nil {
		if isNilComponent(data.component) {
			return nil, fmt.Errorf("%w: %T", ErrNilComponent, data.component)
		}

		return data.component, nil
	}

	return Parse(data.raw)
}

// Parse constructs the typed component for a raw wire payload.
func Parse(raw []byte) (Component, error) {
	var extractor typeExtractor

	if err := sandwichjson.Unmarshal(raw, &extractor); err != nil {
		return nil, fmt.Errorf("failed to unmarshal component type: %w", err)
	}

	component, err := New(extractor.Type)
	if err != nil {
		return nil, err
	}

	if err := sandwichjson.Unmarshal(raw, component); err != nil {
		return nil, fmt.Errorf("failed to unmarshal component %d: %w", extractor.Type, err)
	}

	return component, nil
}

// ParseAll parses every raw payload in order, stopping at the first error.
func ParseAll(raws []json.RawMessage) ([]Component, error) {
	components := make([]Component, 0, len(raws))

	for _, raw := range raws {
		component, err := Parse(raw)
		if err != nil {
			return nil, err
		}

		components = append(components, component)
	}

	return components, nil
}

// New returns an empty component of the given type.
func New(componentType discord.ComponentType) (Component, error) {
	switch componentType {
	case discord.ComponentTypeActionRow:
		return NewActionRow(), nil
	case discord.ComponentTypeButton:
		return &Button{}, nil
	case discord.ComponentTypeStringSelect,
		discord.ComponentTypeUserSelect,
		discord.ComponentTypeRoleSelect,
		discord.ComponentTypeMentionableSelect,
		discord.ComponentTypeChannelSelect:
		return newSelectMenu(componentType), nil
	case discord.ComponentTypeTextInput:
		return &TextInput{}, nil
	default:
		return nil, &UnsupportedComponentTypeError{Type: componentType}
	}
}
