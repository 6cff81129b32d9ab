package components

import (
	"errors"
	"fmt"

	"github.com/WelcomerTeam/Sandwich-Interactions/discord"
)

var (
	ErrUnsupportedComponentType = errors.New("unsupported component type")
	ErrNilComponent             = errors.New("component is nil")
)

// UnsupportedComponentTypeError is returned when a payload carries a type
// outside of the known component types.
type UnsupportedComponentTypeError struct {
	Type discord.ComponentType
}

func (e *UnsupportedComponentTypeError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnsupportedComponentType.Error(), e.Type)
}

func (e *UnsupportedComponentTypeError) Is(target error) bool {
	return target == ErrUnsupportedComponentType
}
