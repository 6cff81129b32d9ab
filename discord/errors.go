package discord

import (
	"errors"
	"fmt"
)

var ErrMissingInteractionData = errors.New("interaction has no data")

// UnknownTypeError is returned when a discriminant has no known mapping.
type UnknownTypeError struct {
	Field string
	Value uint16
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown %s %d", e.Field, e.Value)
}
