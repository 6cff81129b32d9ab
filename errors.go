package sandwich

import "errors"

var (
	ErrNoDispatchHandler = errors.New("no dispatch handler found")

	// Configuration errors raised while composing structures.
	ErrUnknownStructure = errors.New("unknown structure")
	ErrInvalidExtension = errors.New("invalid structure extension")
	ErrStructuresBuilt  = errors.New("structures have already been built")

	ErrUnknownInteraction = errors.New("unknown interaction type")
	ErrMissingConsumer    = errors.New("configuration missing consumer type")
	ErrEventPanic         = errors.New("recovered panic while handling event")
)
