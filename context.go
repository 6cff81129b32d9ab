package sandwich

import (
	"context"
)

type contextKey string

var metadataKey contextKey = "metadata"

// WithMetadata adds the metadata of a produced payload to the context
func WithMetadata(ctx context.Context, metadata ProducedMetadata) context.Context {
	return context.WithValue(ctx, metadataKey, metadata)
}

// MetadataFromContext retrieves the metadata of the produced payload being handled
func MetadataFromContext(ctx context.Context) (ProducedMetadata, bool) {
	metadata, ok := ctx.Value(metadataKey).(ProducedMetadata)

	return metadata, ok
}
