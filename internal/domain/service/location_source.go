// Package service defines interfaces for the collaborators the domain depends on.
// Implementations live under internal/infra.
package service

import (
	"context"

	"nearby/internal/domain/entity"
)

// LocationSource wraps a device's continuous position stream.
type LocationSource interface {
	// CurrentPosition acquires a single fix, failing with a LocationError
	// once opts.Timeout elapses.
	CurrentPosition(ctx context.Context, opts entity.LocationOptions) (entity.Position, error)

	// Start begins watching and returns the sample stream. A sample carrying
	// an error is terminal and the channel is closed after it.
	Start(ctx context.Context, opts entity.LocationOptions) (<-chan entity.PositionSample, error)

	// Stop ends watching. No sample is delivered after Stop returns.
	Stop()
}
