package impl

import (
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/util"
)

// emitThrottle decides whether a position is worth sending: either it moved
// at least minMovement meters from the last sent one, or maxStaleness passed
// since then. It is not safe for concurrent use.
type emitThrottle struct {
	minMovement  float64
	maxStaleness time.Duration

	last   *entity.Coordinates
	lastAt time.Time
}

func (t *emitThrottle) due(coords entity.Coordinates, now time.Time) bool {
	if t.last == nil {
		return true
	}
	if util.Distance(t.last.Latitude, t.last.Longitude, coords.Latitude, coords.Longitude) >= t.minMovement {
		return true
	}

	return now.Sub(t.lastAt) >= t.maxStaleness
}

func (t *emitThrottle) mark(coords entity.Coordinates, now time.Time) {
	t.last = &coords
	t.lastAt = now
}

func (t *emitThrottle) reset() {
	t.last = nil
	t.lastAt = time.Time{}
}
