package location

import (
	"context"
	"sync"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"

	"github.com/jonboulle/clockwork"
)

// ManualSource is fed positions by its owner, e.g. an operator typing
// coordinates into the agent console or a test.
type ManualSource struct {
	clock clockwork.Clock

	mu      sync.Mutex
	denied  bool
	last    *entity.Position
	waiters []chan entity.Position
	updates chan entity.PositionSample

	stream stream
}

var _ service.LocationSource = (*ManualSource)(nil)

// NewManualSource creates a source with no fix yet.
func NewManualSource(clock clockwork.Clock) *ManualSource {
	return &ManualSource{
		clock:   clock,
		updates: make(chan entity.PositionSample, 16),
	}
}

// SetDenied simulates the host revoking location permission.
func (s *ManualSource) SetDenied(denied bool) {
	s.mu.Lock()
	s.denied = denied
	s.mu.Unlock()

	if denied {
		s.push(entity.PositionSample{Err: deniedError()})
	}
}

// Push records a new fix and forwards it to the active watch, if any.
func (s *ManualSource) Push(coords entity.Coordinates, accuracy float64) {
	pos := entity.Position{
		Coordinates: coords,
		Accuracy:    accuracy,
		Timestamp:   s.clock.Now(),
	}

	s.mu.Lock()
	s.last = &pos
	waiters := s.waiters
	s.waiters = nil
	s.mu.Unlock()

	for _, w := range waiters {
		w <- pos
	}

	s.push(entity.PositionSample{Position: pos})
}

// Fail delivers a terminal error to the active watch.
func (s *ManualSource) Fail(err error) {
	s.push(entity.PositionSample{Err: unavailableError(err)})
}

func (s *ManualSource) push(sample entity.PositionSample) {
	select {
	case s.updates <- sample:
	default:
		// Watch is slow or absent; drop the oldest pending sample.
		select {
		case <-s.updates:
		default:
		}
		select {
		case s.updates <- sample:
		default:
		}
	}
}

func (s *ManualSource) CurrentPosition(ctx context.Context, opts entity.LocationOptions) (entity.Position, error) {
	s.mu.Lock()
	if s.denied {
		s.mu.Unlock()

		return entity.Position{}, deniedError()
	}
	if s.last != nil && (opts.MaxAge <= 0 || s.clock.Since(s.last.Timestamp) <= opts.MaxAge) {
		pos := *s.last
		s.mu.Unlock()

		return pos, nil
	}
	waiter := make(chan entity.Position, 1)
	s.waiters = append(s.waiters, waiter)
	s.mu.Unlock()

	var timeout <-chan time.Time
	if opts.Timeout > 0 {
		timer := s.clock.NewTimer(opts.Timeout)
		defer timer.Stop()
		timeout = timer.Chan()
	}

	select {
	case pos := <-waiter:
		return pos, nil
	case <-timeout:
		return entity.Position{}, timeoutError(nil)
	case <-ctx.Done():
		return entity.Position{}, timeoutError(ctx.Err())
	}
}

func (s *ManualSource) Start(ctx context.Context, opts entity.LocationOptions) (<-chan entity.PositionSample, error) {
	s.mu.Lock()
	denied := s.denied
	s.mu.Unlock()
	if denied {
		return nil, deniedError()
	}

	// Discard samples queued while nobody was watching.
	for drained := false; !drained; {
		select {
		case <-s.updates:
		default:
			drained = true
		}
	}

	return s.stream.start(ctx, func(ctx context.Context, emit func(entity.PositionSample) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case sample := <-s.updates:
				if !emit(sample) || sample.Err != nil {
					return
				}
			}
		}
	})
}

func (s *ManualSource) Stop() {
	s.stream.stop()
}
