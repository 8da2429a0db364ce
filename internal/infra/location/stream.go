// Package location provides position sources for the agents.
package location

import (
	"context"
	"sync"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/errors"
)

// ErrAlreadyWatching is returned by Start when the source is already streaming.
var ErrAlreadyWatching = errors.New("location source already started")

// stream owns the producer goroutine of a watch. The output channel is
// unbuffered so a sample counts as delivered only once it was received,
// and stop waits for the producer to exit.
type stream struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// produce is run by the stream goroutine. It returns when ctx is cancelled or
// after emitting a terminal sample.
type produce func(ctx context.Context, emit func(entity.PositionSample) bool)

func (s *stream) start(ctx context.Context, fn produce) (<-chan entity.PositionSample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return nil, ErrAlreadyWatching
	}

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan entity.PositionSample)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go func() {
		defer close(done)
		defer close(out)

		fn(ctx, func(sample entity.PositionSample) bool {
			select {
			case out <- sample:
				return true
			case <-ctx.Done():
				return false
			}
		})
	}()

	return out, nil
}

func (s *stream) stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

func timeoutError(err error) error {
	return domainerrors.NewLocationError(domainerrors.LocationTimeout, err)
}

func deniedError() error {
	return domainerrors.NewLocationError(domainerrors.LocationPermissionDenied, nil)
}

func unavailableError(err error) error {
	return domainerrors.NewLocationError(domainerrors.LocationUnavailable, err)
}
