package impl

import (
	"context"
	"log/slog"
	"sync"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"
	"nearby/internal/util"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

// ConsumerLocationServiceParams holds dependencies for the consumer location reporter, injected by Fx.
type ConsumerLocationServiceParams struct {
	fx.In

	Source  service.LocationSource
	Channel service.EventChannel
	Clock   clockwork.Clock
	Config  *config.Config
	Logger  *slog.Logger
}

type consumerLocationService struct {
	source  service.LocationSource
	channel service.EventChannel
	clock   clockwork.Clock
	opts    entity.LocationOptions
	logger  *slog.Logger

	mu       sync.Mutex
	running  bool
	last     *entity.Coordinates
	throttle emitThrottle
	done     chan struct{}
}

// NewConsumerLocationService creates a stopped reporter.
func NewConsumerLocationService(params ConsumerLocationServiceParams) usecase.ConsumerLocationUsecase {
	s := &consumerLocationService{
		source:  params.Source,
		channel: params.Channel,
		clock:   params.Clock,
		opts: entity.LocationOptions{
			Accuracy: entity.AccuracyBalanced,
			MaxAge:   params.Config.Presence.MaxAge,
			Timeout:  params.Config.Presence.AcquisitionTimeout,
		},
		logger: params.Logger.With(slog.String("component", "consumer-location")),
		throttle: emitThrottle{
			minMovement:  params.Config.Presence.MinMovementMeters,
			maxStaleness: params.Config.Presence.MaxStaleness,
		},
	}

	params.Channel.OnConnect(s.resend)

	return s
}

func (s *consumerLocationService) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()

		return nil
	}
	s.running = true
	s.mu.Unlock()

	samples, err := s.source.Start(context.WithoutCancel(ctx), s.opts)
	if err != nil {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()

		return err
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)

		for sample := range samples {
			if sample.Err != nil {
				s.logger.Warn("Location stream ended", slog.Any("error", sample.Err))

				return
			}
			s.report(sample.Position.Coordinates)
		}
	}()

	return nil
}

func (s *consumerLocationService) report(coords entity.Coordinates) {
	if !util.ValidCoordinate(coords.Latitude, coords.Longitude) {
		return
	}

	now := s.clock.Now()
	s.mu.Lock()
	s.last = &coords
	due := s.throttle.due(coords, now)
	s.mu.Unlock()

	if !due {
		return
	}
	if s.channel.Send(service.EventConsumerLocation, service.ConsumerLocationPayload{
		Longitude: coords.Longitude,
		Latitude:  coords.Latitude,
	}) {
		s.mu.Lock()
		s.throttle.mark(coords, now)
		s.mu.Unlock()
	}
}

// resend reports the latest known position after a reconnect.
func (s *consumerLocationService) resend() {
	s.mu.Lock()
	last := s.last
	s.throttle.reset()
	s.mu.Unlock()

	if last != nil {
		s.report(*last)
	}
}

func (s *consumerLocationService) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()

		return
	}
	s.running = false
	done := s.done
	s.done = nil
	s.mu.Unlock()

	s.source.Stop()
	if done != nil {
		<-done
	}
}
