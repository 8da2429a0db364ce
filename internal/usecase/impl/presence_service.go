package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
	"nearby/internal/usecase"
	"nearby/internal/util"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

// ErrGoOnlineCancelled is returned when GoOffline runs while GoOnline is still acquiring a fix.
var ErrGoOnlineCancelled = errors.New("go online cancelled by go offline")

// PresenceServiceParams holds dependencies for the presence publisher, injected by Fx.
type PresenceServiceParams struct {
	fx.In

	Identity entity.Identity
	Source   service.LocationSource
	Channel  service.EventChannel
	Profile  service.VendorProfileClient
	Clock    clockwork.Clock
	Config   *config.Config
	Logger   *slog.Logger
}

type presenceService struct {
	source  service.LocationSource
	channel service.EventChannel
	profile service.VendorProfileClient
	clock   clockwork.Clock
	cfg     *config.PresenceConfig
	logger  *slog.Logger

	mu         sync.Mutex
	presence   entity.VendorPresence
	wantOrders bool   // accepting-orders choice, restored when going online
	generation uint64 // bumped by GoOffline to cancel an in-flight GoOnline
	throttle   emitThrottle
	watchDone  chan struct{}
	streamErr  error
}

// NewPresenceService creates an offline vendor presence publisher.
func NewPresenceService(params PresenceServiceParams) usecase.PresenceUsecase {
	s := &presenceService{
		source:  params.Source,
		channel: params.Channel,
		profile: params.Profile,
		clock:   params.Clock,
		cfg:     params.Config.Presence,
		logger:  params.Logger.With(slog.String("component", "presence")),
		presence: entity.VendorPresence{
			VendorID:             params.Identity.UserID,
			DeliveryRadiusMeters: params.Config.Presence.DefaultRadius,
		},
		wantOrders: true,
		throttle: emitThrottle{
			minMovement:  params.Config.Presence.MinMovementMeters,
			maxStaleness: params.Config.Presence.MaxStaleness,
		},
	}

	params.Channel.OnConnect(s.announce)

	return s
}

func (s *presenceService) GoOnline(ctx context.Context, seed *entity.Coordinates) error {
	s.mu.Lock()
	if s.presence.IsOnline {
		s.mu.Unlock()

		return nil
	}
	generation := s.generation
	s.mu.Unlock()

	coords, err := s.initialFix(ctx, seed)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.generation != generation {
		s.mu.Unlock()

		return ErrGoOnlineCancelled
	}
	if s.presence.IsOnline {
		s.mu.Unlock()

		return nil
	}
	now := s.clock.Now()
	s.presence.IsOnline = true
	s.presence.AcceptingOrders = s.wantOrders
	s.presence.OnlineSince = &now
	s.presence.Coordinates = coords
	s.presence.LastLocationUpdate = now
	s.throttle.mark(coords, now)
	s.streamErr = nil
	s.mu.Unlock()

	s.logger.Info("Vendor online",
		slog.Float64("latitude", coords.Latitude),
		slog.Float64("longitude", coords.Longitude))
	s.announce()

	samples, err := s.source.Start(context.WithoutCancel(ctx), s.locationOptions())
	if err != nil {
		// Presence stays online at the seed position; it just will not move.
		s.logger.Warn("Failed to start location stream", slog.Any("error", err))
		s.mu.Lock()
		s.streamErr = err
		s.mu.Unlock()

		return nil
	}

	done := make(chan struct{})
	s.mu.Lock()
	if s.generation != generation {
		s.mu.Unlock()
		s.source.Stop()

		return nil
	}
	s.watchDone = done
	s.mu.Unlock()

	go s.watch(samples, done)

	return nil
}

func (s *presenceService) initialFix(ctx context.Context, seed *entity.Coordinates) (entity.Coordinates, error) {
	if seed != nil {
		if !util.ValidCoordinate(seed.Latitude, seed.Longitude) {
			return entity.Coordinates{}, domainerrors.ErrInvalidCoordinates
		}

		return *seed, nil
	}

	opts := s.locationOptions()
	opts.Accuracy = entity.AccuracyHigh
	pos, err := s.source.CurrentPosition(ctx, opts)
	if err != nil {
		return entity.Coordinates{}, err
	}
	if !util.ValidCoordinate(pos.Latitude, pos.Longitude) {
		return entity.Coordinates{}, domainerrors.NewLocationError(domainerrors.LocationUnavailable,
			fmt.Errorf("invalid fix %f,%f", pos.Latitude, pos.Longitude))
	}

	return pos.Coordinates, nil
}

func (s *presenceService) locationOptions() entity.LocationOptions {
	return entity.LocationOptions{
		Accuracy: entity.AccuracyHigh,
		MaxAge:   s.cfg.MaxAge,
		Timeout:  s.cfg.AcquisitionTimeout,
	}
}

func (s *presenceService) watch(samples <-chan entity.PositionSample, done chan struct{}) {
	defer close(done)

	for sample := range samples {
		if sample.Err != nil {
			s.logger.Warn("Location stream ended", slog.Any("error", sample.Err))
			s.mu.Lock()
			s.streamErr = sample.Err
			s.mu.Unlock()

			return
		}
		if !util.ValidCoordinate(sample.Position.Latitude, sample.Position.Longitude) {
			s.logger.Warn("Ignoring invalid fix",
				slog.Float64("latitude", sample.Position.Latitude),
				slog.Float64("longitude", sample.Position.Longitude))

			continue
		}
		s.onSample(sample.Position)
	}
}

// onSample updates the local position and emits it when the vendor moved
// far enough or the last emission went stale.
func (s *presenceService) onSample(pos entity.Position) {
	s.mu.Lock()
	if !s.presence.IsOnline {
		s.mu.Unlock()

		return
	}
	s.presence.Coordinates = pos.Coordinates
	now := s.clock.Now()
	if !s.throttle.due(pos.Coordinates, now) {
		s.mu.Unlock()

		return
	}
	payload := service.VendorLocationPayload{
		Longitude: pos.Longitude,
		Latitude:  pos.Latitude,
		IsActive:  s.presence.AcceptingOrders,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	s.mu.Unlock()

	if !s.channel.Send(service.EventVendorLocationUpdate, payload) {
		return
	}

	s.mu.Lock()
	if s.presence.IsOnline {
		s.throttle.mark(pos.Coordinates, now)
		s.presence.LastLocationUpdate = now
	}
	s.mu.Unlock()
}

func (s *presenceService) GoOffline(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	if !s.presence.IsOnline {
		s.mu.Unlock()

		return nil
	}
	s.presence.IsOnline = false
	s.presence.AcceptingOrders = false
	s.presence.OnlineSince = nil
	s.throttle.reset()
	done := s.watchDone
	s.watchDone = nil
	s.mu.Unlock()

	s.source.Stop()
	if done != nil {
		<-done
	}

	s.channel.Send(service.EventVendorOffline, struct{}{})
	s.logger.Info("Vendor offline")

	return nil
}

func (s *presenceService) UpdateDeliverySettings(ctx context.Context, settings entity.DeliverySettings) error {
	if settings.DeliveryRadius != nil {
		radius := *settings.DeliveryRadius
		if radius < s.cfg.MinRadius || radius > s.cfg.MaxRadius {
			return domainerrors.ErrInvalidRadius.WithDetails(fmt.Sprintf("got %.0f", radius))
		}
	}

	s.mu.Lock()
	if settings.AcceptingOrders != nil && *settings.AcceptingOrders && !s.presence.IsOnline {
		s.mu.Unlock()

		return domainerrors.ErrVendorOffline
	}
	if settings.DeliveryRadius != nil {
		s.presence.DeliveryRadiusMeters = *settings.DeliveryRadius
	}
	if settings.AcceptingOrders != nil {
		s.wantOrders = *settings.AcceptingOrders
		s.presence.AcceptingOrders = *settings.AcceptingOrders
	}
	accepting := s.presence.AcceptingOrders
	radius := s.presence.DeliveryRadiusMeters
	s.mu.Unlock()

	s.channel.Send(service.EventVendorStatusUpdate, service.VendorStatusPayload{
		AcceptingOrders: accepting,
		DeliveryRadius:  radius,
	})

	full := entity.DeliverySettings{DeliveryRadius: &radius, AcceptingOrders: &accepting}
	if err := s.profile.SaveDeliverySettings(ctx, full); err != nil {
		return errors.Wrap(err, "persist delivery settings")
	}

	return nil
}

// announce sends the vendor's full state. It runs on go-online and after
// every reconnect.
func (s *presenceService) announce() {
	s.mu.Lock()
	if !s.presence.IsOnline {
		s.mu.Unlock()

		return
	}
	coords := s.presence.Coordinates
	s.throttle.mark(coords, s.clock.Now())
	status := service.VendorStatusPayload{
		AcceptingOrders: s.presence.AcceptingOrders,
		DeliveryRadius:  s.presence.DeliveryRadiusMeters,
	}
	s.mu.Unlock()

	online := service.VendorOnlinePayload{Longitude: coords.Longitude, Latitude: coords.Latitude}
	if !s.channel.Send(service.EventVendorOnline, online) {
		return
	}
	s.channel.Send(service.EventVendorStatusUpdate, status)
}

func (s *presenceService) Presence() entity.VendorPresence {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.presence
	if s.presence.OnlineSince != nil {
		since := *s.presence.OnlineSince
		snapshot.OnlineSince = &since
	}

	return snapshot
}

func (s *presenceService) LastLocationError() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.streamErr
}
