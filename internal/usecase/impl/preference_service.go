package impl

import (
	"context"
	"log/slog"
	"sync"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// PreferenceServiceParams holds dependencies for the consumer preference store, injected by Fx.
type PreferenceServiceParams struct {
	fx.In

	Client    service.PreferenceClient
	Validator *validator.Validate
	Logger    *slog.Logger
}

type preferenceService struct {
	client    service.PreferenceClient
	validator *validator.Validate
	logger    *slog.Logger

	mu          sync.Mutex
	current     entity.NotificationPreferences
	subscribers []func(entity.NotificationPreferences)
}

// NewPreferenceService creates a store seeded with the default preferences.
func NewPreferenceService(params PreferenceServiceParams) usecase.PreferenceUsecase {
	return &preferenceService{
		client:    params.Client,
		validator: params.Validator,
		logger:    params.Logger.With(slog.String("component", "preferences")),
		current:   entity.DefaultPreferences(),
	}
}

func (s *preferenceService) Load(ctx context.Context) (entity.NotificationPreferences, error) {
	remote, err := s.client.Fetch(ctx)
	if err != nil {
		s.logger.Warn("Failed to load preferences, keeping last known", slog.Any("error", err))

		return s.Current(), &domainerrors.PreferenceSyncError{Op: "load", Err: err}
	}

	loaded := entity.DefaultPreferences()
	if remote != nil {
		loaded = remote.Clone()
	}
	if err := validatePreferences(s.validator, &loaded); err != nil {
		s.logger.Warn("Remote preferences are invalid, keeping last known", slog.Any("error", err))

		return s.Current(), &domainerrors.PreferenceSyncError{Op: "load", Err: err}
	}

	s.apply(loaded)

	return loaded.Clone(), nil
}

func (s *preferenceService) Save(ctx context.Context, prefs entity.NotificationPreferences) error {
	prefs = prefs.Clone()
	if err := validatePreferences(s.validator, &prefs); err != nil {
		return err
	}

	s.apply(prefs)

	if err := s.client.Put(ctx, prefs); err != nil {
		s.logger.Warn("Failed to persist preferences, local change kept", slog.Any("error", err))

		return &domainerrors.PreferenceSyncError{Op: "save", Err: err}
	}

	return nil
}

func (s *preferenceService) Current() entity.NotificationPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current.Clone()
}

func (s *preferenceService) Subscribe(fn func(entity.NotificationPreferences)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, fn)
}

func (s *preferenceService) apply(prefs entity.NotificationPreferences) {
	s.mu.Lock()
	s.current = prefs.Clone()
	subscribers := append([]func(entity.NotificationPreferences){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(prefs.Clone())
	}
}
