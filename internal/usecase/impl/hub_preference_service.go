package impl

import (
	"context"
	"log/slog"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// HubPreferenceServiceParams holds dependencies for the preferences API, injected by Fx.
type HubPreferenceServiceParams struct {
	fx.In

	PreferenceRepo repository.PreferenceRepository
	Matching       usecase.MatchingUsecase
	Validator      *validator.Validate
	Logger         *slog.Logger
}

type hubPreferenceService struct {
	preferenceRepo repository.PreferenceRepository
	matching       usecase.MatchingUsecase
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewHubPreferenceService creates the server side of the preferences API.
func NewHubPreferenceService(params HubPreferenceServiceParams) usecase.HubPreferenceUsecase {
	return &hubPreferenceService{
		preferenceRepo: params.PreferenceRepo,
		matching:       params.Matching,
		validator:      params.Validator,
		logger:         params.Logger.With(slog.String("component", "hub_preferences")),
	}
}

func (s *hubPreferenceService) GetPreferences(ctx context.Context, userID string) (*entity.NotificationPreferences, error) {
	prefs, err := s.preferenceRepo.FindPreferences(ctx, userID)
	if errors.Is(err, repository.ErrPreferencesNotFound) {
		defaults := entity.DefaultPreferences()

		return &defaults, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find preferences")
	}

	return prefs, nil
}

func (s *hubPreferenceService) UpdatePreferences(ctx context.Context, userID string, prefs *entity.NotificationPreferences) error {
	if err := validatePreferences(s.validator, prefs); err != nil {
		return err
	}

	if err := s.preferenceRepo.SavePreferences(ctx, userID, prefs); err != nil {
		return errors.Wrap(err, "save preferences")
	}

	// A connected consumer is re-matched right away.
	s.matching.ApplyPreferences(userID, *prefs)

	s.logger.Info("Preferences updated",
		slog.String("user_id", userID),
		slog.Bool("enabled", prefs.Enabled),
		slog.Float64("radius", prefs.RadiusMeters),
	)

	return nil
}
