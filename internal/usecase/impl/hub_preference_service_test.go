package impl

import (
	"context"
	"testing"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/errors"
	"nearby/internal/infra/validate"
	mockRepo "nearby/internal/mocks/repository"
	mockUsecase "nearby/internal/mocks/usecase"
	"nearby/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHubPreferenceService(t *testing.T) (usecase.HubPreferenceUsecase, *mockRepo.MockPreferenceRepository, *mockUsecase.MockMatchingUsecase) {
	repo := mockRepo.NewMockPreferenceRepository(t)
	matching := mockUsecase.NewMockMatchingUsecase(t)

	svc := NewHubPreferenceService(HubPreferenceServiceParams{
		PreferenceRepo: repo,
		Matching:       matching,
		Validator:      validate.New(),
		Logger:         testLogger(),
	})

	return svc, repo, matching
}

func TestHubPreferenceService_GetPreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("stored", func(t *testing.T) {
		svc, repo, _ := createTestHubPreferenceService(t)
		stored := entity.DefaultPreferences()
		stored.RadiusMeters = 2500
		repo.EXPECT().FindPreferences(ctx, "consumer-1").Return(&stored, nil).Once()

		prefs, err := svc.GetPreferences(ctx, "consumer-1")
		require.NoError(t, err)
		assert.Equal(t, &stored, prefs)
	})

	t.Run("defaults when none saved", func(t *testing.T) {
		svc, repo, _ := createTestHubPreferenceService(t)
		repo.EXPECT().FindPreferences(ctx, "consumer-1").Return(nil, repository.ErrPreferencesNotFound).Once()

		prefs, err := svc.GetPreferences(ctx, "consumer-1")
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultPreferences(), *prefs)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo, _ := createTestHubPreferenceService(t)
		repo.EXPECT().FindPreferences(ctx, "consumer-1").Return(nil, errors.New("db down")).Once()

		_, err := svc.GetPreferences(ctx, "consumer-1")
		assert.Error(t, err)
	})
}

func TestHubPreferenceService_UpdatePreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("saved then applied to the live consumer", func(t *testing.T) {
		svc, repo, matching := createTestHubPreferenceService(t)
		prefs := entity.DefaultPreferences()
		prefs.RadiusMeters = 3000

		saved := repo.EXPECT().SavePreferences(ctx, "consumer-1", &prefs).Return(nil).Once()
		matching.EXPECT().ApplyPreferences("consumer-1", prefs).Return().Once().NotBefore(saved)

		require.NoError(t, svc.UpdatePreferences(ctx, "consumer-1", &prefs))
	})

	t.Run("invalid radius is rejected before saving", func(t *testing.T) {
		svc, _, _ := createTestHubPreferenceService(t)
		prefs := entity.DefaultPreferences()
		prefs.RadiusMeters = 100

		err := svc.UpdatePreferences(ctx, "consumer-1", &prefs)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
	})

	t.Run("save failure does not touch live state", func(t *testing.T) {
		svc, repo, _ := createTestHubPreferenceService(t)
		prefs := entity.DefaultPreferences()
		repo.EXPECT().SavePreferences(ctx, "consumer-1", &prefs).Return(errors.New("db down")).Once()

		err := svc.UpdatePreferences(ctx, "consumer-1", &prefs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save preferences")
	})
}
