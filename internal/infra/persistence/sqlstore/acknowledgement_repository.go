package sqlstore

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// acknowledgementRepository implements repository.AcknowledgementRepository using GORM.
type acknowledgementRepository struct {
	db *gorm.DB
}

// NewAcknowledgementRepository creates an acknowledgement repository.
func NewAcknowledgementRepository(db *gorm.DB) repository.AcknowledgementRepository {
	return &acknowledgementRepository{db: db}
}

func (repo *acknowledgementRepository) RecordAcknowledgement(ctx context.Context, ack *entity.Acknowledgement) error {
	at := ack.AcknowledgedAt
	if at.IsZero() {
		at = time.Now()
	}

	ackM := &model.AcknowledgementModel{
		NotificationID: ack.NotificationID,
		ConsumerID:     ack.ConsumerID,
		AcknowledgedAt: at,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "notification_id"}, {Name: "consumer_id"}},
			DoNothing: true,
		}).
		Create(ackM).Error
	if err != nil {
		return errors.Wrap(err, "failed to record acknowledgement")
	}

	return nil
}

func (repo *acknowledgementRepository) CountByConsumer(ctx context.Context, consumerID string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AcknowledgementModel{}).
		Where("consumer_id = ?", consumerID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count acknowledgements")
	}

	return count, nil
}
