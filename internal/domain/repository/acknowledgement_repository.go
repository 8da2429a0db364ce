package repository

import (
	"context"

	"nearby/internal/domain/entity"
)

// AcknowledgementRepository is the append-only log of dismissed notifications.
type AcknowledgementRepository interface {
	// RecordAcknowledgement stores the acknowledgement. Recording the same
	// notification twice for a consumer is not an error.
	RecordAcknowledgement(ctx context.Context, ack *entity.Acknowledgement) error

	// CountByConsumer returns how many notifications the consumer acknowledged.
	CountByConsumer(ctx context.Context, consumerID string) (int64, error)
}
