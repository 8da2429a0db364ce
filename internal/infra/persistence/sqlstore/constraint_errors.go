package sqlstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Drivers without error translation.
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
