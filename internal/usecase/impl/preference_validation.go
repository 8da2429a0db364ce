package impl

import (
	"strings"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validatePreferences checks prefs and maps failures onto domain errors.
func validatePreferences(v *validator.Validate, prefs *entity.NotificationPreferences) error {
	if prefs.QuietHours.Enabled && (prefs.QuietHours.Start == "" || prefs.QuietHours.End == "") {
		return domainerrors.ErrInvalidQuietHours.WithDetails("start and end are required when enabled")
	}

	err := v.Struct(prefs)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate preferences")
	}

	for _, fe := range fieldErrs {
		switch {
		case fe.StructField() == "RadiusMeters":
			return domainerrors.ErrInvalidRadius.WithDetails(fe.Error())
		case strings.Contains(fe.StructNamespace(), "QuietHours"):
			return domainerrors.ErrInvalidQuietHours.WithDetails(fe.Error())
		}
	}

	return domainerrors.ErrValidationFailed.WithDetails(fieldErrs.Error())
}
