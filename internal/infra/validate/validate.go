// Package validate builds the struct validator shared by the hub API and the agents.
package validate

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// New returns a validator with the project's custom tags registered:
//
//	clock    24h "HH:MM"
//	latitude/longitude are provided by the library
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return IsClock(fl.Field().String())
	})

	return v
}

// IsClock reports whether s is a 24h "HH:MM" clock time.
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}
