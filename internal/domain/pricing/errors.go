package pricing

import (
	"errors"
	"strings"
)

var (
	// ErrValidation matches any ValidationErrors value via errors.Is.
	ErrValidation = errors.New("invalid quote input")
	// ErrConfiguration matches any *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("pricing catalog misconfigured")
)

// FieldError describes one invalid caller input.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is every FieldError found in one input, in field order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Error())
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// ConfigurationError reports a malformed catalog, or a selection the catalog cannot resolve.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return ErrConfiguration.Error() + ": " + e.Field + ": " + e.Message
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
