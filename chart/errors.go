package chart

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("chart: configuration error")
	ErrInvalidKey    = errors.New("chart: invalid key")
	ErrInvalidValue  = errors.New("chart: invalid value")
	ErrMissingData   = errors.New("chart: no data provided")
)

// InvalidKeyError reports a key that is neither a number nor a date.
type InvalidKeyError struct {
	Raw any
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key: %q: must be a number or date", fmt.Sprint(e.Raw))
}

func (e *InvalidKeyError) Unwrap() error { return ErrInvalidKey }

// InvalidValueError reports a value that is not numeric.
type InvalidValueError struct {
	Key Key
	Raw any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for key %s: %v", e.Key, e.Raw)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
