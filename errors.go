package header

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by indexed lookups and deletes on absent keys.
	ErrNotFound = errors.New("not found")

	// ErrMissingValue is returned by Set when a name is given without a value.
	ErrMissingValue = errors.New("value is required when name is provided")

	ErrUnknownDigestAlgorithm = errors.New("unknown digest algorithm")
)

// EncodingError reports raw input bytes that could not be decoded as text.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("failed to decode input: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }
