package services

import (
	"errors"
)

// ErrGeneration is returned when the content generation service fails or returns no content
var ErrGeneration = errors.New("generation service error")

// IsGenerationError checks if an error is a generation failure
func IsGenerationError(err error) bool {
	return errors.Is(err, ErrGeneration)
}
