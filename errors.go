package arrayx

import (
	"errors"

	"github.com/hupe1980/arrayx/internal/conv"
)

var (
	// ErrInvalidWorkers is returned when a Finder is configured with fewer
	// than one worker.
	ErrInvalidWorkers = errors.New("workers must be positive")

	// ErrInvalidChunkSize is returned when a Finder is configured with a
	// chunk size below one.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrIndexOverflow is returned when an index cannot be represented in a
	// candidate bitmap.
	ErrIndexOverflow = conv.ErrIndexOverflow
)
