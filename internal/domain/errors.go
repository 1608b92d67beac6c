package domain

import "errors"

// Error kinds. Package level errors wrap one of them with %w,
// callers classify failures with errors.Is or KindOf.
var (
	// ErrSlotUnavailable the requested window overlaps a booking that holds the point
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrNotFound booking, point, station or log does not exist (or is not owned by the caller)
	ErrNotFound = errors.New("not found")

	// ErrInvalidState the entity is not in the status the operation requires
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidInput malformed or out of range arguments
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorageFailure transport error or timeout, retryable
	ErrStorageFailure = errors.New("storage failure")
)

// Kinds ordered by precedence for KindOf
var kinds = []error{
	ErrSlotUnavailable,
	ErrNotFound,
	ErrInvalidState,
	ErrInvalidInput,
	ErrStorageFailure,
}

// KindOf returns the error kind wrapped by err, or nil
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
