package errs

// Error categories shared by every use case. Specific errors are marked with
// one of these so callers can branch with errors.Is regardless of wrapping.
var (
	ErrValidation = New("validation error")
	ErrNotFound   = New("not found")
	ErrConflict   = New("conflict")
	ErrStore      = New("store failure")
)

// Validation marks a new error with ErrValidation.
func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}

func NotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

func Conflict(msg string) error {
	return Mark(New(msg), ErrConflict)
}

// Store wraps an underlying persistence failure.
func Store(err error, msg string) error {
	if err == nil {
		return nil
	}
	return Mark(Wrap(err, msg), ErrStore)
}

// Category returns the category sentinel err belongs to, or nil if none.
func Category(err error) error {
	switch {
	case err == nil:
		return nil
	case Is(err, ErrValidation):
		return ErrValidation
	case Is(err, ErrNotFound):
		return ErrNotFound
	case Is(err, ErrConflict):
		return ErrConflict
	case Is(err, ErrStore):
		return ErrStore
	default:
		return nil
	}
}
