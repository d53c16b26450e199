package anticlust

import (
	"errors"
	"fmt"

	"github.com/statunizaga/anticlust/engine"
)

// ErrOutOfMemory is returned when an allocation made during a call fails.
// The caller's clusters slice is left unmodified.
//
// The returned error wraps both ErrOutOfMemory and engine.ErrOutOfMemory;
// test for either with errors.Is (errors.Unwrap returns nil for it).
var ErrOutOfMemory = errors.New("anticlust: out of memory")

// ErrInvalidInput indicates one of the cheap precondition checks the
// top-level entry points perform failed (slice lengths, frequency sums).
// Deeper preconditions -- cluster id range, per-cluster counts matching
// frequencies -- are the caller's responsibility and are not validated
// here.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidInput struct {
	cause error
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("anticlust: invalid input: %v", e.cause)
}

func (e *ErrInvalidInput) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, engine.ErrOutOfMemory) {
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	var bad *engine.ErrBadShape
	if errors.As(err, &bad) {
		return &ErrInvalidInput{cause: err}
	}

	return err
}
