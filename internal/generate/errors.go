package generate

import (
	"errors"
	"fmt"

	"prospekt/internal/brochure"
)

var (
	// ErrGenerationFailed means the upstream model call errored or returned
	// no usable output. The caller's document is untouched and the request
	// may be retried.
	ErrGenerationFailed = errors.New("model call failed or returned no output")

	// ErrSectionBusy means a generation request for the same section is
	// already in flight. Requests are rejected, not queued.
	ErrSectionBusy = errors.New("generation already in progress for this section")
)

// UnrecoverableError means the model output failed validation and the
// repair merge failed as well. It carries the field-level errors from the
// final validation attempt for diagnostic display.
type UnrecoverableError struct {
	Validation *brochure.ValidationError
}

func (e *UnrecoverableError) Error() string {
	return fmt.Sprintf("model output invalid and repair failed: %v", e.Validation)
}

func (e *UnrecoverableError) Unwrap() error {
	return e.Validation
}
