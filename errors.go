package topogo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/topogo/diagram"
)

var (
	// ErrInvalidConfiguration is returned by Build for any malformed
	// pipeline configuration (empty dimension set, coeff < 2, zero
	// landmarks, conflicting metric options). It is never raised
	// after parallel work has started.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ShapeMismatchError reports a sample whose shape is incompatible
// with the configured pipeline. Detected before dispatch.
type ShapeMismatchError struct {
	Sample int
	Rows   int
	Cols   int
	Reason string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("sample %d: shape (%d, %d): %s", e.Sample, e.Rows, e.Cols, e.Reason)
}

// BackendError reports a filtration-engine failure for one sample.
// The whole batch aborts; no partial output is returned.
//
// The engine's error is accessible via errors.Unwrap.
type BackendError struct {
	Sample int
	cause  error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("sample %d: backend failure: %v", e.Sample, e.cause)
}

func (e *BackendError) Unwrap() error { return e.cause }

// translateError maps subpackage errors onto the root taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, diagram.ErrNoDimensions) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return err
}
