package timeline

import (
	"errors"
	"fmt"
)

// Errors returned by chart construction.
var (
	// ErrSurfaceUnavailable is returned when no drawing context can be
	// acquired from the container. Construction aborts; no chart is returned.
	ErrSurfaceUnavailable = errors.New("timeline: drawing surface unavailable")

	// ErrNilSeries is returned when the chart is constructed without a series.
	ErrNilSeries = errors.New("timeline: nil series")

	// ErrInvalidMaxPoints is returned when the window size is less than 1.
	ErrInvalidMaxPoints = errors.New("timeline: maxPoints must be at least 1")
)

// HookError reports a plugin callback that failed during dispatch.
// The remaining callbacks for that hook were not run.
type HookError struct {
	Hook   Hook
	Plugin string
	Err    error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("timeline: plugin %q failed in %s: %v", e.Plugin, e.Hook, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}
