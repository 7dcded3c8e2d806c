package cardkit

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel for construction-time validation failures.
// A scene description that trips validation must never silently produce a
// wrong card, so these errors are returned before any drawing happens.
var ErrValidation = errors.New("cardkit: invalid scene description")

// ErrRender is the sentinel for recoverable render-time failures. The panel
// draw loop logs these, degrades or skips the offending element, and keeps
// rendering the rest of the card.
var ErrRender = errors.New("cardkit: render failure")

// ValidationError reports a field that failed construction-time validation.
type ValidationError struct {
	Field  string // dotted path to the offending field, e.g. "star.inner_radius"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cardkit: invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrValidation, so callers can use
// errors.Is(err, cardkit.ErrValidation) without knowing the concrete type.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// validationf builds a *ValidationError with a formatted reason.
func validationf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// RenderError reports a recoverable failure while drawing one element.
// Element identifies the shape/text/image; Cause is the underlying error.
type RenderError struct {
	Element string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("cardkit: render of %s failed", e.Element)
	}
	return fmt.Sprintf("cardkit: render of %s failed: %v", e.Element, e.Cause)
}

func (e *RenderError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrRender.
func (e *RenderError) Is(target error) bool { return target == ErrRender }
