package refsel

import (
	"errors"
	"fmt"
)

// ErrMalformedReference is the sentinel matched by errors.Is for every
// parse failure produced by this package.
var ErrMalformedReference = errors.New("malformed image reference")

// MalformedReferenceError reports a reference string that matches neither
// the long nor the short grammar. It carries the offending input so callers
// can surface it in diagnostics.
type MalformedReferenceError struct {
	Reference string
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed image reference %q", e.Reference)
}

// Is reports whether target is ErrMalformedReference, wiring the typed
// error into errors.Is.
func (e *MalformedReferenceError) Is(target error) bool {
	return target == ErrMalformedReference
}
