package learning

import "fmt"

// UnknownItemError is returned when a use is recorded for a glyph that is
// not present in the catalog.
type UnknownItemError struct {
	ID string
}

// Error implements the error interface.
func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown item: %q is not in the catalog", e.ID)
}

// MalformedSnapshotError is returned when a usage snapshot blob fails to
// decode. The tracker recovers by starting from an empty usage map.
type MalformedSnapshotError struct {
	Err error
}

// Error implements the error interface.
func (e *MalformedSnapshotError) Error() string {
	return fmt.Sprintf("malformed usage snapshot: %v", e.Err)
}

// Unwrap exposes the underlying decode error.
func (e *MalformedSnapshotError) Unwrap() error {
	return e.Err
}
