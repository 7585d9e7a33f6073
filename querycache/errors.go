package querycache

import (
	"errors"
	"fmt"
)

// ErrInvalidEntryType is returned by the typed GetOrFetch wrapper when the
// cached payload does not match the requested type. This indicates two
// callers registered the same key with different element types.
var ErrInvalidEntryType = errors.New("querycache: cached entry has unexpected type")

// TransportError wraps a failed remote fetch with the key it was issued for.
// Zero items is not an error; a TransportError means the call itself failed.
type TransportError struct {
	Entity string
	Page   int
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s page %d: %v", e.Entity, e.Page, e.Err)
}

// Unwrap exposes the underlying transport failure for errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.Err
}
