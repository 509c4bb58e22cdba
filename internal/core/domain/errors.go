package domain

import "fmt"

// ValidationError marks bad or missing caller input. Mapped to 400 at the
// REST boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %q: %s", e.Field, e.Reason)
}

// RetrievalError marks an upstream data-store or geocoding failure. The
// full detail is logged internally; callers only ever see a generic
// message. StatusCode is the upstream HTTP status when one exists.
type RetrievalError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RetrievalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("retrieval failed during %s (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("retrieval failed during %s (status %d)", e.Op, e.StatusCode)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// NotFoundError marks an unrecognized resource key, e.g. a department
// slug outside the fixed set. Mapped to 404.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
