package catalog

import "fmt"

// NotFoundError indicates a career ID absent from the catalog.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("career %s not found", e.ID)
}

// LoadError represents a failure to bulk-load the catalog.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load catalog %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load catalog %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// RecordError indicates a career record violating a catalog invariant.
type RecordError struct {
	ID      string
	Message string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("invalid career record %s: %s", e.ID, e.Message)
}
