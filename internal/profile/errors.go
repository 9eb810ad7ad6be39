package profile

import "fmt"

// ValidationError represents a user profile that violates the input schema.
// The engine refuses to start work on an invalid profile.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid profile: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid profile: %s", e.Message)
}
