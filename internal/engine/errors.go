package engine

import "fmt"

// ConfigError represents an invalid engine configuration.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "invalid engine config: " + e.Message
}

// RetrievalError represents a catalog provider failure. It is fatal for the
// recommendation path; no partial results are returned.
type RetrievalError struct {
	Cause error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("catalog retrieval failed: %v", e.Cause)
}

func (e *RetrievalError) Unwrap() error {
	return e.Cause
}
