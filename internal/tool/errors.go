package tool

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError lists every way a request's arguments violate the tool schema.
type ValidationError struct {
	Tool     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q:\n- %s", e.Tool, strings.Join(e.Problems, "\n- "))
}

// InvalidInput marks the error as a local validation failure.
func (e *ValidationError) InvalidInput() bool { return true }

// SaveError is returned when a generated media file cannot be written.
type SaveError struct {
	Path  string
	Cause error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Path, e.Cause)
}

func (e *SaveError) Unwrap() error { return e.Cause }

// IOError marks the error as a local filesystem failure.
func (e *SaveError) IOError() bool { return true }

// isLocal reports whether err originated locally and should be shown as-is
// rather than classified as an upstream failure.
func isLocal(err error) bool {
	var invalid interface{ InvalidInput() bool }
	if errors.As(err, &invalid) && invalid.InvalidInput() {
		return true
	}
	var io interface{ IOError() bool }
	return errors.As(err, &io) && io.IOError()
}
