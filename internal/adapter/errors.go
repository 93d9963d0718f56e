package adapter

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrFileMissing          = errors.New("file does not exist")
	ErrIsDirectory          = errors.New("path is a directory")
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrNotText              = errors.New("file is not valid UTF-8 text and its type cannot be uploaded")
	ErrInvalidURL           = errors.New("url must be an absolute http or https URL")
	ErrInlineFileID         = errors.New("inlined files have no reusable file id; call upload_file again with a query instead")
)

// InputError is a failure caused by the caller's arguments rather than the
// provider. It never reaches the error classifier.
type InputError struct {
	Path  string
	Cause error
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Cause)
}

func (e *InputError) Unwrap() error { return e.Cause }

// InvalidInput marks the error as a local validation failure.
func (e *InputError) InvalidInput() bool { return true }

// IsInvalidInput reports whether err is a local validation failure.
func IsInvalidInput(err error) bool {
	var v interface{ InvalidInput() bool }
	return errors.As(err, &v) && v.InvalidInput()
}
