// Package apperr defines the error kinds shared across the interview
// service. Boundary handlers map these to HTTP statuses; everything
// below the boundary only wraps and rethrows them.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound is returned when a session id is unknown,
	// including the expected case of a session already evicted by
	// termination.
	ErrSessionNotFound = errors.New("interview session not found")

	// ErrQuestionNotFound is returned when a question id does not match
	// any entry of the session's question log.
	ErrQuestionNotFound = errors.New("question not found in session history")

	// ErrUnsupportedFormat is returned for resume files whose extension
	// is not a recognized document type.
	ErrUnsupportedFormat = errors.New("unsupported resume file format, upload a PDF, DOCX or TXT file")

	// ErrEmptyDocument is returned when no readable text could be
	// extracted from the uploaded resume.
	ErrEmptyDocument = errors.New("no readable text found in the resume file")
)

// ExternalServiceError is the single unified kind for failures of the
// language, speech and document collaborators. The core never branches
// on transport specifics; it checks for this kind only.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s service failure: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// External wraps err as an ExternalServiceError attributed to the named
// collaborator. A nil err returns nil.
func External(service string, err error) error {
	if err == nil {
		return nil
	}
	return &ExternalServiceError{Service: service, Err: err}
}

// IsExternal reports whether any error in err's chain is an
// ExternalServiceError.
func IsExternal(err error) bool {
	var e *ExternalServiceError
	return errors.As(err, &e)
}
