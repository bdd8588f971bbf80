package errors

import "github.com/pkg/errors"

var (
	// request envelope errors
	ErrMalformedRequest = errors.New("malformed multipart request")
	ErrPayloadTooLarge  = errors.New("attachment exceeds maximum allowed size")

	// ingestion errors
	ErrHeaderNotFound    = errors.New("Reply-To header not found")
	ErrUserNotFound      = errors.New("User not found")
	ErrUploadUnavailable = errors.New("Unable to upload file")
)

// MalformedRequest marks an envelope-level parse failure while keeping the parser's message.
func MalformedRequest(cause error) error {
	return &malformedRequestError{cause: cause}
}

type malformedRequestError struct {
	cause error
}

func (e *malformedRequestError) Error() string {
	if e.cause == nil {
		return ErrMalformedRequest.Error()
	}
	return e.cause.Error()
}

func (e *malformedRequestError) Is(target error) bool {
	return target == ErrMalformedRequest
}

func (e *malformedRequestError) Unwrap() error {
	return e.cause
}
