// Package errs holds the error kinds shared by the services and the HTTP layer.
// Every error returned from a service wraps exactly one of the sentinels below,
// so callers branch with errors.Is instead of inspecting messages.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidToken         = errors.New("invalid token")
	ErrNotFound             = errors.New("not found")
	ErrUploadFailed         = errors.New("upload failed")
	ErrStore                = errors.New("store error")
)

// InvalidInput reports a malformed client request.
func InvalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

// Store wraps a database failure with the operation that hit it.
func Store(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}

// Upload wraps a failure returned by the asset uploader.
func Upload(err error) error {
	return fmt.Errorf("%w: %v", ErrUploadFailed, err)
}

func IsInvalidInput(err error) bool         { return errors.Is(err, ErrInvalidInput) }
func IsAuthenticationFailed(err error) bool { return errors.Is(err, ErrAuthenticationFailed) }
func IsInvalidToken(err error) bool         { return errors.Is(err, ErrInvalidToken) }
func IsNotFound(err error) bool             { return errors.Is(err, ErrNotFound) }
func IsUploadFailed(err error) bool         { return errors.Is(err, ErrUploadFailed) }
func IsStore(err error) bool                { return errors.Is(err, ErrStore) }

// Status maps an error kind to its HTTP status. Unknown errors are internal.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsInvalidInput(err):
		return http.StatusBadRequest
	case IsAuthenticationFailed(err), IsInvalidToken(err):
		return http.StatusUnauthorized
	case IsNotFound(err):
		return http.StatusNotFound
	case IsUploadFailed(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message is the client-safe text for an error. Internal details never leave
// the process: store failures and unknown errors collapse to a generic message.
func Message(err error) string {
	switch {
	case IsInvalidInput(err):
		return err.Error()
	case IsAuthenticationFailed(err):
		return "invalid credentials"
	case IsInvalidToken(err):
		return "invalid token"
	case IsNotFound(err):
		return "not found"
	case IsUploadFailed(err):
		return "image upload failed"
	default:
		return "internal server error"
	}
}
