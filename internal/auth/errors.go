package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

type Code string

const (
	CodeAuthHeaderMissing Code = "AUTH_HEADER_MISSING"
	CodeInvalidHeader     Code = "INVALID_HEADER"
	CodeTokenExpired      Code = "TOKEN_EXPIRED"
	CodeInvalidClaims     Code = "INVALID_CLAIMS"
	CodeUnauthorized      Code = "UNAUTHORIZED"
)

// AuthError is the single rejection produced for a credential that fails any
// stage of the pipeline. Status is always one of 400, 401 or 403.
type AuthError struct {
	Code        Code
	Description string
	Status      int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func newAuthError(code Code, status int, description string) *AuthError {
	return &AuthError{Code: code, Description: description, Status: status}
}

var (
	// ErrKeyNotFound means the current key set has no key with the requested kid.
	ErrKeyNotFound = errors.New("signing key not found")
	// ErrKeySetUnavailable means the key set could not be fetched. It is an
	// infrastructure failure and says nothing about the credential.
	ErrKeySetUnavailable = errors.New("key set unavailable")
)

// AsAuthError reports whether err carries an *AuthError.
func AsAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}

// IsTimeout reports whether err was caused by a key set fetch running out of time.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func errHeaderMissing() *AuthError {
	return newAuthError(CodeAuthHeaderMissing, http.StatusUnauthorized, "Authorization header is expected.")
}

func errMalformedHeader(description string) *AuthError {
	return newAuthError(CodeInvalidHeader, http.StatusUnauthorized, description)
}

func errUnverifiable(description string) *AuthError {
	return newAuthError(CodeInvalidHeader, http.StatusBadRequest, description)
}
