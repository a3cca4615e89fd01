package auth

import (
	"net/http"

	"github.com/Abraxas-365/pathway/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeMissingToken          = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthorization, http.StatusUnauthorized, "No token provided, authorization denied")
	CodeInvalidToken          = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid token")
	CodeTokenExpired          = ErrRegistry.Register("TOKEN_EXPIRED", errx.TypeAuthorization, http.StatusUnauthorized, "Token expired")
	CodeUserNotFound          = ErrRegistry.Register("USER_NOT_FOUND", errx.TypeAuthorization, http.StatusUnauthorized, "User not found")
	CodeUserInactive          = ErrRegistry.Register("USER_INACTIVE", errx.TypeAuthorization, http.StatusUnauthorized, "User account is inactive")
	CodeTokenGenerationFailed = ErrRegistry.Register("TOKEN_GENERATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate token")
	CodeUserLookupFailed      = ErrRegistry.Register("USER_LOOKUP_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Server error")
)

func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrTokenExpired() *errx.Error {
	return ErrRegistry.New(CodeTokenExpired)
}

func ErrUserNotFound() *errx.Error {
	return ErrRegistry.New(CodeUserNotFound)
}

func ErrUserInactive() *errx.Error {
	return ErrRegistry.New(CodeUserInactive)
}

func ErrUserLookupFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeUserLookupFailed, cause)
}
