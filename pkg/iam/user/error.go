package user

import (
	"net/http"

	"github.com/Abraxas-365/pathway/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("USER")

var (
	CodeUserNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeEmailAlreadyExists  = ErrRegistry.Register("EMAIL_ALREADY_EXISTS", errx.TypeConflict, http.StatusBadRequest, "User with this email already exists")
	CodeInvalidCredentials  = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid email or password")
	CodeUserInactive        = ErrRegistry.Register("INACTIVE", errx.TypeAuthorization, http.StatusUnauthorized, "User account is inactive")
	CodeSignupFieldsMissing = ErrRegistry.Register("SIGNUP_FIELDS_MISSING", errx.TypeValidation, http.StatusBadRequest, "Please provide name, email, and password")
	CodeLoginFieldsMissing  = ErrRegistry.Register("LOGIN_FIELDS_MISSING", errx.TypeValidation, http.StatusBadRequest, "Please provide email and password")
	CodeDatabaseUnavailable = ErrRegistry.Register("DATABASE_UNAVAILABLE", errx.TypeUnavailable, http.StatusServiceUnavailable, "Database is not available. Please try again later.")
	CodeSignupFailed        = ErrRegistry.Register("SIGNUP_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Error registering user")
	CodeLoginFailed         = ErrRegistry.Register("LOGIN_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Error during login")
)

func ErrUserNotFound() *errx.Error {
	return ErrRegistry.New(CodeUserNotFound)
}

func ErrEmailAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeEmailAlreadyExists)
}

func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrUserInactive() *errx.Error {
	return ErrRegistry.New(CodeUserInactive)
}

func ErrSignupFieldsMissing() *errx.Error {
	return ErrRegistry.New(CodeSignupFieldsMissing)
}

func ErrLoginFieldsMissing() *errx.Error {
	return ErrRegistry.New(CodeLoginFieldsMissing)
}

func ErrDatabaseUnavailable() *errx.Error {
	return ErrRegistry.New(CodeDatabaseUnavailable)
}

func ErrSignupFailed() *errx.Error {
	return ErrRegistry.New(CodeSignupFailed)
}

func ErrLoginFailed() *errx.Error {
	return ErrRegistry.New(CodeLoginFailed)
}
