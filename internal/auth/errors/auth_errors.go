package autherrors

import (
	"net/http"

	"go-guardconsole/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)

	ErrNoSession = apperror.New(
		apperror.CodeUnauthorized,
		"Please sign in to continue",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid session token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Your session has expired, please sign in again",
		http.StatusUnauthorized,
	)

	ErrMissingToken = apperror.New(
		apperror.CodeUpstreamError,
		"Login succeeded but no token was returned",
		http.StatusBadGateway,
	)
)
