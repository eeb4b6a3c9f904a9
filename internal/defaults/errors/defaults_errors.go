package defaultserrors

import (
	"go-guardconsole/internal/shared/apperror"
	"net/http"
)

var (
	ErrNoDefaultsForDay = apperror.New(
		apperror.CodeNotFound,
		"No defaults recorded for this day",
		http.StatusNotFound,
	)
	ErrMalformedDefaults = apperror.New(
		apperror.CodeUpstreamError,
		"Guard defaults could not be read",
		http.StatusBadGateway,
	)
	ErrInvalidGuardID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid guard ID",
		http.StatusBadRequest,
	)
)
