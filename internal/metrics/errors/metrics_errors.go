package metricserrors

import (
	"net/http"

	"go-guardconsole/internal/shared/apperror"
)

var (
	ErrInvalidSubject = apperror.New(
		apperror.CodeInvalidInput,
		"Metrics are available for clients and guards only",
		http.StatusBadRequest,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid client or guard ID",
		http.StatusBadRequest,
	)
)
