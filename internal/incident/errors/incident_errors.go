package incidenterrors

import (
	"net/http"

	"go-guardconsole/internal/shared/apperror"
)

var (
	ErrInvalidIncidentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid incident ID",
		http.StatusBadRequest,
	)
	ErrEmptyAttachment = apperror.New(
		apperror.CodeInvalidInput,
		"Attachment file is required",
		http.StatusBadRequest,
	)
	ErrAttachmentTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Attachment exceeds the 10 MB limit",
		http.StatusRequestEntityTooLarge,
	)
)
