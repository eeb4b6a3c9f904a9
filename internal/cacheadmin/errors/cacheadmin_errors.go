package cacheadminerrors

import (
	"net/http"

	"go-guardconsole/internal/shared/apperror"
)

const (
	CodeInvalidPrefix = "INVALID_CACHE_PREFIX"
)

var (
	ErrInvalidPrefix = apperror.New(
		CodeInvalidPrefix,
		"Cache prefix must start with defaults:, metrics:, tasks: or incidents:",
		http.StatusBadRequest,
	)
)
