package apperror

import (
	"context"
	"errors"
	"net/http"

	"go-guardconsole/internal/httpclient"
)

// FromUpstream translates errors of the backend clients into AppErrors.
// It returns nil for errors that did not come from a backend call.
func FromUpstream(err error) *AppError {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return Wrap(err, CodeServiceUnavailable, "The request was cancelled", http.StatusServiceUnavailable)
	}

	status, ok := httpclient.StatusCode(err)
	if !ok {
		if httpclient.IsNetworkError(err) || errors.Is(err, context.DeadlineExceeded) {
			return Wrap(err, CodeNetworkError, ErrNetwork.Message, ErrNetwork.HTTPStatus)
		}
		return nil
	}

	switch {
	case status == http.StatusUnauthorized:
		return Wrap(err, CodeUnauthorized, "Your session has expired, please sign in again", http.StatusUnauthorized)
	case status == http.StatusForbidden:
		return Wrap(err, CodeForbidden, ErrForbidden.Message, http.StatusForbidden)
	case status == http.StatusNotFound:
		return Wrap(err, CodeNotFound, ErrNotFound.Message, http.StatusNotFound)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return Wrap(err, CodeInvalidInput, ErrInvalidInput.Message, http.StatusBadRequest)
	case status == http.StatusTooManyRequests:
		return Wrap(err, CodeRateLimited, "Too many requests, please slow down", http.StatusTooManyRequests)
	default:
		return Wrap(err, CodeUpstreamError, ErrUpstreamServer.Message, ErrUpstreamServer.HTTPStatus)
	}
}
