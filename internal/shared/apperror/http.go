package apperror

import "net/http"

// HTTPError is the transport view of an error, ready for response.Error.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error to its HTTP representation. Errors that are not
// AppErrors (after upstream translation) become a generic 500.
func ToHTTP(err error) HTTPError {
	if err == nil {
		return HTTPError{Status: http.StatusOK}
	}

	appErr, ok := As(err)
	if !ok {
		appErr = FromUpstream(err)
	}
	if appErr == nil {
		appErr = ErrInternal
	}

	var details any
	if appErr.Err != nil && appErr.Code == CodeInvalidInput {
		details = appErr.Err.Error()
	}

	return HTTPError{
		Status:  appErr.HTTPStatus,
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: details,
	}
}
