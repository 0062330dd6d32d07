package services

import apperrors "github.com/jeemhub/fawazv7/common/errors"

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// FromAppError adapts a shared application error into a ServiceError.
func FromAppError(err *apperrors.Error) *ServiceError {
	return &ServiceError{StatusCode: err.Code, Message: err.Message}
}
