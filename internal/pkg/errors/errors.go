package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation         Kind = "ValidationError"
	KindDomainValidation   Kind = "DomainValidationError"
	KindPersistence        Kind = "PersistenceError"
	KindEventPublish       Kind = "EventPublishError"
	KindInvariantViolation Kind = "InvariantViolation"
	KindInternal           Kind = "InternalServerError"
)

// CustomError carries the HTTP status the boundary should answer with and,
// for collaborator failures, the original error.
type CustomError struct {
	Code    int
	Kind    Kind
	Message string
	Details interface{}
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BadRequest is a ValidationError for a missing or unreadable body.
func BadRequest(msg string) error {
	return &CustomError{Code: http.StatusBadRequest, Kind: KindValidation, Message: msg}
}

// UnprocessableEntity is a ValidationError for a body that breaks the request schema.
func UnprocessableEntity(msg string, details interface{}) error {
	return &CustomError{Code: http.StatusUnprocessableEntity, Kind: KindValidation, Message: msg, Details: details}
}

func DomainValidation(msg string) error {
	return &CustomError{Code: http.StatusBadRequest, Kind: KindDomainValidation, Message: msg}
}

func Persistence(msg string, err error) error {
	return &CustomError{Code: http.StatusInternalServerError, Kind: KindPersistence, Message: msg, Err: err}
}

func EventPublish(msg string, err error) error {
	return &CustomError{Code: http.StatusInternalServerError, Kind: KindEventPublish, Message: msg, Err: err}
}

func InvariantViolation(msg string) error {
	return &CustomError{Code: http.StatusInternalServerError, Kind: KindInvariantViolation, Message: msg}
}

func InternalServerError(msg string) error {
	return &CustomError{Code: http.StatusInternalServerError, Kind: KindInternal, Message: msg}
}

// KindOf reports the kind of the first CustomError in err's chain,
// KindInternal for anything else.
func KindOf(err error) Kind {
	var ce *CustomError
	if stderrors.As(err, &ce) {
		return ce.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	var ce *CustomError
	return stderrors.As(err, &ce) && ce.Kind == kind
}

func CodeOf(err error) int {
	var ce *CustomError
	if stderrors.As(err, &ce) && ce.Code != 0 {
		return ce.Code
	}
	return http.StatusInternalServerError
}
