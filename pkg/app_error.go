package pkg

import (
	"errors"
	"net/http"

	"contractor_pipeline/internal/domain/apperr"
)

// AppError is the error envelope handlers render.
type AppError struct {
	Code       string
	Message    string
	Details    map[string]string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body of an error response.
type HTTPError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError drops the wrapped cause; internal errors never reach clients.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}

// FromError renders apperr kinds as 400, 409 and 404. Anything else becomes
// a 500 carrying err as its cause.
func FromError(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}

	var de *apperr.Error
	if !errors.As(err, &de) {
		return NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}

	out := &AppError{Message: de.Error(), Err: err, Details: details(de)}
	switch de.Kind {
	case apperr.KindValidation:
		out.Code, out.HTTPStatus = "VALIDATION_FAILED", http.StatusBadRequest
	case apperr.KindConflict:
		out.Code, out.HTTPStatus = "CONFLICT", http.StatusConflict
		if de.From != "" || de.To != "" {
			out.Code = "INVALID_TRANSITION"
		}
	case apperr.KindNotFound:
		out.Code, out.HTTPStatus = "NOT_FOUND", http.StatusNotFound
	default:
		return NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	return out
}

func details(e *apperr.Error) map[string]string {
	d := map[string]string{}
	for k, v := range map[string]string{
		"rule":        e.Rule,
		"entity_type": e.EntityType,
		"entity_id":   e.EntityID,
		"from":        e.From,
		"to":          e.To,
	} {
		if v != "" {
			d[k] = v
		}
	}
	if len(d) == 0 {
		return nil
	}
	return d
}
