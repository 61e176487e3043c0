package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// Every implementation serializes as the `{ ok:false, msg }` envelope the
// API speaks.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	OK      bool   `json:"ok"`
	Message string `json:"msg"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

// StructuredError carries the per-field problem list for validation
// failures.
type StructuredError struct {
	OK      bool                `json:"ok"`
	Message string              `json:"msg"`
	Errors  map[string][]string `json:"errors"`
	Status  int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedJSONError  = NewSimple(http.StatusBadRequest, "Malformed JSON body")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")

	UnauthorizedError     = NewSimple(http.StatusUnauthorized, "Missing or invalid credentials")
	InvalidAuthTokenError = NewSimple(http.StatusUnauthorized, "Invalid authentication token")
	ForbiddenRoleError    = NewSimple(http.StatusForbidden, "Role is not allowed to perform this action")

	CredentialsMismatchError = NewSimple(http.StatusBadRequest, "Wrong email or password")

	OrderFinishedError = NewSimple(http.StatusBadRequest, "Service order is already finished")
	NoStagesError      = NewSimple(http.StatusBadRequest, "Company has no active pipeline stages configured")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "gt":
			problems[field] = append(problems[field], "Value must be greater than "+fe.Param())
		case "gte":
			problems[field] = append(problems[field], "Value must be at least "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Message: "Validation failed",
		Errors:  problems,
		Status:  http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

// NewNotFound names the missing entity. It is also the answer for rows that
// exist but sit outside the caller's company, so scoping leaks nothing.
func NewNotFound(entity string) *APIError {
	return NewSimple(http.StatusNotFound, "%s not found in your company", entity)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewInvalidParamValueError(name, hint string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' is invalid, expected: %s", name, hint)
}
