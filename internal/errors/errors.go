package errors

import (
	"errors"
	"net/http"
)

// Not-found family: a referenced entity is absent.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrAllocationNotFound is returned when an allocation is not found.
	ErrAllocationNotFound = errors.New("allocation not found")
	// ErrRequestNotFound is returned when a swap request is not found.
	ErrRequestNotFound = errors.New("swap request not found")
)

// Invalid-operation family: a domain rule forbids the call.
var (
	// ErrNotOwned is returned when the offered allocation does not belong to the requester.
	ErrNotOwned = errors.New("offered allocation does not belong to you")
	// ErrSelfSwap is returned when the target allocation already belongs to the requester.
	ErrSelfSwap = errors.New("cannot swap with yourself")
	// ErrNoCredits is returned when the requester has no swap credits left.
	ErrNoCredits = errors.New("no swap credits left")
	// ErrAlreadyProcessed is returned when the request is no longer pending.
	ErrAlreadyProcessed = errors.New("swap request already processed")
	// ErrStaleRequest is returned when an implicated allocation no longer exists
	// at acceptance time; the request is cancelled as a side effect.
	ErrStaleRequest = errors.New("one of the allocations no longer exists, request cancelled")
	// ErrInvalidAction is returned when the processing action is neither ACCEPT nor REJECT.
	ErrInvalidAction = errors.New("action must be ACCEPT or REJECT")
)

// Conflict family.
var (
	// ErrDuplicateRequest is returned when an identical pending request already exists.
	ErrDuplicateRequest = errors.New("an identical pending swap request already exists")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrAllocationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ALLOCATION_NOT_FOUND")
	case errors.Is(err, ErrRequestNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REQUEST_NOT_FOUND")
	case errors.Is(err, ErrNotOwned):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_OWNED")
	case errors.Is(err, ErrSelfSwap):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_SWAP")
	case errors.Is(err, ErrNoCredits):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_CREDITS")
	case errors.Is(err, ErrAlreadyProcessed):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_PROCESSED")
	case errors.Is(err, ErrStaleRequest):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "STALE_REQUEST")
	case errors.Is(err, ErrInvalidAction):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ACTION")
	case errors.Is(err, ErrDuplicateRequest):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_REQUEST")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
