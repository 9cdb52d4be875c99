package flight

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrorCodeUpstream        ErrorCode = "UPSTREAM_FAILURE"
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeInternalFailure ErrorCode = "INTERNAL_FAILURE"
)

// AppError carries the HTTP status and code a failure should be reported with.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newValidationError(err error) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: ErrorCodeValidation, Message: err.Error(), Err: err}
}

func newUpstreamError(message string) *AppError {
	return &AppError{Status: http.StatusBadGateway, Code: ErrorCodeUpstream, Message: message}
}

func newNotFoundError(message string, err error) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: ErrorCodeNotFound, Message: message, Err: err}
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingDeparture      ValidationError = "departure airport is required"
	ErrMissingArrival        ValidationError = "arrival airport is required"
	ErrMissingReturnDate     ValidationError = "return_date is required for RoundTrip searches"
	ErrReturnBeforeDeparture ValidationError = "return_date must not be before departure_date"
	ErrInvalidDate           ValidationError = "dates must use the YYYY-MM-DD format"
	ErrUnknownJourneyType    ValidationError = "journey_type must be one of OneWay, RoundTrip, MultiCity"
	ErrUnknownCabinClass     ValidationError = "cabin_class must be one of Economy, Premium-Economy, Business, First-Class"
	ErrInvalidPassengers     ValidationError = "adults must be between 1 and 9, children and infants between 0 and 9"
)
