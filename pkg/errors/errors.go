package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error kinds grouped by where they originate

type ErrorType int

// Domain errors - user input and preference rules
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeDuplicateFavorite

	// Collaborator errors - weather fetch, geolocation, display surface, storage
	ErrorTypeFetch
	ErrorTypeGeolocationUnavailable
	ErrorTypeGeolocationDenied
	ErrorTypeMissingDisplayTarget
	ErrorTypeStorage

	// System/Configuration errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeDuplicateFavorite:
		return "DUPLICATE_FAVORITE_ERROR"
	case ErrorTypeFetch:
		return "FETCH_FAILURE"
	case ErrorTypeGeolocationUnavailable:
		return "GEOLOCATION_UNAVAILABLE"
	case ErrorTypeGeolocationDenied:
		return "GEOLOCATION_DENIED"
	case ErrorTypeMissingDisplayTarget:
		return "MISSING_DISPLAY_TARGET"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain error constructors
func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, message)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, message)
}

func NewDuplicateFavoriteError(city string) *AppError {
	return New(ErrorTypeDuplicateFavorite, fmt.Sprintf("%s is already in favorites", city))
}

// Collaborator error constructors
func NewFetchError(message string, cause error) *AppError {
	return Wrap(ErrorTypeFetch, message, cause)
}

func NewGeolocationUnavailableError(message string, cause error) *AppError {
	return Wrap(ErrorTypeGeolocationUnavailable, message, cause)
}

func NewGeolocationDeniedError(message string) *AppError {
	return New(ErrorTypeGeolocationDenied, message)
}

func NewMissingDisplayTargetError(target string) *AppError {
	return New(ErrorTypeMissingDisplayTarget, fmt.Sprintf("display target %q not found", target))
}

func NewStorageError(message string, cause error) *AppError {
	return Wrap(ErrorTypeStorage, message, cause)
}

// System/Configuration error constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

// TypeOf returns the kind of the first AppError in the chain, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ErrorTypeValidation
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

func IsDuplicateFavoriteError(err error) bool {
	return TypeOf(err) == ErrorTypeDuplicateFavorite
}

func IsFetchError(err error) bool {
	return TypeOf(err) == ErrorTypeFetch
}

func IsGeolocationError(err error) bool {
	t := TypeOf(err)
	return t == ErrorTypeGeolocationUnavailable || t == ErrorTypeGeolocationDenied
}

func IsMissingDisplayTargetError(err error) bool {
	return TypeOf(err) == ErrorTypeMissingDisplayTarget
}

func IsStorageError(err error) bool {
	return TypeOf(err) == ErrorTypeStorage
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ErrorTypeConfiguration
}
