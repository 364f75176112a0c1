package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ErrorTypeValidation, "city cannot be empty")
			},
			expected: "VALIDATION_ERROR: city cannot be empty",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return Wrap(ErrorTypeStorage, "write preference", cause)
			},
			expected: "STORAGE_ERROR: write preference (caused by: connection refused)",
		},
		{
			name: "DuplicateFavorite",
			setup: func() *AppError {
				return NewDuplicateFavoriteError("Paris")
			},
			expected: "DUPLICATE_FAVORITE_ERROR: Paris is already in favorites",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.setup().Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("timeout")
	err := NewFetchError("weather request failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewNotFoundError("missing").Unwrap())
}

func TestTypeOf_WrappedChain(t *testing.T) {
	inner := NewGeolocationDeniedError("user denied location access")
	wrapped := fmt.Errorf("geolocate: %w", inner)

	assert.Equal(t, ErrorTypeGeolocationDenied, TypeOf(wrapped))
	assert.True(t, IsGeolocationError(wrapped))
	assert.False(t, IsFetchError(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"Validation", NewValidationError("bad"), IsValidationError},
		{"NotFound", NewNotFoundError("gone"), IsNotFoundError},
		{"DuplicateFavorite", NewDuplicateFavoriteError("Oslo"), IsDuplicateFavoriteError},
		{"Fetch", NewFetchError("down", nil), IsFetchError},
		{"GeolocationUnavailable", NewGeolocationUnavailableError("no fix", nil), IsGeolocationError},
		{"MissingDisplayTarget", NewMissingDisplayTargetError("uvIndex"), IsMissingDisplayTargetError},
		{"Storage", NewStorageError("disk", nil), IsStorageError},
		{"Configuration", NewConfigurationError("port", nil), IsConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(fmt.Errorf("wrapped: %w", tt.err)))
			assert.False(t, tt.check(New(ErrorTypeUnknown, "other")))
		})
	}
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "FETCH_FAILURE", ErrorTypeFetch.String())
	assert.Equal(t, "GEOLOCATION_UNAVAILABLE", ErrorTypeGeolocationUnavailable.String())
	assert.Equal(t, "MISSING_DISPLAY_TARGET", ErrorTypeMissingDisplayTarget.String())
	assert.Equal(t, "UNKNOWN_ERROR", ErrorType(99).String())
}
