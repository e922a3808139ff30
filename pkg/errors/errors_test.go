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
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("original error")
				return Wrap(DatabaseError, "database operation failed", cause)
			},
			expected: "DATABASE_ERROR: database operation failed (caused by: original error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewExternalAPIError("completion call failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewNotFoundError("missing").Unwrap())
}

func TestSpecificErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		err          *AppError
		expectedType ErrorType
		hasCause     bool
	}{
		{name: "Validation", err: NewValidationError("bad"), expectedType: ValidationError},
		{name: "NotFound", err: NewNotFoundError("gone"), expectedType: NotFoundError},
		{name: "Database", err: NewDatabaseError("db", fmt.Errorf("x")), expectedType: DatabaseError, hasCause: true},
		{name: "ExternalAPI", err: NewExternalAPIError("api", fmt.Errorf("x")), expectedType: ExternalAPIError, hasCause: true},
		{name: "Configuration", err: NewConfigurationError("cfg", nil), expectedType: ConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedType, tt.err.Type)
			assert.Equal(t, tt.hasCause, tt.err.Cause != nil)
		})
	}
}

func TestTypePredicates_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetch forecast for Delhi: %w", NewExternalAPIError("status 502", nil))

	assert.True(t, IsExternalAPIError(wrapped))
	assert.False(t, IsConfigurationError(wrapped))
	assert.Equal(t, ExternalAPIError, TypeOf(wrapped))

	assert.True(t, IsConfigurationError(NewConfigurationError("OPENAI_API_KEY is not set", nil)))
	assert.True(t, IsValidationError(NewValidationError("message is required")))
	assert.True(t, IsNotFoundError(NewNotFoundError("category not found")))
	assert.True(t, IsDatabaseError(NewDatabaseError("insert failed", nil)))
}

func TestTypeOf_PlainError(t *testing.T) {
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
	assert.Equal(t, "UNKNOWN_ERROR", ErrorTypeUnknown.String())
}
