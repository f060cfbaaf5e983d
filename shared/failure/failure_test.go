package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "guestName is required",
	}

	assert.Equal(t, "guestName is required", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("malformed body")),
			code:    http.StatusBadRequest,
			message: "malformed body",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("No rooms available for this hotel"),
			code:    http.StatusBadRequest,
			message: "No rooms available for this hotel",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("Invalid credentials"),
			code:    http.StatusUnauthorized,
			message: "Invalid credentials",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("Invalid or expired token"),
			code:    http.StatusForbidden,
			message: "Invalid or expired token",
		},
		{
			name:    "not found",
			err:     failure.NotFound("Guest not found"),
			code:    http.StatusNotFound,
			message: "Guest not found",
		},
		{
			name:    "internal",
			err:     failure.InternalError(errors.New("store offline")),
			code:    http.StatusInternalServerError,
			message: "store offline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			require.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    failure.NotFound("Guest not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("checkout: %w", failure.NotFound("Guest not found")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestIsInternal(t *testing.T) {
	assert.True(t, failure.IsInternal(errors.New("boom")))
	assert.True(t, failure.IsInternal(failure.InternalError(errors.New("boom"))))
	assert.False(t, failure.IsInternal(failure.BadRequestFromString("bad")))
	assert.False(t, failure.IsInternal(failure.ForbiddenError))
}
