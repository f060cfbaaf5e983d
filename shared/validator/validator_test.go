package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"frontdesk/shared/failure"
	"frontdesk/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkInBody struct {
	GuestName string `json:"guestName" validate:"notblank"`
	Email     string `json:"email"     validate:"omitempty,email"`
	Role      string `json:"role"      validate:"omitempty,oneof=admin manager"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    checkInBody
		wantErr string
	}{
		{
			name: "valid struct",
			data: checkInBody{GuestName: "Jane Doe", Email: "jane@example.com"},
		},
		{
			name: "optional email may be empty",
			data: checkInBody{GuestName: "Jane Doe"},
		},
		{
			name:    "missing guest name",
			data:    checkInBody{Email: "jane@example.com"},
			wantErr: "guestName must not be blank",
		},
		{
			name:    "whitespace guest name",
			data:    checkInBody{GuestName: "   "},
			wantErr: "guestName must not be blank",
		},
		{
			name:    "invalid email",
			data:    checkInBody{GuestName: "Jane Doe", Email: "not-an-email"},
			wantErr: "email must be a valid email address",
		},
		{
			name:    "invalid role",
			data:    checkInBody{GuestName: "Jane Doe", Role: "guest"},
			wantErr: "role must be one of admin manager",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "hotel1", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid email", field: "test@example.com", tag: "email"},
		{name: "invalid email", field: "invalid-email", tag: "email", expectError: true},
		{name: "empty tag accepts zero", field: "", tag: "empty"},
		{name: "empty tag rejects value", field: "x", tag: "empty", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{name: "valid JSON", jsonBody: `{"guestName":"Jane Doe","email":"jane@example.com"}`},
		{name: "invalid field", jsonBody: `{"guestName":"Jane Doe","email":"nope"}`, expectError: true},
		{name: "malformed JSON", jsonBody: `{"guestName":}`, expectError: true},
		{name: "empty JSON", jsonBody: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data checkInBody
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Jane Doe", data.GuestName)
			}
		})
	}
}
