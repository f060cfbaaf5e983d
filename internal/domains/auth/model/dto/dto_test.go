package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/infras/jwt"
	"frontdesk/internal/domains/auth/model/dto"
	userModel "frontdesk/internal/domains/user/model"
)

func TestLoginResponse_FromToken(t *testing.T) {
	user := userModel.User{
		ID:       "user1",
		Username: "admin",
		Password: "$2a$10$hash",
		Role:     "admin",
		Name:     "Administrator",
	}

	var response dto.LoginResponse
	response.FromToken(&jwt.Token{AccessToken: "signed"}, user)

	assert.Equal(t, "signed", response.Token)
	assert.Equal(t, dto.UserResponse{ID: "user1", Username: "admin", Role: "admin", Name: "Administrator"}, response.User)
}

func TestLoginResponse_OmitsPasswordHash(t *testing.T) {
	var response dto.LoginResponse
	response.FromToken(&jwt.Token{AccessToken: "signed"}, userModel.User{ID: "user1", Password: "$2a$10$hash"})

	raw, err := json.Marshal(response)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "$2a$10$hash")
	assert.JSONEq(t, `{"token":"signed","user":{"id":"user1","username":"","role":"","name":""}}`, string(raw))
}
