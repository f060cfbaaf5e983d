package password_test

import (
	"strings"
	"testing"

	"frontdesk/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	hash, err := password.HashWithCost("admin123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "admin123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NoError(t, password.Verify("admin123", hash))
}

func TestHash_Empty(t *testing.T) {
	_, err := password.Hash("")

	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestHash_TooLong(t *testing.T) {
	_, err := password.HashWithCost(strings.Repeat("a", 80), bcrypt.MinCost)

	assert.ErrorIs(t, err, password.ErrHashingPassword)
}

func TestVerify(t *testing.T) {
	hash, err := password.HashWithCost("manager123", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "matching password", password: "manager123", hash: hash},
		{name: "wrong password", password: "admin123", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "manager123", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", password: "manager123", hash: "not-a-hash", wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
