package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	jwtMocks "frontdesk/infras/jwt/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/internal/domains/auth/service"
	userMocks "frontdesk/internal/domains/user/mocks"
	userModel "frontdesk/internal/domains/user/model"
	userRepo "frontdesk/internal/domains/user/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/password"
	"frontdesk/shared/timezone"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireMin = 60
	cfg.App.Name = "frontdesk"

	return cfg
}

func seedUsers(t *testing.T) userRepo.User {
	t.Helper()

	hash, err := password.HashWithCost("admin123", bcrypt.MinCost)
	require.NoError(t, err)

	repo := userRepo.New(nil, mocks.NewOtel())
	require.NoError(t, repo.Insert(context.Background(), userModel.User{
		ID:       "user1",
		Username: "admin",
		Password: hash,
		Role:     constant.RoleAdmin,
		Name:     "Administrator",
		Metadata: gModel.NewMetadata(timezone.Now(), constant.ContextSystem),
	}))

	return repo
}

func TestAuthService_Login(t *testing.T) {
	cfg := testConfig()
	jwtService := jwt.New(cfg)
	svc := service.New(seedUsers(t), cfg, mocks.NewOtel(), jwtService)

	res, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, dto.UserResponse{ID: "user1", Username: "admin", Role: constant.RoleAdmin, Name: "Administrator"}, res.User)

	claims, err := jwtService.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, constant.RoleAdmin, claims.Role)
	assert.Equal(t, "user1", claims.UserID)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	cfg := testConfig()
	svc := service.New(seedUsers(t), cfg, mocks.NewOtel(), jwt.New(cfg))

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{name: "wrong password", req: dto.LoginRequest{Username: "admin", Password: "nope"}},
		{name: "unknown user", req: dto.LoginRequest{Username: "ghost", Password: "admin123"}},
		{name: "empty password", req: dto.LoginRequest{Username: "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			require.Error(t, err)

			assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
			assert.Equal(t, constant.ResponseErrorInvalidCredentials, err.Error())
		})
	}
}

func TestAuthService_LoginInternalErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := password.HashWithCost("admin123", bcrypt.MinCost)
	require.NoError(t, err)

	user := userModel.User{ID: "user1", Username: "admin", Password: hash, Role: constant.RoleAdmin}

	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT)
	}{
		{
			name: "store failure",
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("connection refused"))
			},
		},
		{
			name: "signing failure",
			setupMock: func(repo *userMocks.MockUser, jwtService *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				jwtService.EXPECT().GenerateToken(user.ID, user.Username, user.Role).Return(nil, errors.New("sign failed"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := userMocks.NewMockUser(ctrl)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(repo, jwtService)

			svc := service.New(repo, testConfig(), mocks.NewOtel(), jwtService)

			_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
			require.Error(t, err)
			assert.True(t, failure.IsInternal(err))
		})
	}
}
