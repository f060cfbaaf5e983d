package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	jwtMocks "frontdesk/infras/jwt/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/permissions"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
)

const permissionTable = `{
  "endpoints": [
    {"path": "/api/admin/dashboard", "method": "GET", "permissions": ["admin", "manager"]}
  ]
}`

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireMin = 60
	cfg.App.Name = "frontdesk"

	return cfg
}

func newRouter(t *testing.T, authRole middleware.AuthRole) http.Handler {
	t.Helper()

	r := chi.NewRouter()
	r.Route("/api/admin", func(admin chi.Router) {
		admin.Use(authRole.Auth, authRole.RBAC)
		admin.Get("/dashboard", func(w http.ResponseWriter, req *http.Request) {
			username, _ := req.Context().Value(constant.ContextKeyUsername).(string)
			_, _ = w.Write([]byte(username))
		})
	})

	return r
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func TestAuthRole(t *testing.T) {
	cfg := testConfig()
	jwtService := jwt.New(cfg)

	table, err := permissions.Parse([]byte(permissionTable))
	require.NoError(t, err)

	handler := newRouter(t, middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), table))

	token := func(role string) string {
		tok, err := jwtService.GenerateToken("user1", "admin", role)
		require.NoError(t, err)

		return tok.AccessToken
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
		wantBody   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantError:  constant.ResponseErrorMissingToken,
		},
		{
			name:       "not a bearer header",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantError:  constant.ResponseErrorMissingToken,
		},
		{
			name:       "tampered token",
			header:     "Bearer " + token(constant.RoleAdmin) + "x",
			wantStatus: http.StatusForbidden,
			wantError:  constant.ResponseErrorInvalidToken,
		},
		{
			name:       "role not allowed",
			header:     "Bearer " + token("staff"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin",
			header:     "Bearer " + token(constant.RoleAdmin),
			wantStatus: http.StatusOK,
			wantBody:   "admin",
		},
		{
			name:       "manager",
			header:     "Bearer " + token(constant.RoleManager),
			wantStatus: http.StatusOK,
			wantBody:   "admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorBody(t, rec))
			}

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuthRole_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)
	jwtService.EXPECT().ValidateToken("stale").Return(nil, jwt.ErrExpiredToken)

	handler := newRouter(t, middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), permissions.Get()))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer stale")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, constant.ResponseErrorInvalidToken, errorBody(t, rec))
}

func TestAuthRole_NoPermissionTable(t *testing.T) {
	cfg := testConfig()
	jwtService := jwt.New(cfg)

	handler := newRouter(t, middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), nil))

	tok, err := jwtService.GenerateToken("user1", "admin", constant.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+tok.AccessToken)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
