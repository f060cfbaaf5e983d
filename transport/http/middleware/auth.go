package middleware

import (
	"context"
	"errors"
	"net/http"

	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/permissions"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
	}
}

// Auth validates the bearer token. A missing or malformed header is a 401,
// a token that fails verification is a 403.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			log.Debug().Err(err).Str("path", request.URL.Path).Msg("request without usable bearer token")

			m.reject(writer, scope, failure.Unauthorized(constant.ResponseErrorMissingToken))

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			reason := "invalid"

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				reason = "expired"
			case errors.Is(err, jwt.ErrInvalidClaim):
				reason = "claims"
			}

			log.Warn().Err(err).Str("reason", reason).Str("path", request.URL.Path).Msg("rejected bearer token")

			m.reject(writer, scope, failure.Forbidden(constant.ResponseErrorInvalidToken))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUsername, claims.Username)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)

		scope.SetAttribute("user.role", claims.Role)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the caller role against the permissions table.
// Requires prior authentication via Auth middleware
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if m.permission == nil {
			m.reject(writer, scope, failure.ForbiddenError)

			return
		}

		path := request.URL.Path
		if rctx := chi.RouteContext(ctx); rctx != nil {
			if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
				path = pattern
			}
		}

		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !m.permission.Allows(path, request.Method, userRole) {
			scope.SetAttributes(map[string]any{
				"user_role": userRole,
				"reason":    "role_not_allowed",
			})

			m.reject(writer, scope, failure.ForbiddenError)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

func (m *authRoleImpl) reject(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	scope.End()

	response.WithError(writer, err)
}
