package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/internal/handlers/admin"
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/frontdesk"
	"frontdesk/internal/handlers/hotel"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"
	"frontdesk/transport/websocket"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	apiPrefix  = "/api"
	spaIndex   = "index.html"
	healthPath = "/health"
	socketPath = "/ws"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Hotel     hotel.Handler
	Frontdesk frontdesk.Handler
	Admin     admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
	Hub            *websocket.Hub
	Config         *config.Config
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole, hub *websocket.Hub, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
		Hub:            hub,
		Config:         cfg,
	}
}

// SetupRoutes mounts the REST API under /api.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route(apiPrefix, func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Frontdesk.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.AuthRole.Auth, r.AuthRole.RBAC)

			r.DomainHandlers.Admin.Router(adminGroup)
		})
	})
}

// Handler builds the complete HTTP handler. health answers /health; a nil
// health reports ok unconditionally.
func (r *Router) Handler(health http.HandlerFunc) http.Handler {
	router := chi.NewRouter()

	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.RealIP,
		chiMiddleware.Recoverer,
		r.App.AccessLog,
		r.App.Tracing,
	)

	corsCfg := r.Config.App.CORS
	if corsCfg.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsCfg.AllowedOrigins,
			AllowedMethods:   corsCfg.AllowedMethods,
			AllowedHeaders:   corsCfg.AllowedHeaders,
			ExposedHeaders:   []string{constant.RequestHeaderRequestID},
			AllowCredentials: corsCfg.AllowCredentials,
			MaxAge:           corsCfg.MaxAgeSeconds,
		}))
	}

	if health == nil {
		health = Health
	}

	router.Get(healthPath, health)
	router.Handle(socketPath, r.Hub)

	r.SetupRoutes(router)

	router.NotFound(r.fallback)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}

// Health reports liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(constant.DateFormat),
	})
}

// fallback serves the bundled single page app for unknown GET routes outside
// the API. Paths without a matching file get index.html.
func (r *Router) fallback(w http.ResponseWriter, req *http.Request) {
	staticDir := r.Config.App.StaticDir

	if staticDir == "" || req.Method != http.MethodGet || strings.HasPrefix(req.URL.Path, apiPrefix+"/") {
		notFound(w, req)

		return
	}

	target := filepath.Join(staticDir, filepath.FromSlash(filepath.Clean("/"+req.URL.Path)))

	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		http.ServeFile(w, req, target)

		return
	}

	index := filepath.Join(staticDir, spaIndex)
	if _, err := os.Stat(index); err != nil {
		notFound(w, req)

		return
	}

	http.ServeFile(w, req, index)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	response.WithError(w, failure.NotFound(constant.ResponseErrorRouteNotFound))
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	response.WithError(w, &failure.Failure{Code: http.StatusMethodNotAllowed, Message: constant.ResponseErrorMethodNotAllowed})
}
