package admin

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/admin/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the admin views. Callers wrap r with the auth middleware.
func (handler *Handler) Router(r chi.Router) {
	r.Get("/guests", handler.Guests)
	r.Get("/bookings", handler.Bookings)
	r.Get("/checkouts", handler.Checkouts)
	r.Get("/rooms", handler.Rooms)
	r.Get("/dashboard", handler.Dashboard)
}

func (handler *Handler) Guests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".admin.Guests")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	res, err := handler.service.Guests(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) Bookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".admin.Bookings")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	res, err := handler.service.Bookings(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) Checkouts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".admin.Checkouts")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	res, err := handler.service.Checkouts(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list checkouts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".admin.Rooms")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	res, err := handler.service.Rooms(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Dashboard summarises guests in house and checkouts.
func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".admin.Dashboard")
	defer scope.End()

	res, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
