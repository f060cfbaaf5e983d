package frontdesk

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/frontdesk/model/dto"
	"frontdesk/internal/domains/frontdesk/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Frontdesk
	otel    otel.Otel
}

func New(service service.Frontdesk, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/guest", func(r chi.Router) {
		r.Post("/checkin", handler.CheckIn)
		r.Post("/checkout", handler.CheckOut)
	})

	r.Post("/rooms/assign", handler.AssignRoom)
}

// CheckIn registers an arriving guest.
// @Summary Check in a guest
// @Tags Frontdesk
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check-in Request"
// @Success 200 {object} dto.CheckInResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/guest/checkin [post]
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked in")

	response.WithJSON(w, http.StatusOK, res)
}

// CheckOut closes a stay by booking number.
// @Summary Check out a guest
// @Tags Frontdesk
// @Accept json
// @Produce json
// @Param request body dto.CheckOutRequest true "Check-out Request"
// @Success 200 {object} dto.CheckOutResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/guest/checkout [post]
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	req := dto.CheckOutRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckOut(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingNumber", req.BookingNumber).Msg("failed to check out guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked out")

	response.WithJSON(w, http.StatusOK, res)
}

// AssignRoom checks in a guest into a chosen or randomly drawn room.
// @Summary Assign a room and check in
// @Tags Frontdesk
// @Accept json
// @Produce json
// @Param request body dto.AssignRoomRequest true "Assign Request"
// @Success 200 {object} dto.AssignRoomResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms/assign [post]
func (handler *Handler) AssignRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignRoom")
	defer scope.End()

	req := dto.AssignRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AssignRoom(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("hotelId", req.HotelID).Msg("failed to assign room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room assigned")

	response.WithJSON(w, http.StatusOK, res)
}
