package hotel

import (
	"net/http"

	"frontdesk/infras/otel"
	hotelService "frontdesk/internal/domains/hotel/service"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	hotels hotelService.Hotel
	rooms  roomService.Room
	otel   otel.Otel
}

func New(hotels hotelService.Hotel, rooms roomService.Room, otel otel.Otel) Handler {
	return Handler{
		hotels: hotels,
		rooms:  rooms,
		otel:   otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/hotels", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/{"+constant.RequestParamHotelID+"}/rooms", handler.AvailableRooms)
	})
}

// List returns every hotel.
// @Summary List hotels
// @Tags Hotel
// @Produce json
// @Success 200 {array} dto.HotelResponse
// @Failure 500 {object} response.Error
// @Router /api/hotels [get]
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".hotel.List")
	defer scope.End()

	res, err := handler.hotels.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AvailableRooms returns the rooms of a hotel that can still be assigned.
// @Summary List available rooms of a hotel
// @Tags Hotel
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Success 200 {array} dto.RoomResponse
// @Failure 500 {object} response.Error
// @Router /api/hotels/{hotelId}/rooms [get]
func (handler *Handler) AvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".hotel.AvailableRooms")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)
	scope.SetAttribute("hotel.id", hotelID)

	res, err := handler.rooms.ListAvailable(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("hotelId", hotelID).Msg("failed to list available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
