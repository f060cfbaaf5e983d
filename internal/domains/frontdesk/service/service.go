package service

import (
	"context"
	"fmt"
	"sync"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	checkoutRepo "frontdesk/internal/domains/checkout/repository"
	"frontdesk/internal/domains/frontdesk/model/dto"
	guestModel "frontdesk/internal/domains/guest/model"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	guestRepo "frontdesk/internal/domains/guest/repository"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/event"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Frontdesk interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.CheckInResponse, error)
	CheckOut(ctx context.Context, req dto.CheckOutRequest) (dto.CheckOutResponse, error)
	AssignRoom(ctx context.Context, req dto.AssignRoomRequest) (dto.AssignRoomResponse, error)
}

type serviceImpl struct {
	// mu serialises every mutating workflow so room selection and the
	// guest lookup on checkout never interleave.
	mu           sync.Mutex
	guestRepo    guestRepo.Guest
	bookingRepo  bookingRepo.Booking
	checkoutRepo checkoutRepo.Checkout
	rooms        roomService.Room
	publisher    event.Publisher
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	guestRepo guestRepo.Guest,
	bookingRepo bookingRepo.Booking,
	checkoutRepo checkoutRepo.Checkout,
	rooms roomService.Room,
	publisher event.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Frontdesk {
	return &serviceImpl{
		guestRepo:    guestRepo,
		bookingRepo:  bookingRepo,
		checkoutRepo: checkoutRepo,
		rooms:        rooms,
		publisher:    publisher,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".frontdesk.CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	stay := req.Stay()

	if req.NeedsAssignment() {
		room, err := s.rooms.Assign(ctx, roomDto.AssignRequest{HotelID: req.HotelID})
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		stay = stay.WithRoom(room)
	}

	guest, err := s.register(ctx, stay)
	if err != nil {
		return res, err
	}

	res.Success = true
	res.Guest = guest

	return res, nil
}

func (s *serviceImpl) AssignRoom(ctx context.Context, req dto.AssignRoomRequest) (res dto.AssignRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".frontdesk.AssignRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.rooms.Assign(ctx, roomDto.AssignRequest{
		HotelID: req.HotelID,
		Number:  req.RoomNumber,
		Type:    req.RoomType,
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	guest, err := s.register(ctx, req.Stay().WithRoom(room))
	if err != nil {
		return res, err
	}

	res.Success = true
	res.Guest = guest
	res.AssignedRoom.FromModel(room)

	return res, nil
}

// CheckOut marks the first guest holding the booking number as departed and
// records the checkout. The booking and the room are left as they are.
func (s *serviceImpl) CheckOut(ctx context.Context, req dto.CheckOutRequest) (res dto.CheckOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".frontdesk.CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.number", req.BookingNumber)

	s.mu.Lock()
	defer s.mu.Unlock()

	guest, err := s.guestRepo.Get(ctx, gDto.Where(guestModel.FieldBookingNumber, req.BookingNumber))
	if err != nil {
		log.Error().Err(err).Str("bookingNumber", req.BookingNumber).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == "" {
		return res, failure.NotFound(constant.ResponseErrorGuestNotFound)
	}

	now := timezone.Now()
	actor := shared.ActorFromContext(ctx)

	update := shared.TransformFields(req.ToCheckOutModel(now), actor)

	if err = s.guestRepo.Update(ctx, update, gDto.Where(guestModel.FieldID, guest.ID)); err != nil {
		log.Error().Err(err).Str("guestId", guest.ID).Msg("failed to check out guest")

		return res, fmt.Errorf("failed to check out guest: %w", err)
	}

	checkout := req.ToCheckoutModel(guest, now, actor)

	if err = s.checkoutRepo.Insert(ctx, checkout); err != nil {
		log.Error().Err(err).Str("bookingNumber", req.BookingNumber).Msg("failed to create checkout")

		return res, fmt.Errorf("failed to create checkout: %w", err)
	}

	res.Success = true
	res.Checkout.FromModel(checkout)

	s.publish(ctx, event.TopicGuestCheckedOut, res.Checkout)

	log.Info().Str("bookingNumber", checkout.BookingNumber).Str("roomNumber", checkout.RoomNumber).Msg("guest checked out")

	return res, nil
}

// register appends the guest and its booking and announces the arrival.
func (s *serviceImpl) register(ctx context.Context, stay dto.Stay) (res guestDto.GuestResponse, err error) {
	if stay.BookingNumber == "" {
		stay.BookingNumber = shared.NewBookingNumber()
	}

	now := timezone.Now()
	actor := shared.ActorFromContext(ctx)

	guest := stay.ToGuestModel(now, actor)

	if err = s.guestRepo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Str("bookingNumber", stay.BookingNumber).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	if err = s.bookingRepo.Insert(ctx, stay.ToBookingModel(now, actor)); err != nil {
		log.Error().Err(err).Str("bookingNumber", stay.BookingNumber).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(guest)

	s.publish(ctx, event.TopicGuestCheckedIn, res)

	log.Info().Str("bookingNumber", guest.BookingNumber).Str("roomNumber", guest.RoomNumber).Msg("guest checked in")

	return res, nil
}

func (s *serviceImpl) publish(ctx context.Context, topic string, payload any) {
	if err := s.publisher.Publish(ctx, topic, payload); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish event")
	}
}
