package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/admin/model/dto"
	bookingDto "frontdesk/internal/domains/booking/model/dto"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	checkoutModel "frontdesk/internal/domains/checkout/model"
	checkoutDto "frontdesk/internal/domains/checkout/model/dto"
	checkoutRepo "frontdesk/internal/domains/checkout/repository"
	guestModel "frontdesk/internal/domains/guest/model"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	guestRepo "frontdesk/internal/domains/guest/repository"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Admin serves the read-only views behind /api/admin.
type Admin interface {
	Guests(ctx context.Context, params gDto.QueryParams) ([]guestDto.GuestResponse, error)
	Bookings(ctx context.Context, params gDto.QueryParams) ([]bookingDto.BookingResponse, error)
	Checkouts(ctx context.Context, params gDto.QueryParams) ([]checkoutDto.CheckoutResponse, error)
	Rooms(ctx context.Context, params gDto.QueryParams) ([]roomDto.RoomResponse, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	guestRepo    guestRepo.Guest
	bookingRepo  bookingRepo.Booking
	checkoutRepo checkoutRepo.Checkout
	rooms        roomService.Room
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	guestRepo guestRepo.Guest,
	bookingRepo bookingRepo.Booking,
	checkoutRepo checkoutRepo.Checkout,
	rooms roomService.Room,
	cfg *config.Config,
	otel otel.Otel,
) Admin {
	return &serviceImpl{
		guestRepo:    guestRepo,
		bookingRepo:  bookingRepo,
		checkoutRepo: checkoutRepo,
		rooms:        rooms,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Guests(ctx context.Context, params gDto.QueryParams) (res []guestDto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Guests")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guests, err := s.guestRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return nil, listFailure(fmt.Errorf("failed to get guests: %w", err))
	}

	return guestDto.FromModels(guests), nil
}

func (s *serviceImpl) Bookings(ctx context.Context, params gDto.QueryParams) (res []bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Bookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.bookingRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, listFailure(fmt.Errorf("failed to get bookings: %w", err))
	}

	return bookingDto.FromModels(bookings), nil
}

func (s *serviceImpl) Checkouts(ctx context.Context, params gDto.QueryParams) (res []checkoutDto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Checkouts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkouts, err := s.checkoutRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get checkouts")

		return nil, listFailure(fmt.Errorf("failed to get checkouts: %w", err))
	}

	return checkoutDto.FromModels(checkouts), nil
}

func (s *serviceImpl) Rooms(ctx context.Context, params gDto.QueryParams) ([]roomDto.RoomResponse, error) {
	res, err := s.rooms.ListAll(ctx, params)
	if err != nil {
		return nil, listFailure(err)
	}

	return res, nil
}

// Dashboard summarises occupancy. Today is the current calendar day in the
// application timezone and recent checkouts are the last ones appended.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.CheckedInGuests, err = s.guestRepo.Count(ctx, gDto.Where(guestModel.FieldStatus, constant.GuestStatusCheckedIn))
	if err != nil {
		log.Error().Err(err).Msg("failed to count checked-in guests")

		return res, fmt.Errorf("failed to count checked-in guests: %w", err)
	}

	res.TotalCheckouts, err = s.checkoutRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count checkouts")

		return res, fmt.Errorf("failed to count checkouts: %w", err)
	}

	start, end := timezone.DayBounds(timezone.Now())
	today := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: checkoutModel.FieldCheckOutTime, Operator: gDto.FilterOperatorGreaterEq, Value: start, ArgName: "day_start"},
			gDto.Filter{Field: checkoutModel.FieldCheckOutTime, Operator: gDto.FilterOperatorLessEq, Value: end, ArgName: "day_end"},
		},
	}

	res.TodayCheckouts, err = s.checkoutRepo.Count(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to count today's checkouts")

		return res, fmt.Errorf("failed to count today's checkouts: %w", err)
	}

	recent, err := s.checkoutRepo.GetAll(ctx, gDto.QueryParams{
		Page:    1,
		Limit:   constant.RecentCheckoutLimit,
		SortBy:  constant.FieldSequence,
		SortDir: gDto.SortDirDesc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent checkouts")

		return res, fmt.Errorf("failed to get recent checkouts: %w", err)
	}

	slices.Reverse(recent)
	res.RecentCheckouts = checkoutDto.FromModels(recent)

	return res, nil
}

// listFailure turns an unknown sort column into a client error.
func listFailure(err error) error {
	if errors.Is(err, gRepo.ErrUnknownColumn) {
		return failure.BadRequest(err)
	}

	return err
}
