package service_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	checkoutDto "frontdesk/internal/domains/checkout/model/dto"
	checkoutRepo "frontdesk/internal/domains/checkout/repository"
	"frontdesk/internal/domains/frontdesk/model/dto"
	"frontdesk/internal/domains/frontdesk/service"
	guestModel "frontdesk/internal/domains/guest/model"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	guestRepo "frontdesk/internal/domains/guest/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/event"
	eventMocks "frontdesk/shared/event/mocks"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	guests    guestRepo.Guest
	bookings  bookingRepo.Booking
	checkouts checkoutRepo.Checkout
	rooms     roomRepo.Room
	bus       *event.Bus
	svc       service.Frontdesk

	mu     sync.Mutex
	events []event.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ot := mocks.NewOtel()
	cfg := &config.Config{}

	f := &fixture{
		guests:    guestRepo.New(nil, ot),
		bookings:  bookingRepo.New(nil, ot),
		checkouts: checkoutRepo.New(nil, ot),
		rooms:     roomRepo.New(nil, ot),
		bus:       event.NewBus(ot),
	}

	rooms := []roomModel.Room{
		{ID: "room1", HotelID: "hotel1", Number: "101", Type: "Standard", Price: 100, Available: true},
		{ID: "room2", HotelID: "hotel1", Number: "102", Type: "Deluxe", Price: 150, Available: true},
		{ID: "room3", HotelID: "hotel1", Number: "201", Type: "Suite", Price: 250, Available: true},
		{ID: "room4", HotelID: "hotel1", Number: "202", Type: "Standard", Price: 100, Available: false},
		{ID: "room5", HotelID: "hotel2", Number: "101", Type: "Standard", Price: 120, Available: true},
	}

	for _, room := range rooms {
		require.NoError(t, f.rooms.Insert(context.Background(), room))
	}

	f.bus.Subscribe(event.TopicAll, func(_ context.Context, evt event.Event) {
		f.mu.Lock()
		defer f.mu.Unlock()

		f.events = append(f.events, evt)
	})

	roomSvc := roomService.New(f.rooms, cfg, cache.New(nil, ot), ot)
	f.svc = service.New(f.guests, f.bookings, f.checkouts, roomSvc, f.bus, cfg, ot)

	return f
}

func (f *fixture) published() []event.Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]event.Event(nil), f.events...)
}

func (f *fixture) counts(t *testing.T) (guests, bookings, checkouts int) {
	t.Helper()

	ctx := context.Background()

	guests, err := f.guests.Count(ctx, gDto.FilterGroup{})
	require.NoError(t, err)

	bookings, err = f.bookings.Count(ctx, gDto.FilterGroup{})
	require.NoError(t, err)

	checkouts, err = f.checkouts.Count(ctx, gDto.FilterGroup{})
	require.NoError(t, err)

	return guests, bookings, checkouts
}

func TestFrontdesk_CheckInAppendsGuestAndBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.CheckIn(ctx, dto.CheckInRequest{GuestName: "Jane Doe", Email: "jane@example.com", RoomNumber: "101"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Regexp(t, `^BK[0-9A-F]{8}$`, res.Guest.BookingNumber)
	assert.Equal(t, constant.GuestStatusCheckedIn, res.Guest.Status)
	assert.Equal(t, "101", res.Guest.RoomNumber)
	assert.Nil(t, res.Guest.CheckOutTime)

	guests, bookings, checkouts := f.counts(t)
	assert.Equal(t, 1, guests)
	assert.Equal(t, 1, bookings)
	assert.Equal(t, 0, checkouts)

	booking, err := f.bookings.Get(ctx, gDto.Where(bookingModel.FieldBookingNumber, res.Guest.BookingNumber))
	require.NoError(t, err)
	assert.Equal(t, constant.BookingStatusActive, booking.Status)
	assert.Equal(t, "Jane Doe", booking.GuestName)
	assert.True(t, booking.CheckInTime.Equal(res.Guest.CheckInTime))

	events := f.published()
	require.Len(t, events, 1)
	assert.Equal(t, event.TopicGuestCheckedIn, events[0].Topic)

	payload, ok := events[0].Data.(guestDto.GuestResponse)
	require.True(t, ok)
	assert.Equal(t, res.Guest, payload)
}

func TestFrontdesk_CheckInKeepsDuplicateBookingNumbers(t *testing.T) {
	f := newFixture(t)

	for range 2 {
		res, err := f.svc.CheckIn(context.Background(), dto.CheckInRequest{BookingNumber: "BK1", GuestName: "Jane Doe"})
		require.NoError(t, err)
		assert.Equal(t, "BK1", res.Guest.BookingNumber)
	}

	guests, bookings, _ := f.counts(t)
	assert.Equal(t, 2, guests)
	assert.Equal(t, 2, bookings)
}

func TestFrontdesk_CheckInAutoAssignsRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.CheckIn(ctx, dto.CheckInRequest{GuestName: "Jane Doe", HotelID: "hotel1"})
	require.NoError(t, err)

	assert.Equal(t, "hotel1", res.Guest.HotelID)
	assert.Contains(t, []string{"101", "102", "201"}, res.Guest.RoomNumber)

	room, err := f.rooms.Get(ctx, gDto.Where(roomModel.FieldHotelID, "hotel1", roomModel.FieldNumber, res.Guest.RoomNumber))
	require.NoError(t, err)
	assert.False(t, room.Available)

	booking, err := f.bookings.Get(ctx, gDto.Where(bookingModel.FieldBookingNumber, res.Guest.BookingNumber))
	require.NoError(t, err)
	assert.Equal(t, room.Type, booking.RoomType)
}

func TestFrontdesk_CheckInWithoutRoomsFails(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CheckIn(context.Background(), dto.CheckInRequest{GuestName: "Jane Doe", HotelID: "hotel3"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, constant.ResponseErrorNoRoomsAvailable, err.Error())

	guests, bookings, _ := f.counts(t)
	assert.Zero(t, guests)
	assert.Zero(t, bookings)
	assert.Empty(t, f.published())
}

func TestFrontdesk_CheckOutLeavesBookingActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in, err := f.svc.CheckIn(ctx, dto.CheckInRequest{GuestName: "Jane Doe", HotelID: "hotel1"})
	require.NoError(t, err)

	out, err := f.svc.CheckOut(ctx, dto.CheckOutRequest{BookingNumber: in.Guest.BookingNumber, Feedback: "Lovely stay"})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, in.Guest.BookingNumber, out.Checkout.BookingNumber)
	assert.Equal(t, "Jane Doe", out.Checkout.GuestName)
	assert.Equal(t, in.Guest.RoomNumber, out.Checkout.RoomNumber)
	assert.Equal(t, "Lovely stay", out.Checkout.Feedback)
	assert.True(t, out.Checkout.CheckInTime.Equal(in.Guest.CheckInTime))

	guest, err := f.guests.Get(ctx, gDto.Where(guestModel.FieldBookingNumber, in.Guest.BookingNumber))
	require.NoError(t, err)
	assert.Equal(t, constant.GuestStatusCheckedOut, guest.Status)
	require.NotNil(t, guest.CheckOutTime)
	assert.True(t, guest.CheckOutTime.Equal(out.Checkout.CheckOutTime))
	assert.Equal(t, "Lovely stay", guest.Feedback)

	booking, err := f.bookings.Get(ctx, gDto.Where(bookingModel.FieldBookingNumber, in.Guest.BookingNumber))
	require.NoError(t, err)
	assert.Equal(t, constant.BookingStatusActive, booking.Status)

	room, err := f.rooms.Get(ctx, gDto.Where(roomModel.FieldHotelID, "hotel1", roomModel.FieldNumber, in.Guest.RoomNumber))
	require.NoError(t, err)
	assert.False(t, room.Available)

	guests, bookings, checkouts := f.counts(t)
	assert.Equal(t, 1, guests)
	assert.Equal(t, 1, bookings)
	assert.Equal(t, 1, checkouts)

	events := f.published()
	require.Len(t, events, 2)
	assert.Equal(t, event.TopicGuestCheckedOut, events[1].Topic)

	payload, ok := events[1].Data.(checkoutDto.CheckoutResponse)
	require.True(t, ok)
	assert.Equal(t, out.Checkout, payload)
}

func TestFrontdesk_CheckOutUpdatesFirstMatchOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, dto.CheckInRequest{BookingNumber: "BK1", GuestName: "First", RoomNumber: "101"})
	require.NoError(t, err)

	_, err = f.svc.CheckIn(ctx, dto.CheckInRequest{BookingNumber: "BK1", GuestName: "Second", RoomNumber: "102"})
	require.NoError(t, err)

	out, err := f.svc.CheckOut(ctx, dto.CheckOutRequest{BookingNumber: "BK1"})
	require.NoError(t, err)
	assert.Equal(t, "First", out.Checkout.GuestName)

	stillIn, err := f.guests.Count(ctx, gDto.Where(guestModel.FieldStatus, constant.GuestStatusCheckedIn))
	require.NoError(t, err)
	assert.Equal(t, 1, stillIn)
}

func TestFrontdesk_CheckOutUnknownBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ot := mocks.NewOtel()
	cfg := &config.Config{}
	rooms := roomRepo.New(nil, ot)
	publisher := eventMocks.NewMockPublisher(ctrl)

	guests := guestRepo.New(nil, ot)
	bookings := bookingRepo.New(nil, ot)
	checkouts := checkoutRepo.New(nil, ot)

	svc := service.New(guests, bookings, checkouts, roomService.New(rooms, cfg, cache.New(nil, ot), ot), publisher, cfg, ot)

	_, err := svc.CheckOut(context.Background(), dto.CheckOutRequest{BookingNumber: "BKMISSING"})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, constant.ResponseErrorGuestNotFound, err.Error())

	count, err := checkouts.Count(context.Background(), gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFrontdesk_AssignRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.AssignRoom(ctx, dto.AssignRoomRequest{HotelID: "hotel1", GuestName: "Jane Doe"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "hotel1", res.AssignedRoom.HotelID)
	assert.NotEqual(t, "202", res.AssignedRoom.RoomNumber)
	assert.Equal(t, res.AssignedRoom.RoomNumber, res.Guest.RoomNumber)

	available, err := f.rooms.Count(ctx, gDto.Where(roomModel.FieldHotelID, "hotel1", roomModel.FieldAvailable, true))
	require.NoError(t, err)
	assert.Equal(t, 2, available)
}

func TestFrontdesk_AssignRoomExplicitLeavesRoomsUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.AssignRoom(ctx, dto.AssignRoomRequest{HotelID: "hotel1", GuestName: "Jane Doe", RoomNumber: "202", RoomType: "Standard"})
	require.NoError(t, err)

	assert.Equal(t, "202", res.AssignedRoom.RoomNumber)
	assert.Equal(t, "Standard", res.AssignedRoom.RoomType)

	available, err := f.rooms.Count(ctx, gDto.Where(roomModel.FieldHotelID, "hotel1", roomModel.FieldAvailable, true))
	require.NoError(t, err)
	assert.Equal(t, 3, available)
}

func TestFrontdesk_ConcurrentAssignmentsNeverShareRooms(t *testing.T) {
	f := newFixture(t)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		assigned []string
		rejected int
	)

	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			res, err := f.svc.AssignRoom(context.Background(), dto.AssignRoomRequest{HotelID: "hotel1", GuestName: "Guest"})

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				rejected++

				return
			}

			assigned = append(assigned, res.AssignedRoom.RoomNumber)
		}()
	}

	wg.Wait()

	assert.ElementsMatch(t, []string{"101", "102", "201"}, assigned)
	assert.Equal(t, 7, rejected)
}
