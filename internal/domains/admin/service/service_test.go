package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/admin/service"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	checkoutMocks "frontdesk/internal/domains/checkout/mocks"
	checkoutModel "frontdesk/internal/domains/checkout/model"
	checkoutRepo "frontdesk/internal/domains/checkout/repository"
	guestModel "frontdesk/internal/domains/guest/model"
	guestRepo "frontdesk/internal/domains/guest/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stores struct {
	guests    guestRepo.Guest
	bookings  bookingRepo.Booking
	checkouts checkoutRepo.Checkout
	rooms     roomRepo.Room
}

func newStores() stores {
	ot := mocks.NewOtel()

	return stores{
		guests:    guestRepo.New(nil, ot),
		bookings:  bookingRepo.New(nil, ot),
		checkouts: checkoutRepo.New(nil, ot),
		rooms:     roomRepo.New(nil, ot),
	}
}

func (s stores) service() service.Admin {
	ot := mocks.NewOtel()
	cfg := &config.Config{}

	return service.New(s.guests, s.bookings, s.checkouts, roomService.New(s.rooms, cfg, cache.New(nil, ot), ot), cfg, ot)
}

func TestAdmin_Dashboard(t *testing.T) {
	st := newStores()
	ctx := context.Background()

	now := timezone.Now()
	start, _ := timezone.DayBounds(now)
	yesterday := start.Add(-time.Hour)

	statuses := []string{constant.GuestStatusCheckedIn, constant.GuestStatusCheckedOut, constant.GuestStatusCheckedIn}
	for idx, status := range statuses {
		require.NoError(t, st.guests.Insert(ctx, guestModel.Guest{ID: fmt.Sprintf("guest%d", idx), Status: status}))
	}

	for idx := range 7 {
		checkedOut := now
		if idx < 2 {
			checkedOut = yesterday
		}

		require.NoError(t, st.checkouts.Insert(ctx, checkoutModel.Checkout{
			ID:            fmt.Sprintf("checkout%d", idx),
			BookingNumber: fmt.Sprintf("BK%d", idx),
			CheckOutTime:  checkedOut,
		}))
	}

	res, err := st.service().Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, res.CheckedInGuests)
	assert.Equal(t, 7, res.TotalCheckouts)
	assert.Equal(t, 5, res.TodayCheckouts)

	recent := make([]string, 0, len(res.RecentCheckouts))
	for _, checkout := range res.RecentCheckouts {
		recent = append(recent, checkout.ID)
	}

	assert.Equal(t, []string{"checkout2", "checkout3", "checkout4", "checkout5", "checkout6"}, recent)
}

func TestAdmin_DashboardRecentKeepsAppendOrder(t *testing.T) {
	st := newStores()
	ctx := context.Background()

	now := timezone.Now()

	require.NoError(t, st.checkouts.Insert(ctx, checkoutModel.Checkout{ID: "late", CheckOutTime: now}))
	require.NoError(t, st.checkouts.Insert(ctx, checkoutModel.Checkout{ID: "early", CheckOutTime: now.Add(-2 * time.Hour)}))

	res, err := st.service().Dashboard(ctx)
	require.NoError(t, err)

	require.Len(t, res.RecentCheckouts, 2)
	assert.Equal(t, "late", res.RecentCheckouts[0].ID)
	assert.Equal(t, "early", res.RecentCheckouts[1].ID)
}

func TestAdmin_DashboardEmpty(t *testing.T) {
	res, err := newStores().service().Dashboard(context.Background())
	require.NoError(t, err)

	assert.Zero(t, res.CheckedInGuests)
	assert.Zero(t, res.TotalCheckouts)
	assert.Zero(t, res.TodayCheckouts)
	assert.NotNil(t, res.RecentCheckouts)
	assert.Empty(t, res.RecentCheckouts)
}

func TestAdmin_ListsFollowInsertionOrder(t *testing.T) {
	st := newStores()
	ctx := context.Background()

	for _, id := range []string{"b", "a", "c"} {
		require.NoError(t, st.guests.Insert(ctx, guestModel.Guest{ID: id}))
		require.NoError(t, st.rooms.Insert(ctx, roomModel.Room{ID: id}))
	}

	svc := st.service()

	guests, err := svc.Guests(ctx, gDto.QueryParams{})
	require.NoError(t, err)
	require.Len(t, guests, 3)
	assert.Equal(t, "b", guests[0].ID)
	assert.Equal(t, "c", guests[2].ID)

	rooms, err := svc.Rooms(ctx, gDto.QueryParams{})
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "a", rooms[1].ID)

	bookings, err := svc.Bookings(ctx, gDto.QueryParams{})
	require.NoError(t, err)
	assert.Empty(t, bookings)

	page, err := svc.Guests(ctx, gDto.QueryParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].ID)
}

func TestAdmin_DashboardStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := newStores()
	checkouts := checkoutMocks.NewMockCheckout(ctrl)
	checkouts.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("connection reset"))

	ot := mocks.NewOtel()
	cfg := &config.Config{}
	svc := service.New(st.guests, st.bookings, checkouts, roomService.New(st.rooms, cfg, cache.New(nil, ot), ot), cfg, ot)

	_, err := svc.Dashboard(context.Background())
	require.Error(t, err)
	assert.True(t, failure.IsInternal(err))
}

func TestAdmin_UnknownSortColumn(t *testing.T) {
	svc := newStores().service()

	_, err := svc.Guests(context.Background(), gDto.QueryParams{SortBy: "nope"})
	require.Error(t, err)
	assert.False(t, failure.IsInternal(err))

	_, err = svc.Rooms(context.Background(), gDto.QueryParams{SortBy: "nope"})
	require.Error(t, err)
	assert.False(t, failure.IsInternal(err))
}
