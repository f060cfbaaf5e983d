package dto

import (
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	checkoutModel "frontdesk/internal/domains/checkout/model"
	checkoutDto "frontdesk/internal/domains/checkout/model/dto"
	guestModel "frontdesk/internal/domains/guest/model"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gModel "frontdesk/shared/model"
)

// CheckInRequest registers a guest. A hotel without a room number triggers
// automatic assignment.
type CheckInRequest struct {
	BookingNumber string `json:"bookingNumber"`
	GuestName     string `json:"guestName"     validate:"required,notblank,max=200"`
	Email         string `json:"email"         validate:"omitempty,email"`
	Phone         string `json:"phone"         validate:"omitempty,max=50"`
	RoomNumber    string `json:"roomNumber"    validate:"omitempty,max=20"`
	HotelID       string `json:"hotelId"`
}

func (c CheckInRequest) NeedsAssignment() bool {
	return c.RoomNumber == "" && c.HotelID != ""
}

func (c CheckInRequest) Stay() Stay {
	return Stay{
		BookingNumber: c.BookingNumber,
		GuestName:     c.GuestName,
		Email:         c.Email,
		Phone:         c.Phone,
		HotelID:       c.HotelID,
		RoomNumber:    c.RoomNumber,
	}
}

type CheckInResponse struct {
	Success bool                   `json:"success"`
	Guest   guestDto.GuestResponse `json:"guest"`
}

type CheckOutRequest struct {
	BookingNumber string `json:"bookingNumber" validate:"required,notblank"`
	Feedback      string `json:"feedback"      validate:"omitempty,max=2000"`
}

type CheckOutResponse struct {
	Success  bool                         `json:"success"`
	Checkout checkoutDto.CheckoutResponse `json:"checkout"`
}

type AssignRoomRequest struct {
	HotelID    string `json:"hotelId"    validate:"required,notblank"`
	GuestName  string `json:"guestName"  validate:"required,notblank,max=200"`
	Email      string `json:"email"      validate:"omitempty,email"`
	Phone      string `json:"phone"      validate:"omitempty,max=50"`
	RoomNumber string `json:"roomNumber" validate:"omitempty,max=20"`
	RoomType   string `json:"roomType"   validate:"omitempty,max=50"`
}

func (a AssignRoomRequest) Stay() Stay {
	return Stay{
		GuestName: a.GuestName,
		Email:     a.Email,
		Phone:     a.Phone,
		HotelID:   a.HotelID,
	}
}

type AssignRoomResponse struct {
	Success      bool                   `json:"success"`
	Guest        guestDto.GuestResponse `json:"guest"`
	AssignedRoom roomDto.AssignedRoom   `json:"assignedRoom"`
}

// Stay is the guest and booking pair written by a check-in.
type Stay struct {
	BookingNumber string
	GuestName     string
	Email         string
	Phone         string
	HotelID       string
	RoomNumber    string
	RoomType      string
}

// WithRoom places the stay in room.
func (s Stay) WithRoom(room roomModel.Room) Stay {
	s.HotelID = room.HotelID
	s.RoomNumber = room.Number
	s.RoomType = room.Type

	return s
}

func (s Stay) ToGuestModel(now time.Time, actor string) guestModel.Guest {
	return guestModel.Guest{
		ID:            shared.NewID(),
		BookingNumber: s.BookingNumber,
		Name:          s.GuestName,
		Email:         s.Email,
		Phone:         s.Phone,
		HotelID:       s.HotelID,
		RoomNumber:    s.RoomNumber,
		Status:        constant.GuestStatusCheckedIn,
		CheckInTime:   now,
		Metadata:      gModel.NewMetadata(now, actor),
	}
}

func (s Stay) ToBookingModel(now time.Time, actor string) bookingModel.Booking {
	return bookingModel.Booking{
		ID:            shared.NewID(),
		BookingNumber: s.BookingNumber,
		GuestName:     s.GuestName,
		Email:         s.Email,
		Phone:         s.Phone,
		HotelID:       s.HotelID,
		RoomNumber:    s.RoomNumber,
		RoomType:      s.RoomType,
		CheckInTime:   now,
		Status:        constant.BookingStatusActive,
		Metadata:      gModel.NewMetadata(now, actor),
	}
}

// ToCheckOutModel is the in-place change that marks a guest as departed.
func (c CheckOutRequest) ToCheckOutModel(now time.Time) guestModel.CheckOut {
	return guestModel.CheckOut{
		Status:       constant.GuestStatusCheckedOut,
		CheckOutTime: &now,
		Feedback:     c.Feedback,
	}
}

// ToCheckoutModel derives the checkout record from the departed guest.
func (c CheckOutRequest) ToCheckoutModel(guest guestModel.Guest, now time.Time, actor string) checkoutModel.Checkout {
	return checkoutModel.Checkout{
		ID:            shared.NewID(),
		BookingNumber: guest.BookingNumber,
		GuestName:     guest.Name,
		RoomNumber:    guest.RoomNumber,
		CheckInTime:   guest.CheckInTime,
		CheckOutTime:  now,
		Feedback:      c.Feedback,
		Metadata:      gModel.NewMetadata(now, actor),
	}
}
