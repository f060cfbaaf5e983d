package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID            = "id"
	FieldBookingNumber = "booking_number"
	FieldName          = "guest_name"
	FieldHotelID       = "hotel_id"
	FieldRoomNumber    = "room_number"
	FieldStatus        = "status"
	FieldCheckInTime   = "check_in_time"
	FieldCheckOutTime  = "check_out_time"
	FieldFeedback      = "feedback"
)

type Guest struct {
	ID            string     `db:"id"`
	BookingNumber string     `db:"booking_number"`
	Name          string     `db:"guest_name"`
	Email         string     `db:"email"`
	Phone         string     `db:"phone"`
	HotelID       string     `db:"hotel_id"`
	RoomNumber    string     `db:"room_number"`
	Status        string     `db:"status"`
	CheckInTime   time.Time  `db:"check_in_time"`
	CheckOutTime  *time.Time `db:"check_out_time"`
	Feedback      string     `db:"feedback"`
	model.Metadata
}

// CheckOut is the in-place change applied to a guest leaving the hotel.
type CheckOut struct {
	Status       string     `db:"status"`
	CheckOutTime *time.Time `db:"check_out_time"`
	Feedback     string     `db:"feedback"`
}
