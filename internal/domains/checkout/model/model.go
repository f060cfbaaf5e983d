package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "checkouts"
	EntityName = "checkout"

	FieldID            = "id"
	FieldBookingNumber = "booking_number"
	FieldCheckOutTime  = "check_out_time"
)

type Checkout struct {
	ID            string    `db:"id"`
	BookingNumber string    `db:"booking_number"`
	GuestName     string    `db:"guest_name"`
	RoomNumber    string    `db:"room_number"`
	CheckInTime   time.Time `db:"check_in_time"`
	CheckOutTime  time.Time `db:"check_out_time"`
	Feedback      string    `db:"feedback"`
	model.Metadata
}
