package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldBookingNumber = "booking_number"
	FieldStatus        = "status"
	FieldCheckInTime   = "check_in_time"
)

type Booking struct {
	ID            string    `db:"id"`
	BookingNumber string    `db:"booking_number"`
	GuestName     string    `db:"guest_name"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	HotelID       string    `db:"hotel_id"`
	RoomNumber    string    `db:"room_number"`
	RoomType      string    `db:"room_type"`
	CheckInTime   time.Time `db:"check_in_time"`
	Status        string    `db:"status"`
	model.Metadata
}
