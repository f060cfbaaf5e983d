package dto

import (
	"time"

	"frontdesk/internal/domains/booking/model"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	BookingNumber string    `json:"bookingNumber"`
	GuestName     string    `json:"guestName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	HotelID       string    `json:"hotelId"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	CheckInTime   time.Time `json:"checkInTime"`
	Status        string    `json:"status"`
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.BookingNumber = model.BookingNumber
	b.GuestName = model.GuestName
	b.Email = model.Email
	b.Phone = model.Phone
	b.HotelID = model.HotelID
	b.RoomNumber = model.RoomNumber
	b.RoomType = model.RoomType
	b.CheckInTime = model.CheckInTime
	b.Status = model.Status
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
