package dto

import (
	"time"

	"frontdesk/internal/domains/guest/model"
)

type GuestResponse struct {
	ID            string     `json:"id"`
	BookingNumber string     `json:"bookingNumber"`
	GuestName     string     `json:"guestName"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	HotelID       string     `json:"hotelId"`
	RoomNumber    string     `json:"roomNumber"`
	Status        string     `json:"status"`
	CheckInTime   time.Time  `json:"checkInTime"`
	CheckOutTime  *time.Time `json:"checkOutTime"`
	Feedback      string     `json:"feedback"`
}

func (g *GuestResponse) FromModel(model model.Guest) {
	g.ID = model.ID
	g.BookingNumber = model.BookingNumber
	g.GuestName = model.Name
	g.Email = model.Email
	g.Phone = model.Phone
	g.HotelID = model.HotelID
	g.RoomNumber = model.RoomNumber
	g.Status = model.Status
	g.CheckInTime = model.CheckInTime
	g.CheckOutTime = model.CheckOutTime
	g.Feedback = model.Feedback
}

func FromModels(models []model.Guest) []GuestResponse {
	res := make([]GuestResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
