package dto

import (
	"time"

	"frontdesk/internal/domains/checkout/model"
)

type CheckoutResponse struct {
	ID            string    `json:"id"`
	BookingNumber string    `json:"bookingNumber"`
	GuestName     string    `json:"guestName"`
	RoomNumber    string    `json:"roomNumber"`
	CheckInTime   time.Time `json:"checkInTime"`
	CheckOutTime  time.Time `json:"checkOutTime"`
	Feedback      string    `json:"feedback"`
}

func (c *CheckoutResponse) FromModel(model model.Checkout) {
	c.ID = model.ID
	c.BookingNumber = model.BookingNumber
	c.GuestName = model.GuestName
	c.RoomNumber = model.RoomNumber
	c.CheckInTime = model.CheckInTime
	c.CheckOutTime = model.CheckOutTime
	c.Feedback = model.Feedback
}

func FromModels(models []model.Checkout) []CheckoutResponse {
	res := make([]CheckoutResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
