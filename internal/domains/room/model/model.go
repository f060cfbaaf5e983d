package model

import "frontdesk/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID        = "id"
	FieldHotelID   = "hotel_id"
	FieldNumber    = "room_number"
	FieldType      = "room_type"
	FieldPrice     = "price"
	FieldAvailable = "available"
)

type Room struct {
	ID        string  `db:"id"`
	HotelID   string  `db:"hotel_id"`
	Number    string  `db:"room_number"`
	Type      string  `db:"room_type"`
	Price     float64 `db:"price"`
	Available bool    `db:"available"`
	model.Metadata
}
