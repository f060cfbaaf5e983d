package dto

import "frontdesk/internal/domains/room/model"

// AssignRequest selects a room in a hotel. Number and Type together pin the
// room verbatim; otherwise an available room is drawn at random.
type AssignRequest struct {
	HotelID string
	Number  string
	Type    string
}

// IsExplicit reports whether the caller pinned the room.
func (a AssignRequest) IsExplicit() bool {
	return a.Number != "" && a.Type != ""
}

type RoomResponse struct {
	ID         string  `json:"id"`
	HotelID    string  `json:"hotelId"`
	RoomNumber string  `json:"roomNumber"`
	RoomType   string  `json:"roomType"`
	Price      float64 `json:"price"`
	Available  bool    `json:"available"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.RoomNumber = model.Number
	r.RoomType = model.Type
	r.Price = model.Price
	r.Available = model.Available
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// AssignedRoom is the room handed to a guest by an assignment.
type AssignedRoom struct {
	HotelID    string `json:"hotelId"`
	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType"`
}

func (a *AssignedRoom) FromModel(model model.Room) {
	a.HotelID = model.HotelID
	a.RoomNumber = model.Number
	a.RoomType = model.Type
}
