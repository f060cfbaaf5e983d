package dto

import "frontdesk/internal/domains/hotel/model"

type HotelResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Stars    int    `json:"stars"`
}

func (h *HotelResponse) FromModel(model model.Hotel) {
	h.ID = model.ID
	h.Name = model.Name
	h.Location = model.Location
	h.Stars = model.Stars
}

func FromModels(models []model.Hotel) []HotelResponse {
	res := make([]HotelResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
