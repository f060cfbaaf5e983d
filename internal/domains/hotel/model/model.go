package model

import "frontdesk/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID       = "id"
	FieldName     = "name"
	FieldLocation = "location"
	FieldStars    = "stars"
)

type Hotel struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Stars    int    `db:"stars"`
	model.Metadata
}
