package di

import (
	"frontdesk/helper"
	"frontdesk/transport/http"
)

// App is everything the server entrypoint needs.
type App struct {
	HTTP   *http.HTTP
	Seeder *helper.Seeder
}
