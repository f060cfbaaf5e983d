//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/helper"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/shared/event"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"
	"frontdesk/transport/websocket"

	"github.com/google/wire"

	adminService "frontdesk/internal/domains/admin/service"
	authService "frontdesk/internal/domains/auth/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	checkoutRepository "frontdesk/internal/domains/checkout/repository"
	frontdeskService "frontdesk/internal/domains/frontdesk/service"
	guestRepository "frontdesk/internal/domains/guest/repository"
	hotelRepository "frontdesk/internal/domains/hotel/repository"
	hotelService "frontdesk/internal/domains/hotel/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	userRepository "frontdesk/internal/domains/user/repository"
	adminHandler "frontdesk/internal/handlers/admin"
	authHandler "frontdesk/internal/handlers/auth"
	frontdeskHandler "frontdesk/internal/handlers/frontdesk"
	hotelHandler "frontdesk/internal/handlers/hotel"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.ProvideRelay,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
	event.NewBus,
	wire.Bind(new(event.Publisher), new(*event.Bus)),
	wire.Bind(new(event.Subscriber), new(*event.Bus)),
	websocket.NewHub,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var frontdeskDomain = wire.NewSet(
	guestRepository.New,
	bookingRepository.New,
	checkoutRepository.New,
	frontdeskService.New,
)

var adminDomain = wire.NewSet(
	adminService.New,
)

var domains = wire.NewSet(
	authDomain,
	hotelDomain,
	roomDomain,
	frontdeskDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	hotelHandler.New,
	frontdeskHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		helper.NewSeeder,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
