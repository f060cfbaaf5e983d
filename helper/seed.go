package helper

import (
	"context"
	"fmt"

	"frontdesk/config"
	hotelModel "frontdesk/internal/domains/hotel/model"
	hotelRepo "frontdesk/internal/domains/hotel/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	userModel "frontdesk/internal/domains/user/model"
	userRepo "frontdesk/internal/domains/user/repository"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/password"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type seedUser struct {
	id       string
	username string
	password string
	role     string
	name     string
}

var seedUsers = []seedUser{
	{id: "user1", username: "admin", password: "admin123", role: constant.RoleAdmin, name: "Administrator"},
	{id: "user2", username: "manager", password: "manager123", role: constant.RoleManager, name: "Front Desk Manager"},
}

var seedHotels = []hotelModel.Hotel{
	{ID: "hotel1", Name: "Grand Plaza Hotel", Location: "New York", Stars: 5},
	{ID: "hotel2", Name: "Ocean View Resort", Location: "Miami", Stars: 4},
}

var seedRooms = []roomModel.Room{
	{ID: "room1", HotelID: "hotel1", Number: "101", Type: "standard", Price: 150, Available: true},
	{ID: "room2", HotelID: "hotel1", Number: "102", Type: "deluxe", Price: 220, Available: true},
	{ID: "room3", HotelID: "hotel1", Number: "201", Type: "suite", Price: 380, Available: true},
	{ID: "room4", HotelID: "hotel1", Number: "202", Type: "standard", Price: 150, Available: false},
	{ID: "room5", HotelID: "hotel2", Number: "101", Type: "standard", Price: 130, Available: true},
	{ID: "room6", HotelID: "hotel2", Number: "102", Type: "deluxe", Price: 200, Available: true},
}

// Seeder loads the static users, hotels and rooms the front desk starts with.
type Seeder struct {
	users  userRepo.User
	hotels hotelRepo.Hotel
	rooms  roomRepo.Room
	cfg    *config.Config
}

func NewSeeder(users userRepo.User, hotels hotelRepo.Hotel, rooms roomRepo.Room, cfg *config.Config) *Seeder {
	return &Seeder{
		users:  users,
		hotels: hotels,
		rooms:  rooms,
		cfg:    cfg,
	}
}

// Seed fills every empty collection. Collections that already hold records
// are left alone.
func (s *Seeder) Seed(ctx context.Context) error {
	if !s.cfg.App.Seed.Enable {
		log.Info().Msg("Seeding disabled")

		return nil
	}

	now := timezone.Now()
	meta := gModel.NewMetadata(now, constant.ContextSystem)

	if err := seedCollection[userModel.User](ctx, userModel.EntityName, s.users, func() ([]userModel.User, error) {
		users := make([]userModel.User, 0, len(seedUsers))

		for _, user := range seedUsers {
			hash, err := password.Hash(user.password)
			if err != nil {
				return nil, fmt.Errorf("failed to hash password of %s: %w", user.username, err)
			}

			users = append(users, userModel.User{
				ID:       user.id,
				Username: user.username,
				Password: hash,
				Role:     user.role,
				Name:     user.name,
				Metadata: meta,
			})
		}

		return users, nil
	}); err != nil {
		return err
	}

	if err := seedCollection[hotelModel.Hotel](ctx, hotelModel.EntityName, s.hotels, func() ([]hotelModel.Hotel, error) {
		hotels := make([]hotelModel.Hotel, len(seedHotels))
		for i, hotel := range seedHotels {
			hotel.Metadata = meta
			hotels[i] = hotel
		}

		return hotels, nil
	}); err != nil {
		return err
	}

	return seedCollection[roomModel.Room](ctx, roomModel.EntityName, s.rooms, func() ([]roomModel.Room, error) {
		rooms := make([]roomModel.Room, len(seedRooms))
		for i, room := range seedRooms {
			room.Metadata = meta
			rooms[i] = room
		}

		return rooms, nil
	})
}

type collection[T any] interface {
	Insert(ctx context.Context, model T) error
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

func seedCollection[T any](ctx context.Context, name string, store collection[T], build func() ([]T, error)) error {
	count, err := store.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return fmt.Errorf("failed to count %s records: %w", name, err)
	}

	if count > 0 {
		log.Info().Str("collection", name).Int("records", count).Msg("Collection already seeded")

		return nil
	}

	records, err := build()
	if err != nil {
		return err
	}

	for _, record := range records {
		if err := store.Insert(ctx, record); err != nil {
			return fmt.Errorf("failed to seed %s: %w", name, err)
		}
	}

	log.Info().Str("collection", name).Int("records", len(records)).Msg("Collection seeded")

	return nil
}
