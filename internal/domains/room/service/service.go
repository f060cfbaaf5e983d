package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheAvailableRooms = "room:available"
)

type Room interface {
	Assign(ctx context.Context, req dto.AssignRequest) (model.Room, error)
	ListAvailable(ctx context.Context, hotelID string) ([]dto.RoomResponse, error)
	ListAll(ctx context.Context, params gDto.QueryParams) ([]dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.Cache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Assign resolves the room for a stay. A pinned room is returned as given with
// no store lookup. Otherwise one available room of the hotel is drawn uniformly
// at random and marked unavailable. Callers serialise assignments.
func (s *serviceImpl) Assign(ctx context.Context, req dto.AssignRequest) (res model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Assign")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"hotel.id": req.HotelID, "room.explicit": req.IsExplicit()})

	if req.IsExplicit() {
		return model.Room{
			HotelID: req.HotelID,
			Number:  req.Number,
			Type:    req.Type,
		}, nil
	}

	rooms, err := s.repo.GetAll(ctx, gDto.QueryParams{}, availableFilter(req.HotelID))
	if err != nil {
		log.Error().Err(err).Str("hotelId", req.HotelID).Msg("failed to list available rooms")

		return res, fmt.Errorf("failed to list available rooms: %w", err)
	}

	if len(rooms) == 0 {
		return res, failure.BadRequestFromString(constant.ResponseErrorNoRoomsAvailable) // nolint:wrapcheck
	}

	res = rooms[rand.IntN(len(rooms))] //nolint:gosec

	update := map[string]any{
		model.FieldAvailable:     false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.ActorFromContext(ctx),
	}

	err = s.repo.Update(ctx, update, gDto.Where(model.FieldHotelID, res.HotelID, model.FieldNumber, res.Number))
	if err != nil {
		log.Error().Err(err).Str("hotelId", res.HotelID).Str("roomNumber", res.Number).Msg("failed to mark room unavailable")

		return model.Room{}, fmt.Errorf("failed to mark room unavailable: %w", err)
	}

	res.Available = false

	s.invalidate(ctx, res.HotelID)

	scope.AddEvent("room assigned " + res.Number)

	return res, nil
}

func (s *serviceImpl) ListAvailable(ctx context.Context, hotelID string) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.ListAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := cache.BuildCacheKey(cacheAvailableRooms, hotelID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for available rooms")

		return res, nil
	}

	rooms, err := s.repo.GetAll(ctx, gDto.QueryParams{}, availableFilter(hotelID))
	if err != nil {
		log.Error().Err(err).Str("hotelId", hotelID).Msg("failed to get available rooms")

		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}

	res = dto.FromModels(rooms)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save available rooms to cache")
	}

	return res, nil
}

func (s *serviceImpl) ListAll(ctx context.Context, params gDto.QueryParams) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return dto.FromModels(rooms), nil
}

func (s *serviceImpl) invalidate(ctx context.Context, hotelID string) {
	cacheKey := cache.BuildCacheKey(cacheAvailableRooms, hotelID)

	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to invalidate available rooms cache")
	}
}

func availableFilter(hotelID string) gDto.FilterGroup {
	return gDto.Where(model.FieldHotelID, hotelID, model.FieldAvailable, true)
}
