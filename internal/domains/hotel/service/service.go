package service

import (
	"context"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/hotel/model/dto"
	"frontdesk/internal/domains/hotel/repository"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheHotelList = "hotel:list"
)

type Hotel interface {
	List(ctx context.Context) ([]dto.HotelResponse, error)
}

type serviceImpl struct {
	repo  repository.Hotel
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, cache cache.Cache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// List returns the seeded hotel catalogue, cached for the configured TTL.
func (s *serviceImpl) List(ctx context.Context) (res []dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheHotelList, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheHotelList).Msg("cache hit for hotel list")

		return res, nil
	}

	if !cache.IsMiss(err) {
		log.Warn().Err(err).Msg("failed to read hotel list from cache")
	}

	hotels, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return nil, fmt.Errorf("failed to get hotels: %w", err)
	}

	res = dto.FromModels(hotels)

	if err := s.cache.Save(ctx, cacheHotelList, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save hotel list to cache")
	}

	return res, nil
}
