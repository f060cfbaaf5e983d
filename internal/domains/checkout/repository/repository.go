package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/checkout/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Checkout interface {
	Insert(ctx context.Context, model model.Checkout) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Checkout, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Checkout, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Store[model.Checkout]
}

func New(db *postgres.Connection, otel otel.Otel) Checkout {
	return &repositoryImpl{
		Store: gRepo.New[model.Checkout](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
