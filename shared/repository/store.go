package repository

import (
	"context"
	"errors"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/dto"
)

var (
	errRequiredFilter    = errors.New("required filter")
	errUnsupportedFilter = errors.New("unsupported filter")
	ErrUnknownColumn     = errors.New("unknown column")
)

// Store is the record collection contract shared by the SQL and in-memory backends.
// Get returns the zero value when nothing matches. Lists follow insertion order
// unless params ask for another sort.
type Store[T any] interface {
	Insert(ctx context.Context, model T) error
	Get(ctx context.Context, filter dto.FilterGroup) (T, error)
	GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error)
	Count(ctx context.Context, filter dto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter dto.FilterGroup) (bool, error)
	Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error
}

// New returns the SQL backend when a database connection is present and the
// in-memory backend otherwise.
func New[T any](entityName, tableName, primaryColumn string, db *postgres.Connection, otl otel.Otel) Store[T] {
	if db == nil {
		return NewMemory[T](entityName, otl)
	}

	repo := NewRepository[T](entityName, tableName, primaryColumn, db, otl)

	return &repo
}
