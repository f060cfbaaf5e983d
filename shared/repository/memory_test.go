package repository_test

import (
	"context"
	"testing"
	"time"

	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/dto"
	"frontdesk/shared/model"
	"frontdesk/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID        string     `db:"id"`
	HotelID   string     `db:"hotel_id"`
	Number    string     `db:"room_number"`
	Price     float64    `db:"price"`
	Available bool       `db:"available"`
	ClosedAt  *time.Time `db:"closed_at"`
	Note      string
	model.Metadata
}

func seeded(t *testing.T) *repository.Memory[record] {
	t.Helper()

	store := repository.NewMemory[record]("record", mocks.NewOtel())
	ctx := context.Background()

	rows := []record{
		{ID: "r1", HotelID: "hotel1", Number: "101", Price: 100, Available: true},
		{ID: "r2", HotelID: "hotel1", Number: "102", Price: 150, Available: true},
		{ID: "r3", HotelID: "hotel1", Number: "201", Price: 300, Available: true},
		{ID: "r4", HotelID: "hotel1", Number: "202", Price: 100, Available: false},
		{ID: "r5", HotelID: "hotel2", Number: "101", Price: 120, Available: true},
	}

	for _, row := range rows {
		require.NoError(t, store.Insert(ctx, row))
	}

	return store
}

func ids(rows []record) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ID)
	}

	return out
}

func TestMemory_GetAllKeepsInsertionOrder(t *testing.T) {
	store := seeded(t)

	rows, err := store.GetAll(context.Background(), dto.QueryParams{}, dto.FilterGroup{})
	require.NoError(t, err)

	assert.Equal(t, []string{"r1", "r2", "r3", "r4", "r5"}, ids(rows))
}

func TestMemory_Filters(t *testing.T) {
	store := seeded(t)

	tests := []struct {
		name   string
		filter dto.FilterGroup
		want   []string
	}{
		{
			name:   "equality group",
			filter: dto.Where("hotel_id", "hotel1", "available", true),
			want:   []string{"r1", "r2", "r3"},
		},
		{
			name: "not equal",
			filter: dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: []any{
				dto.Filter{Field: "hotel_id", Value: "hotel1", Operator: dto.FilterOperatorNotEq},
			}},
			want: []string{"r5"},
		},
		{
			name: "range on numbers of another kind",
			filter: dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: []any{
				dto.Filter{Field: "price", Value: 120, Operator: dto.FilterOperatorGreaterEq},
				dto.Filter{Field: "price", Value: 200, Operator: dto.FilterOperatorLessEq},
			}},
			want: []string{"r2", "r5"},
		},
		{
			name: "in",
			filter: dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: []any{
				dto.Filter{Field: "room_number", Value: []string{"101", "202"}, Operator: dto.FilterOperatorIn},
			}},
			want: []string{"r1", "r4", "r5"},
		},
		{
			name: "like is case insensitive",
			filter: dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: []any{
				dto.Filter{Field: "hotel_id", Value: "HOTEL2", Operator: dto.FilterOperatorLike},
			}},
			want: []string{"r5"},
		},
		{
			name: "nested or group",
			filter: dto.FilterGroup{Operator: dto.FilterGroupOperatorOr, Filters: []any{
				dto.Where("hotel_id", "hotel2"),
				dto.Where("available", false),
			}},
			want: []string{"r4", "r5"},
		},
		{
			name: "null pointer",
			filter: dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: []any{
				dto.Filter{Field: "closed_at", Operator: dto.FilterIsNull},
			}},
			want: []string{"r1", "r2", "r3", "r4", "r5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := store.GetAll(context.Background(), dto.QueryParams{}, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(rows))

			count, err := store.Count(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), count)
		})
	}
}

func TestMemory_UnknownColumn(t *testing.T) {
	store := seeded(t)

	_, err := store.GetAll(context.Background(), dto.QueryParams{}, dto.Where("Note", "x"))
	assert.Error(t, err)
}

func TestMemory_GetReturnsFirstMatchOrZero(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	row, err := store.Get(ctx, dto.Where("room_number", "101"))
	require.NoError(t, err)
	assert.Equal(t, "r1", row.ID)

	row, err = store.Get(ctx, dto.Where("room_number", "999"))
	require.NoError(t, err)
	assert.Empty(t, row.ID)

	exist, err := store.Exist(ctx, dto.Where("room_number", "202"))
	require.NoError(t, err)
	assert.True(t, exist)
}

func TestMemory_Update(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()
	closedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	err := store.Update(ctx, map[string]any{
		"available":   false,
		"closed_at":   closedAt,
		"modified_by": "admin",
	}, dto.Where("hotel_id", "hotel1", "room_number", "102"))
	require.NoError(t, err)

	row, err := store.Get(ctx, dto.Where("id", "r2"))
	require.NoError(t, err)

	assert.False(t, row.Available)
	require.NotNil(t, row.ClosedAt)
	assert.True(t, closedAt.Equal(*row.ClosedAt))
	assert.Equal(t, "admin", row.ModifiedBy)

	untouched, err := store.Get(ctx, dto.Where("id", "r1"))
	require.NoError(t, err)
	assert.True(t, untouched.Available)
}

func TestMemory_UpdateRequiresFilter(t *testing.T) {
	store := seeded(t)

	assert.Error(t, store.Update(context.Background(), map[string]any{"available": false}, dto.FilterGroup{}))
}

func TestMemory_UpdateRejectsWrongType(t *testing.T) {
	store := seeded(t)

	err := store.Update(context.Background(), map[string]any{"available": "no"}, dto.Where("id", "r1"))
	assert.Error(t, err)
}

func TestMemory_SortAndPaginate(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	rows, err := store.GetAll(ctx, dto.QueryParams{SortDir: dto.SortDirDesc, Limit: 2}, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, []string{"r5", "r4"}, ids(rows))

	rows, err = store.GetAll(ctx, dto.QueryParams{SortBy: "price", SortDir: dto.SortDirAsc}, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r4", "r5", "r2", "r3"}, ids(rows))

	rows, err = store.GetAll(ctx, dto.QueryParams{Page: 3, Limit: 2}, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, []string{"r5"}, ids(rows))

	rows, err = store.GetAll(ctx, dto.QueryParams{Page: 4, Limit: 2}, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	rows, err := store.GetAll(ctx, dto.QueryParams{}, dto.FilterGroup{})
	require.NoError(t, err)

	rows[0].Available = false

	row, err := store.Get(ctx, dto.Where("id", "r1"))
	require.NoError(t, err)
	assert.True(t, row.Available)
}

func TestNew_SelectsMemoryWithoutDatabase(t *testing.T) {
	store := repository.New[record]("record", "records", "id", nil, mocks.NewOtel())

	_, ok := store.(*repository.Memory[record])
	assert.True(t, ok)
}
