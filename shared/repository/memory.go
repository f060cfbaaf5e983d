package repository

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
)

// Memory is the in-process backend of Store: an insertion ordered slice guarded
// by a RWMutex. Filters and updates address fields by their db tag.
type Memory[T any] struct {
	mu      sync.RWMutex
	rows    []T
	otel    otel.Otel
	entity  string
	columns map[string][]int
}

func NewMemory[T any](entityName string, otl otel.Otel) *Memory[T] {
	var zero T

	columns := map[string][]int{}
	indexColumns(reflect.TypeOf(zero), nil, columns)

	return &Memory[T]{
		otel:    otl,
		entity:  entityName,
		columns: columns,
	}
}

func (m *Memory[T]) Insert(ctx context.Context, model T) error {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, m.entity))
	defer scope.End()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = append(m.rows, model)

	return nil
}

func (m *Memory[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, m.entity))
	defer scope.End()

	var zero T

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, row := range m.rows {
		ok, err := m.match(row, filter)
		if err != nil {
			scope.TraceError(err)

			return zero, fmt.Errorf("failed to get data (%s): %w", m.entity, err)
		}

		if ok {
			return row, nil
		}
	}

	return zero, nil
}

func (m *Memory[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, m.entity))
	defer scope.End()

	m.mu.RLock()
	models, err := m.filter(filter)
	m.mu.RUnlock()

	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", m.entity, err)
	}

	if err = m.sort(models, params); err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", m.entity, err)
	}

	return paginate(models, params), nil
}

func (m *Memory[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, m.entity))
	defer scope.End()

	m.mu.RLock()
	defer m.mu.RUnlock()

	models, err := m.filter(filter)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", m.entity, err)
	}

	return len(models), nil
}

func (m *Memory[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, m.entity))
	defer scope.End()

	if len(filter.Filters) == 0 {
		return false, errRequiredFilter
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, row := range m.rows {
		ok, err := m.match(row, filter)
		if err != nil {
			scope.TraceError(err)

			return false, fmt.Errorf("failed to check exist data (%s): %w", m.entity, err)
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}

// Update applies mod to every matching row in place.
func (m *Memory[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, m.entity))
	defer scope.End()

	if len(filter.Filters) == 0 {
		return errRequiredFilter
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for idx := range m.rows {
		ok, err := m.match(m.rows[idx], filter)
		if err != nil {
			scope.TraceError(err)

			return fmt.Errorf("failed to update data (%s): %w", m.entity, err)
		}

		if !ok {
			continue
		}

		updated := m.rows[idx]
		row := reflect.ValueOf(&updated).Elem()

		for column, value := range mod {
			if err = m.set(row, column, value); err != nil {
				scope.TraceError(err)

				return fmt.Errorf("failed to update data (%s): %w", m.entity, err)
			}
		}

		m.rows[idx] = updated
	}

	return nil
}

func (m *Memory[T]) filter(filter dto.FilterGroup) ([]T, error) {
	models := []T{}

	for _, row := range m.rows {
		ok, err := m.match(row, filter)
		if err != nil {
			return nil, err
		}

		if ok {
			models = append(models, row)
		}
	}

	return models, nil
}

func (m *Memory[T]) sort(models []T, params dto.QueryParams) error {
	if params.SortBy == "" || params.SortBy == constant.FieldSequence {
		if params.SortDir == dto.SortDirDesc {
			slices.Reverse(models)
		}

		return nil
	}

	index, ok := m.columns[params.SortBy]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, params.SortBy)
	}

	var sortErr error

	slices.SortStableFunc(models, func(a, b T) int {
		left := reflect.ValueOf(a).FieldByIndex(index)
		right := reflect.ValueOf(b).FieldByIndex(index)

		cmp, err := compare(left, right)
		if err != nil && sortErr == nil {
			sortErr = err
		}

		if params.SortDir == dto.SortDirDesc {
			return -cmp
		}

		return cmp
	})

	return sortErr
}

func paginate[T any](models []T, params dto.QueryParams) []T {
	if params.Limit <= 0 {
		return models
	}

	offset := 0
	if params.Page > 0 {
		offset = (params.Page - 1) * params.Limit
	}

	if offset >= len(models) {
		return []T{}
	}

	return models[offset:min(offset+params.Limit, len(models))]
}

func (m *Memory[T]) match(row T, group dto.FilterGroup) (bool, error) {
	if len(group.Filters) == 0 {
		return true, nil
	}

	value := reflect.ValueOf(row)
	or := group.GroupOperator() == dto.FilterGroupOperatorOr

	for _, item := range group.Filters {
		var (
			ok  bool
			err error
		)

		switch filter := item.(type) {
		case dto.Filter:
			ok, err = m.matchFilter(value, filter)
		case dto.FilterGroup:
			ok, err = m.match(row, filter)
		default:
			err = fmt.Errorf("%w: %T", errUnsupportedFilter, item)
		}

		if err != nil {
			return false, err
		}

		if or && ok {
			return true, nil
		}

		if !or && !ok {
			return false, nil
		}
	}

	return !or, nil
}

func (m *Memory[T]) matchFilter(row reflect.Value, filter dto.Filter) (bool, error) {
	index, ok := m.columns[filter.Field]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownColumn, filter.Field)
	}

	return evaluate(row.FieldByIndex(index), filter)
}

func (m *Memory[T]) set(row reflect.Value, column string, value any) error {
	index, ok := m.columns[column]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}

	return assign(row.FieldByIndex(index), value)
}

func indexColumns(reflectType reflect.Type, parent []int, columns map[string][]int) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		index := append(slices.Clone(parent), i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			indexColumns(field.Type, index, columns)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns[dbTag] = index
	}
}
