package repository

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"frontdesk/shared/dto"
)

var (
	errIncomparable = errors.New("incomparable values")
	errUnassignable = errors.New("unassignable value")
)

var timeType = reflect.TypeOf(time.Time{})

// evaluate applies one filter to a field value the way the SQL backend would,
// NULL never matching a comparison.
func evaluate(field reflect.Value, filter dto.Filter) (bool, error) {
	isNull := field.Kind() == reflect.Pointer && field.IsNil()

	switch filter.Operator {
	case dto.FilterIsNull:
		return isNull, nil
	case dto.FilterIsNotNull:
		return !isNull, nil
	case dto.FilterPlainQuery:
		return false, fmt.Errorf("%w: %s", errUnsupportedFilter, filter.Operator)
	}

	if isNull {
		return false, nil
	}

	switch filter.Operator {
	case dto.FilterOperatorEq:
		res, err := compareAny(field, filter.Value)

		return err == nil && res == 0, err
	case dto.FilterOperatorNotEq:
		res, err := compareAny(field, filter.Value)

		return err == nil && res != 0, err
	case dto.FilterOperatorLessEq:
		res, err := compareAny(field, filter.Value)

		return err == nil && res <= 0, err
	case dto.FilterOperatorGreaterEq:
		res, err := compareAny(field, filter.Value)

		return err == nil && res >= 0, err
	case dto.FilterOperatorLike:
		haystack := strings.ToLower(fmt.Sprint(indirect(field).Interface()))
		needle := strings.ToLower(fmt.Sprint(filter.Value))

		return strings.Contains(haystack, needle), nil
	case dto.FilterOperatorIn:
		values := reflect.ValueOf(filter.Value)
		if values.Kind() != reflect.Slice && values.Kind() != reflect.Array {
			return false, fmt.Errorf("%w: in expects a slice, got %T", errUnsupportedFilter, filter.Value)
		}

		for idx := range values.Len() {
			res, err := compareAny(field, values.Index(idx).Interface())
			if err != nil {
				return false, err
			}

			if res == 0 {
				return true, nil
			}
		}

		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", errUnsupportedFilter, filter.Operator)
	}
}

func compareAny(field reflect.Value, target any) (int, error) {
	if target == nil {
		return 0, fmt.Errorf("%w: nil operand", errIncomparable)
	}

	return compare(field, reflect.ValueOf(target))
}

// compare orders two values of compatible kinds. Nil pointers sort first.
func compare(left, right reflect.Value) (int, error) {
	leftNil := left.Kind() == reflect.Pointer && left.IsNil()
	rightNil := right.Kind() == reflect.Pointer && right.IsNil()

	switch {
	case leftNil && rightNil:
		return 0, nil
	case leftNil:
		return -1, nil
	case rightNil:
		return 1, nil
	}

	left, right = indirect(left), indirect(right)

	switch {
	case left.Type() == timeType && right.Type() == timeType:
		leftTime, _ := left.Interface().(time.Time)
		rightTime, _ := right.Interface().(time.Time)

		return leftTime.Compare(rightTime), nil
	case left.Kind() == reflect.String && right.Kind() == reflect.String:
		return cmp.Compare(left.String(), right.String()), nil
	case left.Kind() == reflect.Bool && right.Kind() == reflect.Bool:
		return cmp.Compare(boolRank(left.Bool()), boolRank(right.Bool())), nil
	case isNumber(left) && isNumber(right):
		return cmp.Compare(toFloat(left), toFloat(right)), nil
	default:
		return 0, fmt.Errorf("%w: %s and %s", errIncomparable, left.Type(), right.Type())
	}
}

// assign stores value into field, allocating pointers and converting numbers.
func assign(field reflect.Value, value any) error {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))

		return nil
	}

	source := reflect.ValueOf(value)
	target := field.Type()

	switch {
	case source.Type().AssignableTo(target):
		field.Set(source)
	case target.Kind() == reflect.Pointer && source.Type().AssignableTo(target.Elem()):
		ptr := reflect.New(target.Elem())
		ptr.Elem().Set(source)
		field.Set(ptr)
	case source.Kind() == reflect.Pointer && source.IsNil():
		field.Set(reflect.Zero(target))
	case source.Kind() == reflect.Pointer && source.Elem().Type().AssignableTo(target):
		field.Set(source.Elem())
	case isNumber(source) && isNumberKind(target.Kind()):
		field.Set(source.Convert(target))
	case source.Kind() == reflect.String && target.Kind() == reflect.String:
		field.SetString(source.String())
	default:
		return fmt.Errorf("%w: %T into %s", errUnassignable, value, target)
	}

	return nil
}

func indirect(value reflect.Value) reflect.Value {
	for value.Kind() == reflect.Pointer && !value.IsNil() {
		value = value.Elem()
	}

	return value
}

func boolRank(value bool) int {
	if value {
		return 1
	}

	return 0
}

func isNumber(value reflect.Value) bool {
	return isNumberKind(value.Kind())
}

func isNumberKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func toFloat(value reflect.Value) float64 {
	switch {
	case value.CanInt():
		return float64(value.Int())
	case value.CanUint():
		return float64(value.Uint())
	default:
		return value.Float()
	}
}
