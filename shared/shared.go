package shared

import (
	"context"
	"reflect"
	"strings"

	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

// TransformFields converts the non-zero db tagged fields of a struct into an
// update map stamped with the modifying user.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}

// NewBookingNumber returns BK followed by the first hex characters of a UUID, upper-cased.
func NewBookingNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")

	return constant.BookingNumberPrefix + strings.ToUpper(raw[:constant.BookingNumberLength])
}

// ActorFromContext returns the authenticated username or the system actor.
func ActorFromContext(ctx context.Context) string {
	if username, ok := ctx.Value(constant.ContextKeyUsername).(string); ok && username != "" {
		return username
	}

	return constant.ContextSystem
}
