package constant

import (
	"time"
)

const (
	ContextSystem = "system"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUsername contextKey = "username"
	ContextKeyUserRole contextKey = "user_role"
	ContextKeyTokenID  contextKey = "token_id"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

const (
	RequestParamHotelID = "hotelId"
	RequestParamTopics  = "topics"
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 50
)

const (
	GuestStatusCheckedIn  = "checked-in"
	GuestStatusCheckedOut = "checked-out"

	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	BookingNumberPrefix = "BK"
	BookingNumberLength = 8
	RecentCheckoutLimit = 5
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
	FieldSequence   = "seq"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	DateFormat = time.RFC3339
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderUserAgent     = "User-Agent"
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderRequestID     = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorInternal           = "Internal server error"
	ResponseErrorInvalidCredentials = "Invalid credentials"
	ResponseErrorRouteNotFound      = "Route not found"
	ResponseErrorMethodNotAllowed   = "Method not allowed"
	ResponseErrorPrepareShutdown    = "Server is shutting down"
	ResponseErrorUnhealthy          = "Server is unhealthy"
	ResponseErrorMissingToken       = "Access token required"
	ResponseErrorInvalidToken       = "Invalid or expired token"
	ResponseErrorNoRoomsAvailable   = "No rooms available for this hotel"
	ResponseErrorGuestNotFound      = "Guest not found"
	ResponseErrorHotelNotFound      = "Hotel not found"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
