package reservation

import (
	"net/http"
	"time"

	"github.com/resbook/resource-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "reservation not found")
	ErrConflict            = apperror.New(http.StatusConflict, "resource is already reserved during the selected time range")
	ErrInvalidInterval     = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrResourceNotFound    = apperror.New(http.StatusNotFound, "resource not found")
	ErrResourceUnavailable = apperror.New(http.StatusConflict, "resource is not available for new reservations")
	ErrVersionConflict     = apperror.New(http.StatusConflict, "reservation was modified by another request, reload and retry")
	ErrStorageTimeout      = apperror.New(http.StatusServiceUnavailable, "storage operation timed out")
)

const (
	maxBookedByLength = 100
	maxPurposeLength  = 200
)

// Reservation claims a half-open time interval [StartTime, EndTime) against one resource.
type Reservation struct {
	ID           string
	ResourceID   string
	ResourceName string
	StartTime    time.Time
	EndTime      time.Time
	BookedBy     string
	Purpose      string
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing reservations.
// Results are always ordered by start time ascending.
type Filter struct {
	ResourceID  string
	BookedBy    string     // case-insensitive substring match on booked_by
	OnDate      *time.Time // reservations whose start time falls on this calendar day (UTC)
	StartFrom   *time.Time // reservations starting at or after this instant
	Overlapping *Interval  // reservations whose interval intersects this window
	Limit       int        // when > 0, cap the result without pagination
	Page        int
	PageSize    int
}
