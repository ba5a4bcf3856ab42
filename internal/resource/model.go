package resource

import (
	"net/http"
	"time"

	"github.com/resbook/resource-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "resource not found")
	ErrInUse    = apperror.New(http.StatusConflict, "resource has existing reservations")
)

const (
	maxNameLength = 100
)

// Resource represents a bookable asset (e.g., a meeting room, vehicle, or equipment).
type Resource struct {
	ID          string
	Name        string
	Description string
	Location    string
	Capacity    int
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for listing resources.
// Search matches against name or description, case-insensitively.
type Filter struct {
	Search   string
	Page     int
	PageSize int
}
