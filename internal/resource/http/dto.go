package http

import (
	"time"

	"github.com/resbook/resource-booking-backend/internal/pkg/request"
	"github.com/resbook/resource-booking-backend/internal/resource"
)

type ResourceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewResponse(r *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		Capacity:    r.Capacity,
		IsAvailable: r.IsAvailable,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ResourceTag is the minimal resource reference embedded in other responses.
type ResourceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListRequest struct {
	request.ListParams
	Search string `form:"search"`
}

type CreateBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	IsAvailable *bool  `json:"is_available"`
}

type UpdateBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=1"`
	IsAvailable *bool   `json:"is_available"`
}
