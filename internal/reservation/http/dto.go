package http

import (
	"time"

	"github.com/resbook/resource-booking-backend/internal/pkg/request"
	"github.com/resbook/resource-booking-backend/internal/reservation"
	resHttp "github.com/resbook/resource-booking-backend/internal/resource/http"
)

// ListRequest defines query parameters for listing reservations.
type ListRequest struct {
	request.ListParams
	ResourceID string `form:"resource_id" binding:"omitempty,uuid"`
	BookedBy   string `form:"booked_by"`
	Date       string `form:"date"` // calendar day, format 2006-01-02
}

type ReservationResponse struct {
	ID        string              `json:"id"`
	Resource  resHttp.ResourceTag `json:"resource"`
	StartTime time.Time           `json:"start_time"`
	EndTime   time.Time           `json:"end_time"`
	BookedBy  string              `json:"booked_by"`
	Purpose   string              `json:"purpose"`
	Version   int64               `json:"version"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewReservationResponse(rsv *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        rsv.ID,
		Resource:  resHttp.ResourceTag{ID: rsv.ResourceID, Name: rsv.ResourceName},
		StartTime: rsv.StartTime,
		EndTime:   rsv.EndTime,
		BookedBy:  rsv.BookedBy,
		Purpose:   rsv.Purpose,
		Version:   rsv.Version,
		CreatedAt: rsv.CreatedAt,
		UpdatedAt: rsv.UpdatedAt,
	}
}

type ReservationBody struct {
	ResourceID string    `json:"resource_id" binding:"required,uuid"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	BookedBy   string    `json:"booked_by" binding:"required,max=100"`
	Purpose    string    `json:"purpose" binding:"required,max=200"`
}

type SlotResponse struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type AvailabilityResponse struct {
	ResourceID string         `json:"resource_id"`
	Date       string         `json:"date"`
	FreeSlots  []SlotResponse `json:"free_slots"`
}
