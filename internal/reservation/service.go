package reservation

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/resbook/resource-booking-backend/internal/pkg/apperror"
	"github.com/resbook/resource-booking-backend/internal/resource"
)

// Input carries the caller-supplied fields for Create and Update.
type Input struct {
	ResourceID string
	StartTime  time.Time
	EndTime    time.Time
	BookedBy   string
	Purpose    string
}

type Service interface {
	Create(ctx context.Context, in Input) (*Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	ListForResource(ctx context.Context, resourceID string) ([]*Reservation, error)
	Update(ctx context.Context, id string, in Input) (*Reservation, error)
	Delete(ctx context.Context, id string) error

	// Availability returns the free windows of a resource's day.
	// A zero date means today.
	Availability(ctx context.Context, resourceID string, date time.Time) (*DayAvailability, error)
}

type service struct {
	repo       Repository
	resService resource.Service
	now        func() time.Time
}

// NewService wires the reservation service. The clock is injected so the
// availability projection is testable.
func NewService(repo Repository, resService resource.Service, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:       repo,
		resService: resService,
		now:        now,
	}
}

// validateInput checks field constraints. Interval errors are reported before
// anything touches the store, so a malformed interval never reaches the
// conflict check.
func validateInput(in Input) error {
	if in.ResourceID == "" {
		return apperror.NewField(http.StatusBadRequest, "resource_id", "please select a resource")
	}
	if in.StartTime.IsZero() {
		return apperror.NewField(http.StatusBadRequest, "start_time", "start time is required")
	}
	if in.EndTime.IsZero() {
		return apperror.NewField(http.StatusBadRequest, "end_time", "end time is required")
	}
	if !in.EndTime.After(in.StartTime) {
		return ErrInvalidInterval
	}

	bookedBy := strings.TrimSpace(in.BookedBy)
	switch {
	case bookedBy == "":
		return apperror.NewField(http.StatusBadRequest, "booked_by", "booked by is required")
	case len(bookedBy) > maxBookedByLength:
		return apperror.NewField(http.StatusBadRequest, "booked_by", "name cannot exceed 100 characters")
	}

	purpose := strings.TrimSpace(in.Purpose)
	switch {
	case purpose == "":
		return apperror.NewField(http.StatusBadRequest, "purpose", "purpose is required")
	case len(purpose) > maxPurposeLength:
		return apperror.NewField(http.StatusBadRequest, "purpose", "purpose cannot exceed 200 characters")
	}

	return nil
}

func (s *service) Create(ctx context.Context, in Input) (*Reservation, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	if _, err := s.resService.GetByID(ctx, in.ResourceID); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	rsv := &Reservation{
		ResourceID: in.ResourceID,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		BookedBy:   in.BookedBy,
		Purpose:    in.Purpose,
	}

	// The repository runs the conflict check and insert in one transaction,
	// so two concurrent creates cannot both observe a free interval.
	if err := s.repo.Create(ctx, rsv); err != nil {
		return nil, err
	}

	return rsv, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListForResource(ctx context.Context, resourceID string) ([]*Reservation, error) {
	if _, err := s.resService.GetByID(ctx, resourceID); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return s.repo.ListForResource(ctx, resourceID)
}

func (s *service) Update(ctx context.Context, id string, in Input) (*Reservation, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	rsv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.resService.GetByID(ctx, in.ResourceID); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	rsv.ResourceID = in.ResourceID
	rsv.StartTime = in.StartTime
	rsv.EndTime = in.EndTime
	rsv.BookedBy = in.BookedBy
	rsv.Purpose = in.Purpose

	// The version read above guards against a lost update: if another caller
	// changed or deleted the row in the meantime, the repository reports it
	// instead of overwriting.
	if err := s.repo.Update(ctx, rsv); err != nil {
		return nil, err
	}

	return rsv, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Availability(ctx context.Context, resourceID string, date time.Time) (*DayAvailability, error) {
	if _, err := s.resService.GetByID(ctx, resourceID); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	if date.IsZero() {
		date = s.now()
	}
	day := date.UTC().Truncate(24 * time.Hour)

	// Fetch by interval intersection, not start date: a reservation running
	// past midnight still occupies the morning of this day.
	window := Interval{Start: day, End: day.Add(24 * time.Hour)}
	reservations, _, err := s.repo.List(ctx, Filter{
		ResourceID:  resourceID,
		Overlapping: &window,
		Limit:       maxSlotsPerDay,
	})
	if err != nil {
		return nil, err
	}

	return &DayAvailability{
		Day:   day,
		Slots: FreeSlots(window.Start, window.End, reservations),
	}, nil
}
