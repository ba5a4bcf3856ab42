package resource

import (
	"context"
	"net/http"
	"strings"

	"github.com/resbook/resource-booking-backend/internal/pkg/apperror"
)

type CreateRequest struct {
	Name        string
	Description string
	Location    string
	Capacity    int
	IsAvailable bool
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Location    *string
	Capacity    *int
	IsAvailable *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validate checks field constraints shared by Create and Update.
func validate(res *Resource) error {
	name := strings.TrimSpace(res.Name)
	switch {
	case name == "":
		return apperror.NewField(http.StatusBadRequest, "name", "resource name is required")
	case len(name) > maxNameLength:
		return apperror.NewField(http.StatusBadRequest, "name", "name cannot exceed 100 characters")
	}
	if strings.TrimSpace(res.Description) == "" {
		return apperror.NewField(http.StatusBadRequest, "description", "description is required")
	}
	if strings.TrimSpace(res.Location) == "" {
		return apperror.NewField(http.StatusBadRequest, "location", "location is required")
	}
	if res.Capacity < 1 {
		return apperror.NewField(http.StatusBadRequest, "capacity", "capacity must be greater than 0")
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Resource, error) {
	res := &Resource{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Capacity:    req.Capacity,
		IsAvailable: req.IsAvailable,
	}

	if err := validate(res); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		res.Name = *req.Name
	}
	if req.Description != nil {
		res.Description = *req.Description
	}
	if req.Location != nil {
		res.Location = *req.Location
	}
	if req.Capacity != nil {
		res.Capacity = *req.Capacity
	}
	if req.IsAvailable != nil {
		res.IsAvailable = *req.IsAvailable
	}

	if err := validate(res); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
