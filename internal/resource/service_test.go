package resource_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resbook/resource-booking-backend/internal/pkg/apperror"
	"github.com/resbook/resource-booking-backend/internal/resource"
)

// memRepo is an in-memory resource.Repository for service tests.
type memRepo struct {
	mu     sync.Mutex
	nextID int
	items  map[string]*resource.Resource

	// reserved marks resources that still have reservations, so Delete
	// can exercise the reject policy.
	reserved map[string]bool
}

func newMemRepo() *memRepo {
	return &memRepo{
		items:    make(map[string]*resource.Resource),
		reserved: make(map[string]bool),
	}
}

func (m *memRepo) Create(ctx context.Context, res *resource.Resource) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	res.ID = fmt.Sprintf("res-%d", m.nextID)
	stored := *res
	m.items[res.ID] = &stored
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*resource.Resource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.items[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	res := *stored
	return &res, nil
}

func (m *memRepo) List(ctx context.Context, filter resource.Filter) ([]*resource.Resource, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*resource.Resource
	for _, stored := range m.items {
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(stored.Name), needle) &&
				!strings.Contains(strings.ToLower(stored.Description), needle) {
				continue
			}
		}
		res := *stored
		out = append(out, &res)
	}
	return out, len(out), nil
}

func (m *memRepo) Update(ctx context.Context, res *resource.Resource) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[res.ID]; !ok {
		return resource.ErrNotFound
	}
	stored := *res
	m.items[res.ID] = &stored
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return resource.ErrNotFound
	}
	if m.reserved[id] {
		return resource.ErrInUse
	}
	delete(m.items, id)
	return nil
}

func validCreate() resource.CreateRequest {
	return resource.CreateRequest{
		Name:        "Meeting Room Alpha",
		Description: "Large room with projector and whiteboard",
		Location:    "3rd Floor, West Wing",
		Capacity:    12,
		IsAvailable: true,
	}
}

func TestCreateValidation(t *testing.T) {
	svc := resource.NewService(newMemRepo())
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(*resource.CreateRequest)
		wantField string
	}{
		{
			name:      "empty name",
			mutate:    func(r *resource.CreateRequest) { r.Name = "  " },
			wantField: "name",
		},
		{
			name:      "name too long",
			mutate:    func(r *resource.CreateRequest) { r.Name = strings.Repeat("x", 101) },
			wantField: "name",
		},
		{
			name:      "empty description",
			mutate:    func(r *resource.CreateRequest) { r.Description = "" },
			wantField: "description",
		},
		{
			name:      "empty location",
			mutate:    func(r *resource.CreateRequest) { r.Location = "" },
			wantField: "location",
		},
		{
			name:      "zero capacity",
			mutate:    func(r *resource.CreateRequest) { r.Capacity = 0 },
			wantField: "capacity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)

			_, err := svc.Create(ctx, req)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantField, appErr.Field)
		})
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := resource.NewService(newMemRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.Capacity, fetched.Capacity)
	assert.True(t, fetched.IsAvailable)
}

func TestUpdateMergesFields(t *testing.T) {
	svc := resource.NewService(newMemRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	newName := "Conference Room Beta"
	unavailable := false
	updated, err := svc.Update(ctx, created.ID, resource.UpdateRequest{
		Name:        &newName,
		IsAvailable: &unavailable,
	})
	require.NoError(t, err)

	assert.Equal(t, newName, updated.Name)
	assert.False(t, updated.IsAvailable)
	// Untouched fields survive.
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Capacity, updated.Capacity)
}

func TestUpdateValidation(t *testing.T) {
	svc := resource.NewService(newMemRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	badCapacity := 0
	_, err = svc.Update(ctx, created.ID, resource.UpdateRequest{Capacity: &badCapacity})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "capacity", appErr.Field)
}

func TestDelete(t *testing.T) {
	repo := newMemRepo()
	svc := resource.NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	t.Run("rejected while reservations exist", func(t *testing.T) {
		repo.reserved[created.ID] = true
		assert.ErrorIs(t, svc.Delete(ctx, created.ID), resource.ErrInUse)
	})

	t.Run("succeeds once free", func(t *testing.T) {
		repo.reserved[created.ID] = false
		require.NoError(t, svc.Delete(ctx, created.ID))

		_, err := svc.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, resource.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, "res-404"), resource.ErrNotFound)
	})
}

func TestListSearch(t *testing.T) {
	svc := resource.NewService(newMemRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	car := validCreate()
	car.Name = "Company Car 1"
	car.Description = "Compact sedan for staff use"
	car.Capacity = 4
	_, err = svc.Create(ctx, car)
	require.NoError(t, err)

	out, total, err := svc.List(ctx, resource.Filter{Search: "sedan"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, out, 1)
	assert.Equal(t, "Company Car 1", out[0].Name)
}
