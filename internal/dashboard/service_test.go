package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resbook/resource-booking-backend/internal/dashboard"
	"github.com/resbook/resource-booking-backend/internal/reservation"
)

// stubReservations records the filters the dashboard queries with and returns
// canned reservations per call.
type stubReservations struct {
	reservation.Service

	filters []reservation.Filter
	results [][]*reservation.Reservation
}

func (s *stubReservations) List(ctx context.Context, filter reservation.Filter) ([]*reservation.Reservation, int, error) {
	s.filters = append(s.filters, filter)
	out := s.results[len(s.filters)-1]
	return out, len(out), nil
}

func TestSummary(t *testing.T) {
	now := time.Date(2026, 3, 9, 15, 30, 0, 0, time.UTC)
	today := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	todays := []*reservation.Reservation{
		{ID: "a", StartTime: today.Add(9 * time.Hour)},
	}
	upcoming := []*reservation.Reservation{
		{ID: "b", StartTime: today.Add(34 * time.Hour)},
		{ID: "c", StartTime: today.Add(50 * time.Hour)},
	}

	stub := &stubReservations{results: [][]*reservation.Reservation{todays, upcoming}}
	svc := dashboard.NewService(stub, func() time.Time { return now })

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, todays, summary.Today)
	assert.Equal(t, upcoming, summary.Upcoming)

	require.Len(t, stub.filters, 2)

	// First query: reservations starting today.
	require.NotNil(t, stub.filters[0].OnDate)
	assert.True(t, stub.filters[0].OnDate.Equal(today))

	// Second query: the next few reservations from tomorrow on.
	require.NotNil(t, stub.filters[1].StartFrom)
	assert.True(t, stub.filters[1].StartFrom.Equal(today.Add(24*time.Hour)))
	assert.Equal(t, 5, stub.filters[1].Limit)
}
