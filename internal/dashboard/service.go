package dashboard

import (
	"context"
	"time"

	"github.com/resbook/resource-booking-backend/internal/reservation"
)

// upcomingCount is how many future reservations the summary shows.
const upcomingCount = 5

// Summary is the landing-page projection: today's reservations plus the
// next few upcoming ones.
type Summary struct {
	Today    []*reservation.Reservation
	Upcoming []*reservation.Reservation
}

type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	reservations reservation.Service
	now          func() time.Time
}

func NewService(reservations reservation.Service, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		reservations: reservations,
		now:          now,
	}
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)

	todays, _, err := s.reservations.List(ctx, reservation.Filter{
		OnDate: &today,
		Limit:  upcomingCount * 10,
	})
	if err != nil {
		return nil, err
	}

	tomorrow := today.Add(24 * time.Hour)
	upcoming, _, err := s.reservations.List(ctx, reservation.Filter{
		StartFrom: &tomorrow,
		Limit:     upcomingCount,
	})
	if err != nil {
		return nil, err
	}

	return &Summary{
		Today:    todays,
		Upcoming: upcoming,
	}, nil
}
