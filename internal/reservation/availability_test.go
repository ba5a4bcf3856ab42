package reservation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/resbook/resource-booking-backend/internal/reservation"
)

func TestFreeSlots(t *testing.T) {
	open := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	close := open.Add(24 * time.Hour)

	rsv := func(startH, endH int) *reservation.Reservation {
		return &reservation.Reservation{
			StartTime: at(startH, 0),
			EndTime:   at(endH, 0),
		}
	}

	tests := []struct {
		name         string
		reservations []*reservation.Reservation
		want         []reservation.Slot
	}{
		{
			name:         "no reservations, full day free",
			reservations: nil,
			want: []reservation.Slot{
				{StartTime: open, EndTime: close},
			},
		},
		{
			name:         "one reservation in the middle",
			reservations: []*reservation.Reservation{rsv(12, 13)},
			want: []reservation.Slot{
				{StartTime: open, EndTime: at(12, 0)},
				{StartTime: at(13, 0), EndTime: close},
			},
		},
		{
			name:         "unsorted input",
			reservations: []*reservation.Reservation{rsv(15, 16), rsv(9, 10)},
			want: []reservation.Slot{
				{StartTime: open, EndTime: at(9, 0)},
				{StartTime: at(10, 0), EndTime: at(15, 0)},
				{StartTime: at(16, 0), EndTime: close},
			},
		},
		{
			name:         "back to back reservations leave no gap between them",
			reservations: []*reservation.Reservation{rsv(10, 11), rsv(11, 12)},
			want: []reservation.Slot{
				{StartTime: open, EndTime: at(10, 0)},
				{StartTime: at(12, 0), EndTime: close},
			},
		},
		{
			name: "reservation spanning the window edge is clamped",
			reservations: []*reservation.Reservation{
				{
					StartTime: open.Add(-2 * time.Hour),
					EndTime:   at(3, 0),
				},
			},
			want: []reservation.Slot{
				{StartTime: at(3, 0), EndTime: close},
			},
		},
		{
			name: "reservation covering the whole window",
			reservations: []*reservation.Reservation{
				{
					StartTime: open.Add(-time.Hour),
					EndTime:   close.Add(time.Hour),
				},
			},
			want: []reservation.Slot{},
		},
		{
			name: "reservation outside the window is ignored",
			reservations: []*reservation.Reservation{
				{
					StartTime: close.Add(time.Hour),
					EndTime:   close.Add(2 * time.Hour),
				},
			},
			want: []reservation.Slot{
				{StartTime: open, EndTime: close},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reservation.FreeSlots(open, close, tt.reservations)
			assert.Equal(t, tt.want, got)
		})
	}
}
