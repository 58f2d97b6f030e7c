package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWebinar_HasNoMoreSeats(t *testing.T) {
	w := Webinar{ID: "webinar-1", Seats: 2}

	tests := []struct {
		count int
		full  bool
		left  int
	}{
		{0, false, 2},
		{1, false, 1},
		{2, true, 0},
		{3, true, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.full, w.HasNoMoreSeats(tt.count), "count=%d", tt.count)
		require.Equal(t, tt.left, w.RemainingSeats(tt.count), "count=%d", tt.count)
	}
}

func TestWebinar_ZeroSeatsIsAlwaysFull(t *testing.T) {
	require.True(t, Webinar{Seats: 0}.HasNoMoreSeats(0))
}

func TestParticipation_SameClaimIgnoresID(t *testing.T) {
	req := require.New(t)

	a := NewParticipation("user-1", "webinar-1")
	b := NewParticipation("user-1", "webinar-1")

	req.NotEqual(a.ID, b.ID)
	req.True(a.SameClaim(b))
	req.False(a.SameClaim(NewParticipation("user-2", "webinar-1")))
	req.False(a.SameClaim(NewParticipation("user-1", "webinar-2")))
}
