package service

import (
	"context"
	"testing"
	"time"

	"github.com/Shivanand-hulikatti/webinar-booking/internal/model"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestWebinarService_Organize(t *testing.T) {
	start := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     model.CreateWebinarRequest
		wantErr bool
	}{
		{"valid", model.CreateWebinarRequest{Title: "Go at scale", StartDate: start, EndDate: start.Add(time.Hour), Seats: 50}, false},
		{"blank title", model.CreateWebinarRequest{Title: "   ", StartDate: start, EndDate: start.Add(time.Hour), Seats: 50}, true},
		{"zero seats", model.CreateWebinarRequest{Title: "Go", StartDate: start, EndDate: start.Add(time.Hour), Seats: 0}, true},
		{"too many seats", model.CreateWebinarRequest{Title: "Go", StartDate: start, EndDate: start.Add(time.Hour), Seats: 100_001}, true},
		{"ends before start", model.CreateWebinarRequest{Title: "Go", StartDate: start, EndDate: start.Add(-time.Hour), Seats: 10}, true},
		{"missing dates", model.CreateWebinarRequest{Title: "Go", Seats: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			webinars := repository.NewMemoryWebinarRepository()
			svc := NewWebinarService(webinars, repository.NewMemoryParticipationRepository())

			w, err := svc.Organize(context.Background(), dimos, tt.req)
			if tt.wantErr {
				req.ErrorIs(err, model.ErrInvalidInput)
				req.Nil(w)
				return
			}

			req.NoError(err)
			req.NotEmpty(w.ID)
			req.Equal(dimos.ID, w.OrganizerID)
			req.Equal(50, w.Seats)

			stored, err := webinars.FindByID(context.Background(), w.ID)
			req.NoError(err)
			req.Equal(w.Title, stored.Title)
		})
	}
}

func TestWebinarService_Get(t *testing.T) {
	req := require.New(t)
	svc := NewWebinarService(
		repository.NewMemoryWebinarRepository(webinar1),
		repository.NewMemoryParticipationRepository(model.Participation{UserID: "a", WebinarID: "webinar-1"}),
	)

	got, err := svc.Get(context.Background(), "webinar-1")
	req.NoError(err)
	req.Equal("Webinar title", got.Title)
	req.Equal(1, got.RemainingSeats)

	_, err = svc.Get(context.Background(), "missing")
	req.ErrorIs(err, model.ErrWebinarNotFound)
}

func TestWebinarService_Participations(t *testing.T) {
	req := require.New(t)
	svc := NewWebinarService(
		repository.NewMemoryWebinarRepository(webinar1),
		repository.NewMemoryParticipationRepository(
			model.Participation{UserID: "a", WebinarID: "webinar-1"},
			model.Participation{UserID: "b", WebinarID: "webinar-2"},
		),
	)

	list, err := svc.Participations(context.Background(), "webinar-1")
	req.NoError(err)
	req.Len(list, 1)
	req.Equal("a", list[0].UserID)

	_, err = svc.Participations(context.Background(), "webinar-2")
	req.ErrorIs(err, model.ErrWebinarNotFound)
}
