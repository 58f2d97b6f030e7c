// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/webinar-booking/internal/model"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/repository"
	"github.com/google/uuid"
)

// WebinarService covers the organizer side: scheduling webinars and
// inspecting their bookings.
type WebinarService struct {
	webinars       repository.WebinarRepository
	participations repository.ParticipationRepository
}

// NewWebinarService constructs a WebinarService with its dependencies.
func NewWebinarService(
	webinars repository.WebinarRepository,
	participations repository.ParticipationRepository,
) *WebinarService {
	return &WebinarService{webinars: webinars, participations: participations}
}

// Organize validates the request and saves a new webinar owned by organizer.
func (s *WebinarService) Organize(ctx context.Context, organizer model.User, req model.CreateWebinarRequest) (*model.Webinar, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	webinar := model.Webinar{
		ID:          uuid.New().String(),
		OrganizerID: organizer.ID,
		Title:       req.Title,
		StartDate:   req.StartDate.UTC(),
		EndDate:     req.EndDate.UTC(),
		Seats:       req.Seats,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.webinars.Save(ctx, webinar); err != nil {
		return nil, fmt.Errorf("organize webinar: %w", err)
	}
	return &webinar, nil
}

// Get returns a webinar with its remaining seats.
func (s *WebinarService) Get(ctx context.Context, id string) (*model.WebinarResponse, error) {
	webinar, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	participations, err := s.participations.FindByWebinarID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count participations: %w", err)
	}
	return &model.WebinarResponse{
		Webinar:        *webinar,
		RemainingSeats: webinar.RemainingSeats(len(participations)),
	}, nil
}

// Participations returns every participation booked on a webinar.
func (s *WebinarService) Participations(ctx context.Context, id string) ([]model.Participation, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	participations, err := s.participations.FindByWebinarID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}
	return participations, nil
}

func (s *WebinarService) find(ctx context.Context, id string) (*model.Webinar, error) {
	if id == "" {
		return nil, model.ErrWebinarNotFound
	}
	webinar, err := s.webinars.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get webinar: %w", err)
	}
	if webinar == nil {
		return nil, model.ErrWebinarNotFound
	}
	return webinar, nil
}
