//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../mocks/mock_repository.go -package=mocks

// Package repository holds the storage contracts the booking core depends on,
// together with their PostgreSQL, Badger and in-memory implementations.
//
// Lookups of a single record return (nil, nil) when the record is absent.
package repository

import (
	"context"

	"github.com/Shivanand-hulikatti/webinar-booking/internal/model"
)

// WebinarRepository persists webinars.
type WebinarRepository interface {
	FindByID(ctx context.Context, id string) (*model.Webinar, error)
	Save(ctx context.Context, webinar model.Webinar) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Save(ctx context.Context, user model.User) error
}

// ParticipationRepository persists seat claims.
// Save returns model.ErrWebinarAlreadyBooked when the (user, webinar) pair already exists.
type ParticipationRepository interface {
	FindByWebinarID(ctx context.Context, webinarID string) ([]model.Participation, error)
	Save(ctx context.Context, participation model.Participation) error
}

// Locker serializes bookings on a single webinar. Repository calls made with
// the ctx handed to fn take part in the same unit of work.
type Locker interface {
	WithWebinarLock(ctx context.Context, webinarID string, fn func(ctx context.Context) error) error
}
