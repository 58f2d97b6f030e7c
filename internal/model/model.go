// Package model defines the core domain types for the webinar booking system.
package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Booking only reads ID and Email.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Webinar represents a scheduled event with a fixed number of seats.
type Webinar struct {
	ID          string    `json:"id"`
	OrganizerID string    `json:"organizer_id"`
	Title       string    `json:"title"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Seats       int       `json:"seats"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasNoMoreSeats reports whether currentParticipantCount already fills the webinar.
func (w Webinar) HasNoMoreSeats(currentParticipantCount int) bool {
	return currentParticipantCount >= w.Seats
}

// RemainingSeats returns the number of available seats, never below zero.
func (w Webinar) RemainingSeats(currentParticipantCount int) int {
	if left := w.Seats - currentParticipantCount; left > 0 {
		return left
	}
	return 0
}

// Participation is one user's claimed seat on a webinar.
type Participation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	WebinarID string    `json:"webinar_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewParticipation builds the claim of userID on webinarID.
func NewParticipation(userID, webinarID string) Participation {
	return Participation{
		ID:        uuid.New().String(),
		UserID:    userID,
		WebinarID: webinarID,
		CreatedAt: time.Now().UTC(),
	}
}

// SameClaim compares two participations by (UserID, WebinarID). ID is ignored.
func (p Participation) SameClaim(other Participation) bool {
	return p.UserID == other.UserID && p.WebinarID == other.WebinarID
}

// CreateWebinarRequest is the payload for organizing a new webinar.
type CreateWebinarRequest struct {
	Title     string    `json:"title" validate:"required,max=200"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	Seats     int       `json:"seats" validate:"min=1,max=100000"`
}

// WebinarResponse is a webinar together with its live seat count.
type WebinarResponse struct {
	Webinar
	RemainingSeats int `json:"remaining_seats"`
}

// BookingResponse acknowledges a booked seat.
type BookingResponse struct {
	WebinarID string `json:"webinar_id"`
	UserID    string `json:"user_id"`
}

// CredentialsRequest is the payload for registering and logging in.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
