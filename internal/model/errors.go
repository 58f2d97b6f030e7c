package model

import "errors"

var (
	// ErrWebinarNotFound is returned when no webinar matches the given id.
	ErrWebinarNotFound = errors.New("webinar not found")
	// ErrWebinarAlreadyBooked is returned when the user already holds a seat on the webinar.
	ErrWebinarAlreadyBooked = errors.New("user already booked this webinar")
	// ErrWebinarNoMoreSeats is returned when every seat of the webinar is taken.
	ErrWebinarNoMoreSeats = errors.New("webinar has no more seats available")

	// ErrEmailTaken is returned when registering an email another user owns.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when login fails, whether the email or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned when a bearer token is missing, invalid or names an unknown user.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("invalid input")
)
