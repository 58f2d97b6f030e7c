//go:generate go run go.uber.org/mock/mockgen -source=notify.go -destination=../mocks/mock_notifier.go -package=mocks

// Package notify delivers messages to users (organizer booking alerts).
package notify

import "context"

// Message is a single email-style notification.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers a message.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
