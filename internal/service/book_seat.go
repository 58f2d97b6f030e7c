package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Shivanand-hulikatti/webinar-booking/internal/model"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/notify"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/repository"
	"github.com/samber/lo"
)

const newParticipationSubject = "New participation"

// BookSeatInput identifies the webinar and the already-resolved requesting user.
type BookSeatInput struct {
	WebinarID string
	User      model.User
}

// BookSeat claims one seat on a webinar for a user and tells the organizer.
type BookSeat struct {
	participations repository.ParticipationRepository
	users          repository.UserRepository
	webinars       repository.WebinarRepository
	locker         repository.Locker
	notifier       notify.Notifier
	log            *slog.Logger
}

// NewBookSeat constructs a BookSeat with its dependencies.
func NewBookSeat(
	participations repository.ParticipationRepository,
	users repository.UserRepository,
	webinars repository.WebinarRepository,
	locker repository.Locker,
	notifier notify.Notifier,
	log *slog.Logger,
) *BookSeat {
	return &BookSeat{
		participations: participations,
		users:          users,
		webinars:       webinars,
		locker:         locker,
		notifier:       notifier,
		log:            log,
	}
}

// Execute books the seat. It fails with model.ErrWebinarNotFound,
// model.ErrWebinarAlreadyBooked or model.ErrWebinarNoMoreSeats, checked in
// that order, and saves nothing on failure.
//
// The checks and the save run under the webinar lock. The organizer is
// notified after the lock is released; a failed lookup or delivery is
// logged and does not undo the booking.
func (uc *BookSeat) Execute(ctx context.Context, in BookSeatInput) error {
	if in.WebinarID == "" || in.User.ID == "" {
		return fmt.Errorf("%w: webinar id and user are required", model.ErrInvalidInput)
	}

	var webinar model.Webinar
	err := uc.locker.WithWebinarLock(ctx, in.WebinarID, func(ctx context.Context) error {
		w, err := uc.webinars.FindByID(ctx, in.WebinarID)
		if err != nil {
			return fmt.Errorf("find webinar: %w", err)
		}
		if w == nil {
			return model.ErrWebinarNotFound
		}

		participations, err := uc.participations.FindByWebinarID(ctx, in.WebinarID)
		if err != nil {
			return fmt.Errorf("find participations: %w", err)
		}

		alreadyBooked := lo.ContainsBy(participations, func(p model.Participation) bool {
			return p.UserID == in.User.ID
		})
		if alreadyBooked {
			return model.ErrWebinarAlreadyBooked
		}

		if w.HasNoMoreSeats(len(participations)) {
			return model.ErrWebinarNoMoreSeats
		}

		if err := uc.participations.Save(ctx, model.NewParticipation(in.User.ID, in.WebinarID)); err != nil {
			if errors.Is(err, model.ErrWebinarAlreadyBooked) {
				return err
			}
			return fmt.Errorf("save participation: %w", err)
		}

		webinar = *w
		return nil
	})
	if err != nil {
		return err
	}

	uc.log.InfoContext(ctx, "seat booked",
		"webinar_id", in.WebinarID,
		"user_id", in.User.ID,
	)

	uc.notifyOrganizer(ctx, webinar)
	return nil
}

func (uc *BookSeat) notifyOrganizer(ctx context.Context, webinar model.Webinar) {
	organizer, err := uc.users.FindByID(ctx, webinar.OrganizerID)
	if err != nil {
		uc.log.ErrorContext(ctx, "organizer lookup failed",
			"webinar_id", webinar.ID,
			"organizer_id", webinar.OrganizerID,
			"error", err,
		)
		return
	}
	if organizer == nil {
		uc.log.DebugContext(ctx, "organizer not found, skipping notification",
			"webinar_id", webinar.ID,
			"organizer_id", webinar.OrganizerID,
		)
		return
	}

	msg := notify.Message{
		To:      organizer.Email,
		Subject: newParticipationSubject,
		Body:    fmt.Sprintf(`A new participant has registered for your webinar "%s".`, webinar.Title),
	}
	if err := uc.notifier.Send(ctx, msg); err != nil {
		uc.log.ErrorContext(ctx, "organizer notification failed",
			"webinar_id", webinar.ID,
			"to", organizer.Email,
			"error", err,
		)
	}
}
