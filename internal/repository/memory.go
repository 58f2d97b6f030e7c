package repository

import (
	"context"
	"sync"

	"github.com/Shivanand-hulikatti/webinar-booking/internal/model"
	"github.com/samber/lo"
)

// MemoryWebinarRepository keeps webinars in a map.
type MemoryWebinarRepository struct {
	mu       sync.RWMutex
	webinars map[string]model.Webinar
}

// NewMemoryWebinarRepository constructs a repository seeded with webinars.
func NewMemoryWebinarRepository(webinars ...model.Webinar) *MemoryWebinarRepository {
	return &MemoryWebinarRepository{
		webinars: lo.SliceToMap(webinars, func(w model.Webinar) (string, model.Webinar) { return w.ID, w }),
	}
}

// FindByID returns the webinar, or nil when it does not exist.
func (r *MemoryWebinarRepository) FindByID(_ context.Context, id string) (*model.Webinar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.webinars[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// Save inserts or replaces a webinar.
func (r *MemoryWebinarRepository) Save(_ context.Context, w model.Webinar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.webinars[w.ID] = w
	return nil
}

// MemoryUserRepository keeps users in a map.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// NewMemoryUserRepository constructs a repository seeded with users.
func NewMemoryUserRepository(users ...model.User) *MemoryUserRepository {
	return &MemoryUserRepository{
		users: lo.SliceToMap(users, func(u model.User) (string, model.User) { return u.ID, u }),
	}
}

// FindByID returns the user, or nil when it does not exist.
func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// FindByEmail returns the user owning email, or nil.
func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := lo.FindKeyBy(r.users, func(_ string, u model.User) bool { return u.Email == email })
	if !ok {
		return nil, nil
	}
	u := r.users[id]
	return &u, nil
}

// Save stores a user, or fails with model.ErrEmailTaken when another user owns the email.
func (r *MemoryUserRepository) Save(_ context.Context, u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.users {
		if existing.Email == u.Email && id != u.ID {
			return model.ErrEmailTaken
		}
	}
	r.users[u.ID] = u
	return nil
}

// MemoryParticipationRepository keeps participations in a slice.
type MemoryParticipationRepository struct {
	mu             sync.RWMutex
	participations []model.Participation
}

// NewMemoryParticipationRepository constructs a repository seeded with participations.
func NewMemoryParticipationRepository(participations ...model.Participation) *MemoryParticipationRepository {
	return &MemoryParticipationRepository{participations: append([]model.Participation{}, participations...)}
}

// FindByWebinarID lists every participation on a webinar.
func (r *MemoryParticipationRepository) FindByWebinarID(_ context.Context, webinarID string) ([]model.Participation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Filter(r.participations, func(p model.Participation, _ int) bool {
		return p.WebinarID == webinarID
	}), nil
}

// Save stores a participation, or fails with model.ErrWebinarAlreadyBooked.
func (r *MemoryParticipationRepository) Save(_ context.Context, p model.Participation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lo.ContainsBy(r.participations, p.SameClaim) {
		return model.ErrWebinarAlreadyBooked
	}
	r.participations = append(r.participations, p)
	return nil
}

// All returns a copy of every stored participation.
func (r *MemoryParticipationRepository) All() []model.Participation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Participation{}, r.participations...)
}
