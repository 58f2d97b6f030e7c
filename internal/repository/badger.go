package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Shivanand-hulikatti/webinar-booking/internal/model"
	"github.com/dgraph-io/badger/v4"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Badger key layout:
//
//	webinar:{id}
//	user:{id}
//	user-email:{email}               -> user id
//	participation:{len(webinarID)}:{webinarID}:{userID}
//
// The length prefix keeps ids containing ':' from colliding. Keeping the
// user id last makes the pair unique and lets FindByWebinarID use a prefix scan.
func webinarKey(id string) []byte      { return []byte("webinar:" + id) }
func userKey(id string) []byte         { return []byte("user:" + id) }
func userEmailKey(email string) []byte { return []byte("user-email:" + email) }
func participationPrefix(webinarID string) []byte {
	return []byte("participation:" + strconv.Itoa(len(webinarID)) + ":" + webinarID + ":")
}
func participationKey(webinarID, userID string) []byte {
	return append(participationPrefix(webinarID), userID...)
}

func getJSON(txn *badger.Txn, key []byte, dst any) (bool, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, item.Value(func(val []byte) error {
		return json.Unmarshal(val, dst)
	})
}

func setJSON(txn *badger.Txn, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return txn.Set(key, data)
}

// BadgerWebinarRepository stores webinars in BadgerDB.
type BadgerWebinarRepository struct {
	db *badger.DB
}

// NewBadgerWebinarRepository constructs a BadgerWebinarRepository.
func NewBadgerWebinarRepository(db *badger.DB) *BadgerWebinarRepository {
	return &BadgerWebinarRepository{db: db}
}

// FindByID returns the webinar, or nil when it does not exist.
func (r *BadgerWebinarRepository) FindByID(_ context.Context, id string) (*model.Webinar, error) {
	var w model.Webinar
	var found bool
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		found, err = getJSON(txn, webinarKey(id), &w)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get webinar: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &w, nil
}

// Save inserts or replaces a webinar.
func (r *BadgerWebinarRepository) Save(_ context.Context, w model.Webinar) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, webinarKey(w.ID), w)
	})
}

// BadgerUserRepository stores users in BadgerDB with a secondary email index.
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository constructs a BadgerUserRepository.
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// FindByID returns the user, or nil when it does not exist.
func (r *BadgerUserRepository) FindByID(_ context.Context, id string) (*model.User, error) {
	var u storedUser
	var found bool
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		found, err = getJSON(txn, userKey(id), &u)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return nil, nil
	}
	user := u.toUser()
	return &user, nil
}

// FindByEmail resolves the email index, or returns nil when it is unknown.
func (r *BadgerUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	var u storedUser
	var found bool
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userEmailKey(email))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		found, err = getJSON(txn, userKey(string(id)), &u)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if !found {
		return nil, nil
	}
	user := u.toUser()
	return &user, nil
}

// Save stores a user. The stored record keeps the password hash, which the
// JSON tags of model.User hide from HTTP responses.
func (r *BadgerUserRepository) Save(_ context.Context, u model.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(userEmailKey(u.Email))
		switch {
		case err == nil:
			owner, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if string(owner) != u.ID {
				return model.ErrEmailTaken
			}
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		if err := txn.Set(userEmailKey(u.Email), []byte(u.ID)); err != nil {
			return err
		}
		return setJSON(txn, userKey(u.ID), storedUser{User: u, PasswordHash: u.PasswordHash})
	})
}

// storedUser persists the hash that model.User omits from JSON.
type storedUser struct {
	model.User
	PasswordHash string `json:"password_hash"`
}

func (s *storedUser) toUser() model.User {
	u := s.User
	u.PasswordHash = s.PasswordHash
	return u
}

// BadgerParticipationRepository stores participations in BadgerDB.
type BadgerParticipationRepository struct {
	db *badger.DB
}

// NewBadgerParticipationRepository constructs a BadgerParticipationRepository.
func NewBadgerParticipationRepository(db *badger.DB) *BadgerParticipationRepository {
	return &BadgerParticipationRepository{db: db}
}

// FindByWebinarID lists every participation on a webinar.
func (r *BadgerParticipationRepository) FindByWebinarID(_ context.Context, webinarID string) ([]model.Participation, error) {
	var participations []model.Participation
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := participationPrefix(webinarID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var p model.Participation
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &p)
			}); err != nil {
				return err
			}
			if p.WebinarID != webinarID {
				continue
			}
			participations = append(participations, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}
	return participations, nil
}

// Save stores a participation, or fails with model.ErrWebinarAlreadyBooked
// when the user already holds one on the webinar.
func (r *BadgerParticipationRepository) Save(_ context.Context, p model.Participation) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		key := participationKey(p.WebinarID, p.UserID)
		if _, err := txn.Get(key); err == nil {
			return model.ErrWebinarAlreadyBooked
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return setJSON(txn, key, p)
	})
	if errors.Is(err, badger.ErrConflict) {
		return model.ErrWebinarAlreadyBooked
	}
	return err
}
