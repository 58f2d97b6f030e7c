package repository_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Shivanand-hulikatti/webinar-booking/internal/database"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/model"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/repository"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/testutil"
	"github.com/stretchr/testify/require"
)

type store struct {
	webinars       repository.WebinarRepository
	users          repository.UserRepository
	participations repository.ParticipationRepository
	locker         repository.Locker
}

func memoryStore(t *testing.T) store {
	return store{
		webinars:       repository.NewMemoryWebinarRepository(),
		users:          repository.NewMemoryUserRepository(),
		participations: repository.NewMemoryParticipationRepository(),
		locker:         repository.NewKeyedLocker(),
	}
}

func badgerStore(t *testing.T) store {
	db, err := database.OpenBadger("", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return store{
		webinars:       repository.NewBadgerWebinarRepository(db),
		users:          repository.NewBadgerUserRepository(db),
		participations: repository.NewBadgerParticipationRepository(db),
		locker:         repository.NewKeyedLocker(),
	}
}

func postgresStore(t *testing.T) store {
	pool := testutil.NewTestPool(t)
	testutil.TruncateAll(t, context.Background(), pool)

	return store{
		webinars:       repository.NewPostgresWebinarRepository(pool),
		users:          repository.NewPostgresUserRepository(pool),
		participations: repository.NewPostgresParticipationRepository(pool),
		locker:         repository.NewPostgresLocker(pool),
	}
}

func TestRepositories(t *testing.T) {
	backends := map[string]func(t *testing.T) store{
		"memory":   memoryStore,
		"badger":   badgerStore,
		"postgres": postgresStore,
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			t.Run("webinars", func(t *testing.T) { testWebinars(t, open(t)) })
			t.Run("users", func(t *testing.T) { testUsers(t, open(t)) })
			t.Run("participations", func(t *testing.T) { testParticipations(t, open(t)) })
			t.Run("locker", func(t *testing.T) { testLocker(t, open(t)) })
		})
	}
}

func sampleWebinar(id string, seats int) model.Webinar {
	start := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	return model.Webinar{
		ID:          id,
		OrganizerID: "organizer-1",
		Title:       "Webinar " + id,
		StartDate:   start,
		EndDate:     start.Add(time.Hour),
		Seats:       seats,
		CreatedAt:   start.Add(-24 * time.Hour),
	}
}

func testWebinars(t *testing.T, s store) {
	req := require.New(t)
	ctx := context.Background()

	missing, err := s.webinars.FindByID(ctx, "webinar-1")
	req.NoError(err)
	req.Nil(missing)

	w := sampleWebinar("webinar-1", 3)
	req.NoError(s.webinars.Save(ctx, w))

	got, err := s.webinars.FindByID(ctx, "webinar-1")
	req.NoError(err)
	req.NotNil(got)
	req.Equal(w.OrganizerID, got.OrganizerID)
	req.Equal(w.Title, got.Title)
	req.Equal(3, got.Seats)
	req.True(w.StartDate.Equal(got.StartDate))
	req.True(w.EndDate.Equal(got.EndDate))
}

func testUsers(t *testing.T, s store) {
	req := require.New(t)
	ctx := context.Background()

	u := model.User{ID: "user-1", Email: "dimos@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	req.NoError(s.users.Save(ctx, u))

	byID, err := s.users.FindByID(ctx, "user-1")
	req.NoError(err)
	req.NotNil(byID)
	req.Equal("dimos@example.com", byID.Email)
	req.Equal("hash", byID.PasswordHash)

	byEmail, err := s.users.FindByEmail(ctx, "dimos@example.com")
	req.NoError(err)
	req.NotNil(byEmail)
	req.Equal("user-1", byEmail.ID)
	req.Equal("hash", byEmail.PasswordHash)

	absent, err := s.users.FindByID(ctx, "user-404")
	req.NoError(err)
	req.Nil(absent)

	absent, err = s.users.FindByEmail(ctx, "nobody@example.com")
	req.NoError(err)
	req.Nil(absent)

	dup := model.User{ID: "user-2", Email: "dimos@example.com", PasswordHash: "other", CreatedAt: time.Now().UTC()}
	req.ErrorIs(s.users.Save(ctx, dup), model.ErrEmailTaken)
}

func testParticipations(t *testing.T, s store) {
	req := require.New(t)
	ctx := context.Background()

	req.NoError(s.webinars.Save(ctx, sampleWebinar("webinar-1", 2)))
	req.NoError(s.webinars.Save(ctx, sampleWebinar("webinar-2", 2)))

	none, err := s.participations.FindByWebinarID(ctx, "webinar-1")
	req.NoError(err)
	req.Empty(none)

	req.NoError(s.participations.Save(ctx, model.NewParticipation("user-1", "webinar-1")))
	req.NoError(s.participations.Save(ctx, model.NewParticipation("user-2", "webinar-1")))
	req.NoError(s.participations.Save(ctx, model.NewParticipation("user-1", "webinar-2")))

	err = s.participations.Save(ctx, model.NewParticipation("user-1", "webinar-1"))
	req.ErrorIs(err, model.ErrWebinarAlreadyBooked)

	list, err := s.participations.FindByWebinarID(ctx, "webinar-1")
	req.NoError(err)
	req.Len(list, 2)
	users := []string{list[0].UserID, list[1].UserID}
	req.ElementsMatch([]string{"user-1", "user-2"}, users)
	for _, p := range list {
		req.Equal("webinar-1", p.WebinarID)
	}

	t.Run("ids containing the key separator stay apart", func(t *testing.T) {
		req := require.New(t)
		req.NoError(s.webinars.Save(ctx, sampleWebinar("a", 2)))
		req.NoError(s.webinars.Save(ctx, sampleWebinar("a:b", 2)))

		req.NoError(s.participations.Save(ctx, model.NewParticipation("c", "a:b")))
		list, err := s.participations.FindByWebinarID(ctx, "a")
		req.NoError(err)
		req.Empty(list)

		req.NoError(s.participations.Save(ctx, model.NewParticipation("b:c", "a")))
		req.NoError(s.participations.Save(ctx, model.NewParticipation("c", "a")))

		list, err = s.participations.FindByWebinarID(ctx, "a")
		req.NoError(err)
		req.Len(list, 2)
		req.ElementsMatch([]string{"b:c", "c"}, []string{list[0].UserID, list[1].UserID})

		list, err = s.participations.FindByWebinarID(ctx, "a:b")
		req.NoError(err)
		req.Len(list, 1)
		req.Equal("c", list[0].UserID)
	})
}

// testLocker checks that work run under the same webinar lock never
// overlaps, and that an error from fn is returned as is.
func testLocker(t *testing.T, s store) {
	req := require.New(t)
	ctx := context.Background()
	req.NoError(s.webinars.Save(ctx, sampleWebinar("webinar-1", 1)))

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.locker.WithWebinarLock(ctx, "webinar-1", func(ctx context.Context) error {
				n := atomic.AddInt32(&inside, 1)
				for {
					m := atomic.LoadInt32(&maxInside)
					if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()
	req.Equal(int32(1), atomic.LoadInt32(&maxInside))

	boom := fmt.Errorf("boom")
	err := s.locker.WithWebinarLock(ctx, "webinar-1", func(context.Context) error { return boom })
	req.ErrorIs(err, boom)
}
