package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shivanand-hulikatti/webinar-booking/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type txKey struct{}

// querier is the subset of pgx shared by the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func conn(ctx context.Context, db *pgxpool.Pool) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// PostgresLocker serializes bookings with a row-level lock on the webinar.
type PostgresLocker struct {
	db *pgxpool.Pool
}

// NewPostgresLocker constructs a PostgresLocker.
func NewPostgresLocker(db *pgxpool.Pool) *PostgresLocker {
	return &PostgresLocker{db: db}
}

// WithWebinarLock runs fn inside a transaction that holds
// SELECT ... FOR UPDATE on the webinar row. Concurrent callers for the same
// webinar block until the transaction commits or rolls back, so the
// duplicate and capacity checks made by fn see every earlier booking.
//
// A missing webinar row takes no lock; fn is still called and is expected
// to report the webinar as not found.
func (l *PostgresLocker) WithWebinarLock(ctx context.Context, webinarID string, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var id string
	err = tx.QueryRow(ctx, `SELECT id FROM webinars WHERE id = $1 FOR UPDATE`, webinarID).Scan(&id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("lock webinar row: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// PostgresWebinarRepository handles persistence for webinars.
type PostgresWebinarRepository struct {
	db *pgxpool.Pool
}

// NewPostgresWebinarRepository constructs a PostgresWebinarRepository.
func NewPostgresWebinarRepository(db *pgxpool.Pool) *PostgresWebinarRepository {
	return &PostgresWebinarRepository{db: db}
}

// FindByID returns the webinar, or nil when no row matches.
func (r *PostgresWebinarRepository) FindByID(ctx context.Context, id string) (*model.Webinar, error) {
	var w model.Webinar
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, organizer_id, title, start_date, end_date, seats, created_at
		 FROM webinars WHERE id = $1`,
		id,
	).Scan(&w.ID, &w.OrganizerID, &w.Title, &w.StartDate, &w.EndDate, &w.Seats, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webinar: %w", err)
	}
	return &w, nil
}

// Save upserts a webinar.
func (r *PostgresWebinarRepository) Save(ctx context.Context, w model.Webinar) error {
	_, err := conn(ctx, r.db).Exec(ctx,
		`INSERT INTO webinars (id, organizer_id, title, start_date, end_date, seats, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE
		 SET title = EXCLUDED.title, start_date = EXCLUDED.start_date,
		     end_date = EXCLUDED.end_date, seats = EXCLUDED.seats`,
		w.ID, w.OrganizerID, w.Title, w.StartDate, w.EndDate, w.Seats, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save webinar: %w", err)
	}
	return nil
}

// PostgresUserRepository handles persistence for users.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository constructs a PostgresUserRepository.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// FindByID returns the user, or nil when no row matches.
func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`, id)
}

// FindByEmail returns the user owning email, or nil.
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`, email)
}

func (r *PostgresUserRepository) findOne(ctx context.Context, sql string, arg string) (*model.User, error) {
	var u model.User
	err := conn(ctx, r.db).QueryRow(ctx, sql, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Save inserts a user. A duplicate email maps to model.ErrEmailTaken.
func (r *PostgresUserRepository) Save(ctx context.Context, u model.User) error {
	_, err := conn(ctx, r.db).Exec(ctx,
		`INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Email, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// PostgresParticipationRepository handles persistence for participations.
// The participations table carries UNIQUE (user_id, webinar_id).
type PostgresParticipationRepository struct {
	db *pgxpool.Pool
}

// NewPostgresParticipationRepository constructs a PostgresParticipationRepository.
func NewPostgresParticipationRepository(db *pgxpool.Pool) *PostgresParticipationRepository {
	return &PostgresParticipationRepository{db: db}
}

// FindByWebinarID lists every participation on a webinar.
func (r *PostgresParticipationRepository) FindByWebinarID(ctx context.Context, webinarID string) ([]model.Participation, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT id, user_id, webinar_id, created_at
		 FROM participations
		 WHERE webinar_id = $1
		 ORDER BY created_at ASC`,
		webinarID,
	)
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}
	defer rows.Close()

	var participations []model.Participation
	for rows.Next() {
		var p model.Participation
		if err := rows.Scan(&p.ID, &p.UserID, &p.WebinarID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan participation: %w", err)
		}
		participations = append(participations, p)
	}
	return participations, rows.Err()
}

// Save inserts a participation. A duplicate (user, webinar) pair maps to
// model.ErrWebinarAlreadyBooked.
func (r *PostgresParticipationRepository) Save(ctx context.Context, p model.Participation) error {
	_, err := conn(ctx, r.db).Exec(ctx,
		`INSERT INTO participations (id, user_id, webinar_id, created_at)
		 VALUES ($1, $2, $3, $4)`,
		p.ID, p.UserID, p.WebinarID, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrWebinarAlreadyBooked
		}
		return fmt.Errorf("insert participation: %w", err)
	}
	return nil
}
