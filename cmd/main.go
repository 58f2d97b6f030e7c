// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shivanand-hulikatti/webinar-booking/internal/config"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/database"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/handler"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/notify"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/repository"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "webinar-booking: %v\n", err)
		os.Exit(1)
	}
}

// stores bundles the repositories of one storage driver.
type stores struct {
	webinars       repository.WebinarRepository
	users          repository.UserRepository
	participations repository.ParticipationRepository
	locker         repository.Locker
	close          func()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 1. Open storage ───────────────────────────────────────────────────
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()
	log.Info("storage ready", "driver", cfg.StorageDriver)

	// ── 2. Wire up layers ────────────────────────────────────────────────
	var mailer notify.Notifier = notify.NewLogMailer(log)
	if cfg.Mail.Driver == config.MailerSMTP {
		mailer = notify.NewSMTPMailer(notify.SMTPConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		})
	}

	bookSeat := service.NewBookSeat(st.participations, st.users, st.webinars, st.locker, mailer, log)
	webinarSvc := service.NewWebinarService(st.webinars, st.participations)
	userSvc := service.NewUserService(st.users, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	webinarHandler := handler.NewWebinarHandler(bookSeat, webinarSvc, userSvc, log)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(handler.Logger(log))
	r.Use(handler.CORS)

	r.Mount("/", webinarHandler.Routes())

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func openStores(ctx context.Context, cfg config.Config, log *slog.Logger) (stores, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.DB, log)
		if err != nil {
			return stores{}, fmt.Errorf("database: %w", err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return stores{}, fmt.Errorf("apply migrations: %w", err)
		}
		return stores{
			webinars:       repository.NewPostgresWebinarRepository(pool),
			users:          repository.NewPostgresUserRepository(pool),
			participations: repository.NewPostgresParticipationRepository(pool),
			locker:         repository.NewPostgresLocker(pool),
			close:          pool.Close,
		}, nil

	case config.StorageBadger:
		db, err := database.OpenBadger(cfg.Badger.Path, log)
		if err != nil {
			return stores{}, err
		}
		return stores{
			webinars:       repository.NewBadgerWebinarRepository(db),
			users:          repository.NewBadgerUserRepository(db),
			participations: repository.NewBadgerParticipationRepository(db),
			locker:         repository.NewKeyedLocker(),
			close: func() {
				if err := db.Close(); err != nil {
					log.Error("close badger", "error", err)
				}
			},
		}, nil

	default:
		return stores{
			webinars:       repository.NewMemoryWebinarRepository(),
			users:          repository.NewMemoryUserRepository(),
			participations: repository.NewMemoryParticipationRepository(),
			locker:         repository.NewKeyedLocker(),
			close:          func() {},
		}, nil
	}
}
