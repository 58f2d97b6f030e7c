// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Shivanand-hulikatti/webinar-booking/internal/model"
	"github.com/Shivanand-hulikatti/webinar-booking/internal/service"
	"github.com/go-chi/chi/v5"
)

// Seat booking, organizer and account operations the handlers depend on.
type (
	SeatBooker interface {
		Execute(ctx context.Context, in service.BookSeatInput) error
	}

	WebinarOrganizer interface {
		Organize(ctx context.Context, organizer model.User, req model.CreateWebinarRequest) (*model.Webinar, error)
		Get(ctx context.Context, id string) (*model.WebinarResponse, error)
		Participations(ctx context.Context, id string) ([]model.Participation, error)
	}

	Accounts interface {
		Register(ctx context.Context, req model.CredentialsRequest) (*model.User, error)
		Login(ctx context.Context, req model.CredentialsRequest) (string, error)
		Authenticator
	}
)

// WebinarHandler holds all HTTP handlers for the webinar booking API.
type WebinarHandler struct {
	bookSeat SeatBooker
	webinars WebinarOrganizer
	accounts Accounts
	log      *slog.Logger
}

// NewWebinarHandler constructs a WebinarHandler.
func NewWebinarHandler(bookSeat SeatBooker, webinars WebinarOrganizer, accounts Accounts, log *slog.Logger) *WebinarHandler {
	return &WebinarHandler{bookSeat: bookSeat, webinars: webinars, accounts: accounts, log: log}
}

// Routes mounts every endpoint on a new chi router.
func (h *WebinarHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", HealthCheck)

	r.Post("/users", h.RegisterUser)
	r.Post("/login", h.Login)

	r.Route("/webinars", func(r chi.Router) {
		r.With(RequireUser(h.accounts)).Post("/", h.OrganizeWebinar)
		r.Get("/{id}", h.GetWebinar)
		r.With(RequireUser(h.accounts)).Post("/{id}/participations", h.BookSeat)
		r.Get("/{id}/participations", h.ListParticipations)
	})

	return r
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

const (
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidInput       = "invalid_input"
	codeUnauthorized       = "unauthorized"
	codeWebinarNotFound    = "webinar_not_found"
	codeAlreadyBooked      = "webinar_already_booked"
	codeNoMoreSeats        = "webinar_no_more_seats"
	codeEmailTaken         = "email_taken"
	codeInternalError      = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg, Code: code})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeServiceError maps domain errors onto HTTP statuses.
func (h *WebinarHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrWebinarNotFound):
		writeError(w, http.StatusNotFound, codeWebinarNotFound, "webinar not found")
	case errors.Is(err, model.ErrWebinarAlreadyBooked):
		writeError(w, http.StatusConflict, codeAlreadyBooked, "you already booked a seat on this webinar")
	case errors.Is(err, model.ErrWebinarNoMoreSeats):
		writeError(w, http.StatusConflict, codeNoMoreSeats, "webinar has no more seats available")
	case errors.Is(err, model.ErrEmailTaken):
		writeError(w, http.StatusConflict, codeEmailTaken, "email already registered")
	case errors.Is(err, model.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, codeInvalidInput, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials), errors.Is(err, model.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid credentials")
	default:
		h.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// RegisterUser handles POST /users
func (h *WebinarHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body: "+err.Error())
		return
	}

	user, err := h.accounts.Register(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /login
// Returns a bearer token for the given credentials.
func (h *WebinarHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body: "+err.Error())
		return
	}

	token, err := h.accounts.Login(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{Token: token})
}

// OrganizeWebinar handles POST /webinars
// The authenticated user becomes the organizer.
func (h *WebinarHandler) OrganizeWebinar(w http.ResponseWriter, r *http.Request) {
	var req model.CreateWebinarRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body: "+err.Error())
		return
	}

	webinar, err := h.webinars.Organize(r.Context(), UserFromContext(r.Context()), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, webinar)
}

// GetWebinar handles GET /webinars/{id}
func (h *WebinarHandler) GetWebinar(w http.ResponseWriter, r *http.Request) {
	webinar, err := h.webinars.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, webinar)
}

// BookSeat handles POST /webinars/{id}/participations
// Books a seat for the authenticated user.
func (h *WebinarHandler) BookSeat(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user := UserFromContext(r.Context())

	if err := h.bookSeat.Execute(r.Context(), service.BookSeatInput{WebinarID: id, User: user}); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.BookingResponse{WebinarID: id, UserID: user.ID})
}

// ListParticipations handles GET /webinars/{id}/participations
func (h *WebinarHandler) ListParticipations(w http.ResponseWriter, r *http.Request) {
	participations, err := h.webinars.Participations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	// Return an empty array rather than null for better client compatibility.
	if participations == nil {
		participations = []model.Participation{}
	}

	writeJSON(w, http.StatusOK, participations)
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
