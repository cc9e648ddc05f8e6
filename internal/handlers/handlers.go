// Package handlers содержит HTTP-обработчики маркетплейса.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/caterquest/caterquest/internal/auth"
	"github.com/caterquest/caterquest/internal/catalog"
	"github.com/caterquest/caterquest/internal/chat"
	"github.com/caterquest/caterquest/internal/kafka"
	"github.com/caterquest/caterquest/internal/models"
	"github.com/caterquest/caterquest/internal/repository"
	"github.com/caterquest/caterquest/internal/retry"
	"github.com/caterquest/caterquest/internal/validation"
	"github.com/go-playground/validator/v10"
)

// Deps перечисляет зависимости обработчиков.
type Deps struct {
	Users      repository.UserStore
	Menus      repository.MenuStore
	Orders     repository.OrderStore
	Ratings    repository.RatingStore
	Catalog    *catalog.Service
	Sessions   *auth.Manager
	Notifier   kafka.Notifier
	Registry   *chat.Registry
	Validate   *validator.Validate
	ReadPolicy retry.Policy
	BcryptCost int
}

type Handler struct {
	deps Deps
}

func NewHandler(deps Deps) *Handler {
	if deps.Validate == nil {
		deps.Validate = validation.New()
	}
	if deps.ReadPolicy.MaxAttempts == 0 {
		deps.ReadPolicy = retry.DefaultRead
	}
	return &Handler{deps: deps}
}

// HealthHandler возвращает статус 200 OK и тело "OK" для проверки состояния сервера.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeErrorMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError отображает доменную ошибку в HTTP-статус.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidItem),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrConflict):
		writeErrorMsg(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		writeErrorMsg(w, http.StatusUnauthorized, "Invalid credentials or role mismatch")
	case errors.Is(err, models.ErrForbidden):
		writeErrorMsg(w, http.StatusForbidden, "Access denied.")
	case errors.Is(err, models.ErrNotFound):
		writeErrorMsg(w, http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrDataUnavailable):
		writeErrorMsg(w, http.StatusInternalServerError, "data unavailable")
	default:
		writeErrorMsg(w, http.StatusInternalServerError, "internal error")
	}
}

func logPublishError(event string, err error) {
	log.Printf("failed to publish %s event: %v", event, err)
}

// decode разбирает тело запроса и прогоняет схему через валидатор.
func (h *Handler) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return h.deps.Validate.Struct(v)
}

// requireRole достает сессию из контекста и сверяет роль.
func (h *Handler) requireRole(w http.ResponseWriter, r *http.Request, role models.Role) (auth.Session, bool) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		writeErrorMsg(w, http.StatusForbidden, "forbidden")
		return auth.Session{}, false
	}
	if session.Role != role {
		writeError(w, models.ErrForbidden)
		return auth.Session{}, false
	}
	return session, true
}
