package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/caterquest/caterquest/internal/auth"
	"github.com/caterquest/caterquest/internal/models"
)

// RegisterHandler создает учетную запись вместе с профилем роли.
//
//	@Summary  Регистрация учетной записи
//	@Accept   json
//	@Produce  json
//	@Router   /register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.decode(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password, h.deps.BcryptCost)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.deps.Users.CreateUser(r.Context(), req, hash)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			writeErrorMsg(w, http.StatusBadRequest, "Username or email already exists")
			return
		}
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, fmt.Sprintf("%s '%s' registered successfully", user.Role, user.Username))
}

// LoginHandler проверяет учетные данные и открывает сессию.
//
//	@Summary  Вход
//	@Accept   json
//	@Produce  json
//	@Router   /login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.decode(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.deps.Users.FindUserByLogin(r.Context(), req.UsernameOrEmail, req.Role)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeError(w, models.ErrInvalidCredentials)
			return
		}
		writeError(w, err)
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, models.ErrInvalidCredentials)
		return
	}

	session := h.deps.Sessions.Create(user)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		Expires:  session.ExpiresAt,
	})

	writeMessage(w, http.StatusOK, fmt.Sprintf("%s login successful", user.Role))
}

// LogoutHandler закрывает сессию и гасит cookie.
//
//	@Summary  Выход
//	@Produce  json
//	@Router   /logout [post]
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookie); err == nil {
		h.deps.Sessions.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
	writeMessage(w, http.StatusOK, "Logout successful")
}
