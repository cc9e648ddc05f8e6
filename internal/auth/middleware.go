package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

// SessionCookie — имя cookie с токеном сессии.
const SessionCookie = "session_token"

type ctxKey struct{}

// Middleware требует действующую сессию. Отсутствие или просроченность
// сессии дает 403: подмена фиксированной личностью не допускается.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil {
			forbidden(w)
			return
		}
		session, ok := m.Get(cookie.Value)
		if !ok {
			forbidden(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// WithSession кладет сессию в контекст запроса.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext возвращает сессию запроса.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

func forbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
}
