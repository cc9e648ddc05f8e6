package auth

import (
	"sync"
	"time"

	"github.com/caterquest/caterquest/internal/models"
	"github.com/google/uuid"
)

// Session привязывает непрозрачный токен к учетной записи.
type Session struct {
	Token     string
	UserID    int64
	Username  string
	Role      models.Role
	ExpiresAt time.Time
}

// Manager хранит активные сессии в памяти процесса.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create открывает сессию для учетной записи и возвращает ее токен.
func (m *Manager) Create(user *models.AuthUser) Session {
	s := Session{
		Token:     uuid.NewString(),
		UserID:    user.UserID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: m.now().Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()

	return s
}

// Get возвращает сессию по токену; просроченная сессия удаляется лениво.
func (m *Manager) Get(token string) (Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return Session{}, false
	}
	if m.now().After(s.ExpiresAt) {
		m.Delete(token)
		return Session{}, false
	}
	return s, true
}

// Delete закрывает сессию.
func (m *Manager) Delete(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
