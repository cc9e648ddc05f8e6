package auth

import (
	"testing"
	"time"

	"github.com/caterquest/caterquest/internal/models"
)

func TestManagerSessionLifecycle(t *testing.T) {
	m := NewManager(time.Hour)
	user := &models.AuthUser{UserID: 7, Username: "alice", Role: models.RoleCustomer}

	s := m.Create(user)
	if s.Token == "" {
		t.Fatal("expected non-empty token")
	}

	got, ok := m.Get(s.Token)
	if !ok {
		t.Fatal("expected session to be found")
	}
	if got.UserID != 7 || got.Role != models.RoleCustomer {
		t.Fatalf("unexpected session: %+v", got)
	}

	m.Delete(s.Token)
	if _, ok := m.Get(s.Token); ok {
		t.Fatal("expected session to be gone after Delete")
	}
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager(time.Minute)
	current := time.Now()
	m.now = func() time.Time { return current }

	s := m.Create(&models.AuthUser{UserID: 1, Username: "bob", Role: models.RoleVendor})

	current = current.Add(2 * time.Minute)
	if _, ok := m.Get(s.Token); ok {
		t.Fatal("expected expired session to be treated as absent")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !CheckPassword(hash, "secret123") {
		t.Fatal("expected password to match its hash")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("expected mismatch for wrong password")
	}
}
