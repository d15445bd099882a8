package services_test

import (
	"sync"
	"testing"
	"time"

	"goldloan-portal/internal/adapters/persistence/storage"
	"goldloan-portal/internal/core/session"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const rid = "GLN-2024-001"

func signed(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	s, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

// loggedIn returns an interactive session holding a credential with role claim
func loggedIn(t *testing.T, role string) *session.Session {
	t.Helper()
	manager := session.NewManager(storage.NewMemory(), time.Hour)
	sess := manager.Acquire("sid-" + t.Name())
	claims := gojwt.MapClaims{"sub": "user@example.com", "exp": time.Now().Add(time.Hour).Unix()}
	if role != "" {
		claims["role"] = role
	}
	require.NoError(t, sess.Store(signed(t, claims)))
	return sess
}

func customer(t *testing.T) *session.Session { return loggedIn(t, "CUSTOMER") }
func staff(t *testing.T) *session.Session    { return loggedIn(t, "BANK_STAFF") }

type transitionCall struct{ action, outcome string }

type recorder struct {
	mu    sync.Mutex
	calls []transitionCall
}

func (r *recorder) Transition(action, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, transitionCall{action, outcome})
}

func (r *recorder) last() transitionCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return transitionCall{}
	}
	return r.calls[len(r.calls)-1]
}

func ptr[T any](v T) *T { return &v }
