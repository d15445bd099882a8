package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"goldloan-portal/internal/core/domain"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type mapStorage struct {
	mu   sync.Mutex
	data map[string][]byte
	err  error
}

func newMapStorage() *mapStorage { return &mapStorage{data: map[string][]byte{}} }

func (m *mapStorage) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.data[key], nil
}

func (m *mapStorage) Set(key string, val []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = val
	return nil
}

func (m *mapStorage) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func token(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	s, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

type SessionSuite struct {
	suite.Suite
	storage *mapStorage
	manager *Manager
	sess    *Session
}

func (s *SessionSuite) SetupTest() {
	s.storage = newMapStorage()
	s.manager = NewManager(s.storage, time.Hour)
	s.sess = s.manager.Acquire("sid-1")
}

func (s *SessionSuite) TestStoreThenRead() {
	tok := token(s.T(), gojwt.MapClaims{"sub": "a", "exp": time.Now().Add(time.Hour).Unix()})

	s.Require().NoError(s.sess.Store(tok))
	s.Equal(tok, s.sess.Credential())
	s.Equal([]byte(tok), s.storage.data[SlotKeyPrefix+"sid-1"])
}

func (s *SessionSuite) TestLogoutClearsEverything() {
	tok := token(s.T(), gojwt.MapClaims{"sub": "a"})
	s.Require().NoError(s.sess.Store(tok))
	s.sess.SetProfile(domain.Profile{Customer: &domain.CustomerProfile{Name: "Asha"}})
	s.sess.ReplaceLoans([]domain.Loan{{ID: "GLN-1", Status: domain.StatusPending}})

	s.sess.Logout()

	s.Empty(s.sess.Credential())
	_, ok := s.sess.Profile()
	s.False(ok)
	s.Empty(s.sess.Loans())
	s.NotContains(s.storage.data, SlotKeyPrefix+"sid-1")
}

func (s *SessionSuite) TestReloadRePrimesFromSlot() {
	tok := token(s.T(), gojwt.MapClaims{"sub": "a"})
	s.Require().NoError(s.sess.Store(tok))

	// a fresh registry simulates a restart: empty holder, same storage
	restarted := NewManager(s.storage, time.Hour).Acquire("sid-1")
	var primed string
	restarted.OnCredential(func(c string) { primed = c })

	s.Equal(tok, restarted.Credential())
	s.Equal(tok, primed)
}

func (s *SessionSuite) TestExpiredReadLogsOut() {
	tok := token(s.T(), gojwt.MapClaims{"sub": "a", "exp": time.Now().Add(-time.Minute).Unix()})
	s.Require().NoError(s.sess.Store(tok))
	s.sess.SetProfile(domain.Profile{Employee: &domain.EmployeeProfile{Role: domain.FineRoleStaff}})

	s.Empty(s.sess.Credential())
	_, ok := s.sess.Profile()
	s.False(ok)
	s.NotContains(s.storage.data, SlotKeyPrefix+"sid-1")
}

func (s *SessionSuite) TestRoleType() {
	s.Equal(domain.RoleCustomer, s.sess.RoleType())

	s.Require().NoError(s.sess.Store(token(s.T(), gojwt.MapClaims{"role": "BANK_ADMIN"})))
	s.Equal(domain.RoleEmployee, s.sess.RoleType())

	s.Require().NoError(s.sess.Store(token(s.T(), gojwt.MapClaims{"authorities": []string{"BANK_STAFF"}})))
	s.Equal(domain.RoleEmployee, s.sess.RoleType())

	s.Require().NoError(s.sess.Store(token(s.T(), gojwt.MapClaims{"role": "CUSTOMER"})))
	s.Equal(domain.RoleCustomer, s.sess.RoleType())

	s.Require().NoError(s.sess.Store(token(s.T(), gojwt.MapClaims{})))
	s.Equal(domain.RoleCustomer, s.sess.RoleType())
}

func (s *SessionSuite) TestSlotErrorIsTolerated() {
	s.storage.err = errors.New("redis down")
	s.Empty(s.sess.Credential())
}

func (s *SessionSuite) TestUpdateLoan() {
	s.sess.ReplaceLoans([]domain.Loan{{ID: "A", Status: domain.StatusPending}, {ID: "B", Status: domain.StatusVerified}})
	before := s.sess.Loans()

	ok := s.sess.UpdateLoan("B", func(l *domain.Loan) { l.Status = domain.StatusGoldSubmitted })
	s.True(ok)
	s.False(s.sess.UpdateLoan("missing", func(*domain.Loan) {}))

	got, _ := s.sess.Loan("B")
	s.Equal(domain.StatusGoldSubmitted, got.Status)
	s.Equal(domain.StatusVerified, before[1].Status, "earlier snapshots are not mutated")
}

func (s *SessionSuite) TestAppendLoan() {
	s.sess.AppendLoan(domain.Loan{ID: "GLN-9", Status: domain.StatusPending})
	s.Len(s.sess.Loans(), 1)
	l, ok := s.sess.Loan("GLN-9")
	s.True(ok)
	s.Equal(domain.StatusPending, l.Status)
}

func (s *SessionSuite) TestAcquireReturnsSameSession() {
	s.Same(s.sess, s.manager.Acquire("sid-1"))
	s.NotSame(s.sess, s.manager.Acquire("sid-2"))
	s.Equal(2, s.manager.Len())
}

func (s *SessionSuite) TestManagerCredentialListener() {
	var events []string
	s.manager.OnCredential(func(sid, c string) { events = append(events, sid+"="+c) })

	sess := s.manager.Acquire("sid-3")
	s.Require().NoError(sess.Store("tok"))
	sess.Logout()

	s.Equal([]string{"sid-3=tok", "sid-3="}, events)
}

func (s *SessionSuite) TestSweepKeepsSlot() {
	tok := token(s.T(), gojwt.MapClaims{"sub": "a"})
	s.Require().NoError(s.sess.Store(tok))

	s.sess.mu.Lock()
	s.sess.lastSeen = time.Now().Add(-2 * time.Hour)
	s.sess.mu.Unlock()

	s.Equal(1, s.manager.Sweep(time.Hour))
	s.Equal(0, s.manager.Len())

	again := s.manager.Acquire("sid-1")
	s.NotSame(s.sess, again)
	s.Equal(tok, again.Credential())
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func TestNonInteractive(t *testing.T) {
	sess := NonInteractive()
	assert.False(t, sess.Interactive())
	assert.Empty(t, sess.Credential())
	assert.Equal(t, domain.RoleCustomer, sess.RoleType())
}

func TestContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	sess := NonInteractive()
	assert.Same(t, sess, FromContext(WithSession(context.Background(), sess)))
}
