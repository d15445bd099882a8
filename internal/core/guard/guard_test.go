package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/session"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage map[string][]byte

func (m memStorage) Get(k string) ([]byte, error) { return m[k], nil }
func (m memStorage) Set(k string, v []byte, _ time.Duration) error { m[k] = v; return nil }
func (m memStorage) Delete(k string) error { delete(m, k); return nil }

type fakeProfiles struct {
	role domain.FineRole
	err  error
}

func (f fakeProfiles) FineRole(context.Context, *session.Session) (domain.FineRole, error) {
	return f.role, f.err
}

type countingRecorder map[string]int

func (r countingRecorder) GuardDecision(guard, outcome string) { r[guard+":"+outcome]++ }

func newSession(t *testing.T, claims gojwt.MapClaims) *session.Session {
	t.Helper()
	sess := session.NewManager(memStorage{}, 0).Acquire("sid")
	if claims != nil {
		tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("k"))
		require.NoError(t, err)
		require.NoError(t, sess.Store(tok))
	}
	return sess
}

func TestAuthenticated(t *testing.T) {
	t.Run("non-interactive allows", func(t *testing.T) {
		p := &Policy{Strict: true}
		assert.True(t, p.Authenticated(session.NonInteractive(), "/dashboard").Allow)
	})

	t.Run("permissive allows without credential", func(t *testing.T) {
		p := &Policy{}
		assert.True(t, p.Authenticated(newSession(t, nil), "/dashboard").Allow)
	})

	t.Run("strict redirects without credential", func(t *testing.T) {
		p := &Policy{Strict: true}
		d := p.Authenticated(newSession(t, nil), "/dashboard")
		assert.Equal(t, Decision{Redirect: PathLogin}, d)
	})

	t.Run("strict allows valid credential", func(t *testing.T) {
		p := &Policy{Strict: true}
		sess := newSession(t, gojwt.MapClaims{"sub": "a", "exp": time.Now().Add(time.Hour).Unix()})
		assert.True(t, p.Authenticated(sess, "/dashboard").Allow)
	})

	t.Run("expired credential is cleared", func(t *testing.T) {
		p := &Policy{}
		sess := newSession(t, gojwt.MapClaims{"sub": "a", "exp": time.Now().Add(-time.Hour).Unix()})
		assert.True(t, p.Authenticated(sess, "/dashboard").Allow)
		assert.Empty(t, sess.Credential())
	})

	t.Run("undecodable credential is cleared", func(t *testing.T) {
		p := &Policy{Strict: true}
		sess := newSession(t, nil)
		require.NoError(t, sess.Store("not-a-token"))
		assert.Equal(t, PathLogin, p.Authenticated(sess, "/dashboard").Redirect)
		assert.Empty(t, sess.Credential())
	})
}

func TestCustomer(t *testing.T) {
	p := &Policy{}

	assert.True(t, p.Customer(session.NonInteractive(), "/dashboard").Allow)
	assert.Equal(t, PathLogin, p.Customer(newSession(t, nil), "/dashboard").Redirect)
	assert.True(t, p.Customer(newSession(t, gojwt.MapClaims{"role": "CUSTOMER"}), "/dashboard").Allow)

	employee := newSession(t, gojwt.MapClaims{"role": "BANK_STAFF"})
	d := p.Customer(employee, "/dashboard")
	assert.Equal(t, PathEmployeeHome, d.Redirect)
	assert.NotEmpty(t, employee.Credential(), "an employee is redirected home, not logged out")
}

func TestEmployee(t *testing.T) {
	p := &Policy{}

	assert.Equal(t, PathLogin, p.Employee(newSession(t, nil), "/employee/dashboard").Redirect)
	assert.Equal(t, PathLogin, p.Employee(session.NonInteractive(), "/employee/dashboard").Redirect)
	assert.True(t, p.Employee(newSession(t, gojwt.MapClaims{"authorities": []string{"BANK_ADMIN"}}), "/employee/dashboard").Allow)
	assert.Equal(t, PathCustomerHome, p.Employee(newSession(t, gojwt.MapClaims{"role": "CUSTOMER"}), "/employee/dashboard").Redirect)
}

func TestAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin allowed", func(t *testing.T) {
		p := &Policy{Profiles: fakeProfiles{role: domain.FineRoleAdmin}}
		assert.True(t, p.Admin(ctx, newSession(t, gojwt.MapClaims{"role": "BANK_ADMIN"}), "/employee/create").Allow)
	})

	t.Run("staff sent home", func(t *testing.T) {
		p := &Policy{Profiles: fakeProfiles{role: domain.FineRoleStaff}}
		assert.Equal(t, PathEmployeeHome, p.Admin(ctx, newSession(t, gojwt.MapClaims{"role": "BANK_STAFF"}), "/employee/create").Redirect)
	})

	t.Run("fetch failure logs out", func(t *testing.T) {
		p := &Policy{Profiles: fakeProfiles{err: errors.New("boom")}}
		sess := newSession(t, gojwt.MapClaims{"role": "BANK_ADMIN"})
		assert.Equal(t, PathLogin, p.Admin(ctx, sess, "/employee/create").Redirect)
		assert.Empty(t, sess.Credential())
	})
}

func TestRecorder(t *testing.T) {
	rec := countingRecorder{}
	p := &Policy{Recorder: rec}

	p.Customer(newSession(t, gojwt.MapClaims{"role": "BANK_STAFF"}), "/dashboard")
	p.Employee(newSession(t, nil), "/employee/dashboard")

	assert.Equal(t, 1, rec["customer:redirect_home"])
	assert.Equal(t, 1, rec["employee:redirect_login"])
}
