package session

import (
	"context"
	"log"
	"sync"
	"time"

	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/pkg/jwt"
	"goldloan-portal/internal/pkg/observable"
)

// Slot is the reloadable storage area holding one credential
type Slot interface {
	Load() (string, error)
	Save(credential string) error
	Clear() error
}

// Session is the explicit per-browser session context.
// The credential lives in an in-memory holder mirrored to a Slot; a session
// without a Slot is the non-interactive rendering context.
type Session struct {
	id   string
	slot Slot

	credential *observable.Value[string]
	loans      *observable.Value[[]domain.Loan]

	mu       sync.Mutex
	profile  *domain.Profile
	lastSeen time.Time
}

// New creates an interactive session backed by slot
func New(id string, slot Slot) *Session {
	return &Session{
		id:         id,
		slot:       slot,
		credential: observable.New(""),
		loans:      observable.New[[]domain.Loan](nil),
		lastSeen:   time.Now(),
	}
}

// NonInteractive creates a session for server-side prerendering: no slot, no credential
func NonInteractive() *Session {
	return New("", nil)
}

// ID returns the browser session id
func (s *Session) ID() string { return s.id }

// Interactive reports whether a storage slot is available
func (s *Session) Interactive() bool { return s.slot != nil }

// Credential returns the current credential, or "" when there is none.
// The in-memory holder wins; on a miss the slot is read and the holder re-primed.
// An expired credential logs the session out.
func (s *Session) Credential() string {
	credential := s.credential.Get()
	if credential == "" && s.slot != nil {
		stored, err := s.slot.Load()
		if err != nil {
			log.Printf("⚠️ session %s: slot load failed: %v", s.id, err)
		}
		if stored != "" {
			s.credential.Set(stored)
			credential = stored
		}
	}
	if credential != "" && jwt.IsExpired(credential) {
		log.Printf("🔒 session %s: credential expired, logging out", s.id)
		s.Logout()
		return ""
	}
	return credential
}

// Store writes credential to the slot and the in-memory holder
func (s *Session) Store(credential string) error {
	if s.slot != nil {
		if err := s.slot.Save(credential); err != nil {
			return err
		}
	}
	s.credential.Set(credential)
	return nil
}

// Logout clears the slot, the holder, the cached profile and the cached loans
func (s *Session) Logout() {
	if s.slot != nil {
		if err := s.slot.Clear(); err != nil {
			log.Printf("⚠️ session %s: slot clear failed: %v", s.id, err)
		}
	}
	s.credential.Set("")
	s.ClearProfile()
	s.loans.Set(nil)
}

// RoleType is the coarse role of the current credential; customer when there is none
func (s *Session) RoleType() domain.Role {
	return domain.CoarseRole(jwt.RoleOf(s.Credential()))
}

// OnCredential registers a listener for credential changes
func (s *Session) OnCredential(fn func(string)) (unsubscribe func()) {
	return s.credential.Subscribe(fn)
}

// Profile returns the cached profile
func (s *Session) Profile() (domain.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return domain.Profile{}, false
	}
	return *s.profile, true
}

// SetProfile caches p
func (s *Session) SetProfile(p domain.Profile) {
	s.mu.Lock()
	s.profile = &p
	s.mu.Unlock()
}

// ClearProfile drops the cached profile
func (s *Session) ClearProfile() {
	s.mu.Lock()
	s.profile = nil
	s.mu.Unlock()
}

// Loans returns a copy of the cached loan list
func (s *Session) Loans() []domain.Loan {
	return append([]domain.Loan(nil), s.loans.Get()...)
}

// Loan returns the cached loan with reference id rid
func (s *Session) Loan(rid string) (domain.Loan, bool) {
	for _, l := range s.loans.Get() {
		if l.ID == rid {
			return l, true
		}
	}
	return domain.Loan{}, false
}

// ReplaceLoans swaps the cached list for an authoritative one
func (s *Session) ReplaceLoans(loans []domain.Loan) {
	s.loans.Set(append([]domain.Loan(nil), loans...))
}

// AppendLoan adds a freshly submitted loan to the cached list
func (s *Session) AppendLoan(l domain.Loan) {
	s.loans.Update(func(cur []domain.Loan) []domain.Loan {
		next := make([]domain.Loan, 0, len(cur)+1)
		next = append(next, cur...)
		return append(next, l)
	})
}

// UpdateLoan applies fn to the cached loan rid. It reports false when rid is not cached.
func (s *Session) UpdateLoan(rid string, fn func(*domain.Loan)) bool {
	found := false
	s.loans.Update(func(cur []domain.Loan) []domain.Loan {
		next := append([]domain.Loan(nil), cur...)
		for i := range next {
			if next[i].ID == rid {
				fn(&next[i])
				found = true
				break
			}
		}
		return next
	})
	return found
}

// Touch records activity for idle eviction
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// LastSeen returns the time of the last Touch
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type ctxKey struct{}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session carried by ctx, or nil
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}
