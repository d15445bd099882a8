package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/session"

	"golang.org/x/sync/singleflight"
)

// ErrSessionChanged means the session logged out or switched credential while a profile was in flight
var ErrSessionChanged = fmt.Errorf("session changed during profile fetch: %w", domain.ErrUnauthenticated)

// ProfileService resolves and caches the profile behind a session
type ProfileService struct {
	backend Backend
	flight  singleflight.Group
}

// NewProfileService creates a new profile service
func NewProfileService(backend Backend) *ProfileService {
	return &ProfileService{backend: backend}
}

// CustomerProfile returns the cached customer profile, fetching it on a miss
func (s *ProfileService) CustomerProfile(ctx context.Context, sess *session.Session) (*domain.CustomerProfile, error) {
	if p, ok := sess.Profile(); ok && p.Customer != nil {
		return p.Customer, nil
	}
	credential := sess.Credential()
	v, err, _ := s.flight.Do(flightKey(sess, domain.RoleCustomer), func() (any, error) {
		return s.backend.CustomerProfile(session.WithSession(ctx, sess))
	})
	if err != nil {
		return nil, remoteFailed(sess, err)
	}
	if !sameCredential(sess, credential) {
		return nil, ErrSessionChanged
	}
	profile := v.(*domain.CustomerProfile)
	sess.SetProfile(domain.Profile{Customer: profile})
	return profile, nil
}

// EmployeeProfile returns the cached employee profile, fetching it on a miss
func (s *ProfileService) EmployeeProfile(ctx context.Context, sess *session.Session) (*domain.EmployeeProfile, error) {
	if p, ok := sess.Profile(); ok && p.Employee != nil {
		return p.Employee, nil
	}
	credential := sess.Credential()
	v, err, _ := s.flight.Do(flightKey(sess, domain.RoleEmployee), func() (any, error) {
		return s.backend.EmployeeProfile(session.WithSession(ctx, sess))
	})
	if err != nil {
		return nil, remoteFailed(sess, err)
	}
	if !sameCredential(sess, credential) {
		return nil, ErrSessionChanged
	}
	profile := v.(*domain.EmployeeProfile)
	sess.SetProfile(domain.Profile{Employee: profile})
	return profile, nil
}

// FineRole is the staff/admin role of an employee session; "" for customers
func (s *ProfileService) FineRole(ctx context.Context, sess *session.Session) (domain.FineRole, error) {
	if sess.RoleType() != domain.RoleEmployee {
		return "", nil
	}
	p, err := s.EmployeeProfile(ctx, sess)
	if err != nil {
		return "", err
	}
	return p.Role, nil
}

// CustomerDetails fetches the loan application pre-fill
func (s *ProfileService) CustomerDetails(ctx context.Context, sess *session.Session) (*domain.CustomerDetails, error) {
	details, err := s.backend.CustomerDetails(session.WithSession(ctx, sess))
	if err != nil {
		return nil, remoteFailed(sess, err)
	}
	return details, nil
}

// Invalidate drops the cached profile so the next read refetches
func (s *ProfileService) Invalidate(sess *session.Session) {
	sess.ClearProfile()
}

// sameCredential reports whether sess still holds the credential a fetch started with
func sameCredential(sess *session.Session, credential string) bool {
	current := sess.Credential()
	return current != "" && current == credential
}

func flightKey(sess *session.Session, role domain.Role) string {
	return fmt.Sprintf("%p:%s", sess, role)
}

// remoteFailed logs the session out on authentication failures and returns err unchanged
func remoteFailed(sess *session.Session, err error) error {
	if errors.Is(err, domain.ErrUnauthenticated) {
		log.Printf("🔒 session %s: backend rejected credential, logging out", sess.ID())
		sess.Logout()
	}
	return err
}
