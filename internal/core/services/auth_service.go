package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/guard"
	"goldloan-portal/internal/core/session"
	"goldloan-portal/internal/pkg/jwt"
)

// Auth errors
var (
	ErrMissingToken     = errors.New("login succeeded but token missing, please try again")
	ErrOAuthFailed      = errors.New("OAuth login failed, please try again")
	ErrPasswordMismatch = domain.Invalid("confirmPassword", "passwords do not match")
	ErrWeakPassword     = domain.Invalid("password", "must be at least 8 characters")
)

// AuthService handles login, registration and account maintenance
type AuthService struct {
	backend  Backend
	profiles *ProfileService
}

// NewAuthService creates a new auth service
func NewAuthService(backend Backend, profiles *ProfileService) *AuthService {
	return &AuthService{backend: backend, profiles: profiles}
}

// ============================================================
// Login
// ============================================================

// Login authenticates through the portal for role, stores the credential
// and returns where the browser should land
func (s *AuthService) Login(ctx context.Context, sess *session.Session, role domain.Role, in domain.Credentials) (string, error) {
	if err := validateEmail(in.Email); err != nil {
		return "", err
	}
	if in.Password == "" {
		return "", domain.Invalid("password", "is required")
	}

	token, err := s.backend.Login(ctx, role, in)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrMissingToken
	}
	if err := s.startSession(sess, token); err != nil {
		return "", err
	}
	log.Printf("✅ login successful [portal: %s]", role)

	if role == domain.RoleEmployee {
		return guard.PathEmployeeHome, nil
	}
	profile, err := s.profiles.CustomerProfile(ctx, sess)
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return "", err
	case err != nil:
		log.Printf("⚠️ profile fetch after login failed: %v", err)
		return guard.PathKYC, nil
	}
	return customerLanding(profile), nil
}

// OAuthCallback completes a provider login. errParam is the provider's error, if any.
func (s *AuthService) OAuthCallback(ctx context.Context, sess *session.Session, token, errParam string) (string, error) {
	if token == "" {
		if errParam != "" {
			log.Printf("❌ OAuth error: %s", errParam)
		}
		return "", ErrOAuthFailed
	}
	if err := s.startSession(sess, token); err != nil {
		return "", err
	}

	profile, err := s.profiles.CustomerProfile(ctx, sess)
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		sess.Logout()
		return guard.PathLogin, nil
	case err != nil:
		log.Printf("⚠️ profile fetch after OAuth failed: %v", err)
		return guard.PathKYC, nil
	}
	return customerLanding(profile), nil
}

// Landing is where an already authenticated session belongs
func (s *AuthService) Landing(ctx context.Context, sess *session.Session) (string, error) {
	if sess.Credential() == "" {
		return guard.PathLogin, nil
	}
	if sess.RoleType() == domain.RoleEmployee {
		return guard.PathEmployeeHome, nil
	}
	profile, err := s.profiles.CustomerProfile(ctx, sess)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return guard.PathLogin, nil
		}
		return "", err
	}
	return customerLanding(profile), nil
}

// Logout ends the session
func (s *AuthService) Logout(sess *session.Session) {
	sess.Logout()
}

func (s *AuthService) startSession(sess *session.Session, token string) error {
	sess.Logout()
	if err := sess.Store(token); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	log.Printf("✅ session %s signed in as %s (%s)", sess.ID(), jwt.Subject(token), sess.RoleType())
	return nil
}

func customerLanding(p *domain.CustomerProfile) string {
	if p.KycStatus {
		return guard.PathCustomerHome
	}
	return guard.PathKYC
}

// ============================================================
// Registration and passwords
// ============================================================

// Register creates a customer account
func (s *AuthService) Register(ctx context.Context, in domain.Registration, confirm string) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Invalid("name", "is required")
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if err := validateNewPassword(in.Password, confirm); err != nil {
		return err
	}
	return s.backend.RegisterCustomer(ctx, in)
}

// ForgotPassword resets the password of a portal account. Customers must
// confirm their date of birth.
func (s *AuthService) ForgotPassword(ctx context.Context, role domain.Role, in domain.PasswordReset, confirm string) error {
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if role == domain.RoleCustomer {
		if strings.TrimSpace(in.DateOfBirth) == "" {
			return domain.Invalid("dateOfBirth", "is required")
		}
	} else {
		in.DateOfBirth = ""
	}
	if err := validateNewPassword(in.NewPassword, confirm); err != nil {
		return err
	}
	return s.backend.ForgotPassword(ctx, role, in)
}

// ChangePassword changes the password of the session's account
func (s *AuthService) ChangePassword(ctx context.Context, sess *session.Session, in domain.PasswordChange, confirm string) error {
	credential := sess.Credential()
	if credential == "" {
		return domain.ErrNoCredential
	}
	if in.CurrentPassword == "" {
		return domain.Invalid("currentPassword", "is required")
	}
	if err := validateNewPassword(in.NewPassword, confirm); err != nil {
		return err
	}
	err := s.backend.ChangePassword(ctx, sess.RoleType(), credential, in)
	if err != nil {
		return remoteFailed(sess, err)
	}
	return nil
}

// ============================================================
// KYC and staff
// ============================================================

// SubmitKYC sends the KYC form and drops the cached profile so the new status shows
func (s *AuthService) SubmitKYC(ctx context.Context, sess *session.Session, in domain.KYCRequest) (*domain.KYCResult, error) {
	if sess.Credential() == "" {
		return nil, domain.ErrNoCredential
	}
	if err := ValidateKYC(in); err != nil {
		return nil, err
	}
	result, err := s.backend.SubmitKYC(session.WithSession(ctx, sess), in)
	if err != nil {
		return nil, remoteFailed(sess, err)
	}
	s.profiles.Invalidate(sess)
	log.Printf("✅ KYC submitted, KN %s", result.KnNumber)
	return result, nil
}

// CreateEmployee adds a staff account. Callers sit behind the admin guard.
func (s *AuthService) CreateEmployee(ctx context.Context, sess *session.Session, in domain.NewEmployee) error {
	switch {
	case strings.TrimSpace(in.Username) == "":
		return domain.Invalid("username", "is required")
	case strings.TrimSpace(in.FullName) == "":
		return domain.Invalid("fullName", "is required")
	case strings.TrimSpace(in.BranchName) == "":
		return domain.Invalid("branchName", "is required")
	case in.Role != domain.FineRoleAdmin && in.Role != domain.FineRoleStaff:
		return domain.Invalid("role", "must be BANK_ADMIN or BANK_STAFF")
	case len(in.Password) < 8:
		return ErrWeakPassword
	}
	if err := s.backend.CreateEmployee(session.WithSession(ctx, sess), in); err != nil {
		return remoteFailed(sess, err)
	}
	log.Printf("✅ employee %s created [%s]", in.Username, in.Role)
	return nil
}
