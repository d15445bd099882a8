package guard

import (
	"context"
	"log"

	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/session"
	"goldloan-portal/internal/pkg/jwt"
)

// Navigation targets
const (
	PathLogin        = "/login"
	PathCustomerHome = "/dashboard"
	PathEmployeeHome = "/employee/dashboard"
	PathKYC          = "/kyc"
)

// Guard names, used as metric labels
const (
	NameAuthenticated = "authenticated"
	NameCustomer      = "customer"
	NameEmployee      = "employee"
	NameAdmin         = "admin"
)

// Decision is the outcome of a guard: allow, or redirect to Redirect
type Decision struct {
	Allow    bool
	Redirect string
}

// Outcome is a short label for metrics and logs
func (d Decision) Outcome() string {
	if d.Allow {
		return "allow"
	}
	switch d.Redirect {
	case PathLogin:
		return "redirect_login"
	case PathCustomerHome, PathEmployeeHome:
		return "redirect_home"
	default:
		return "redirect"
	}
}

func allow() Decision { return Decision{Allow: true} }
func redirect(path string) Decision { return Decision{Redirect: path} }

// FineRoles resolves the staff/admin role of an employee session
type FineRoles interface {
	FineRole(ctx context.Context, sess *session.Session) (domain.FineRole, error)
}

// Recorder counts guard decisions
type Recorder interface {
	GuardDecision(guard, outcome string)
}

// Policy evaluates the four access guards
type Policy struct {
	// Strict makes Authenticated redirect to login when the credential is invalid.
	// When false the guard only logs its result and lets navigation through.
	Strict   bool
	Profiles FineRoles
	Recorder Recorder
}

// Authenticated checks for a decodable, non-expired credential.
// Non-interactive sessions are allowed provisionally.
func (p *Policy) Authenticated(sess *session.Session, path string) Decision {
	if !sess.Interactive() {
		return p.record(NameAuthenticated, allow())
	}

	credential := sess.Credential()
	valid := credential != "" && len(jwt.Decode(credential)) > 0
	if credential != "" && !valid {
		sess.Logout()
	}
	log.Printf("🔐 auth guard %s: authenticated=%t", path, valid)

	if !valid && p.Strict {
		return p.record(NameAuthenticated, redirect(PathLogin))
	}
	return p.record(NameAuthenticated, allow())
}

// Customer admits customers and sends employees to their own home
func (p *Policy) Customer(sess *session.Session, path string) Decision {
	if !sess.Interactive() {
		return p.record(NameCustomer, allow())
	}
	if sess.Credential() == "" {
		return p.record(NameCustomer, redirect(PathLogin))
	}
	switch sess.RoleType() {
	case domain.RoleCustomer:
		return p.record(NameCustomer, allow())
	case domain.RoleEmployee:
		return p.record(NameCustomer, redirect(PathEmployeeHome))
	default:
		log.Printf("⚠️ customer guard %s: unknown role, logging out", path)
		sess.Logout()
		return p.record(NameCustomer, redirect(PathLogin))
	}
}

// Employee admits employees and sends customers to their own home
func (p *Policy) Employee(sess *session.Session, path string) Decision {
	if sess.Credential() == "" {
		return p.record(NameEmployee, redirect(PathLogin))
	}
	switch sess.RoleType() {
	case domain.RoleEmployee:
		return p.record(NameEmployee, allow())
	case domain.RoleCustomer:
		return p.record(NameEmployee, redirect(PathCustomerHome))
	default:
		log.Printf("⚠️ employee guard %s: unknown role, logging out", path)
		sess.Logout()
		return p.record(NameEmployee, redirect(PathLogin))
	}
}

// Admin admits BANK_ADMIN employees. It assumes a credential was already checked.
func (p *Policy) Admin(ctx context.Context, sess *session.Session, path string) Decision {
	role, err := p.Profiles.FineRole(ctx, sess)
	if err != nil {
		log.Printf("❌ admin guard %s: profile fetch failed: %v", path, err)
		sess.Logout()
		return p.record(NameAdmin, redirect(PathLogin))
	}
	if role == domain.FineRoleAdmin {
		return p.record(NameAdmin, allow())
	}
	return p.record(NameAdmin, redirect(PathEmployeeHome))
}

func (p *Policy) record(guard string, d Decision) Decision {
	if p.Recorder != nil {
		p.Recorder.GuardDecision(guard, d.Outcome())
	}
	return d
}
