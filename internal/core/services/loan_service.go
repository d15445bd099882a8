package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"slices"
	"strings"
	"time"

	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/session"
)

// Transition outcomes
const (
	OutcomeOK              = "ok"
	OutcomeRejectedLocally = "rejected_locally"
	OutcomeRemoteError     = "remote_error"
)

// NoRID is reported when the submission message carries no reference id
const NoRID = "N/A"

var ridPattern = regexp.MustCompile(`(?i)RID:\s*([A-Z0-9-]+)|(GLN-[A-Z0-9-]+)$`)

// LoanService runs the loan lifecycle against a session's cached loan list.
// Every transition is applied to the cache before the backend confirms it and
// is not rolled back when the backend refuses; the next refresh reconciles.
type LoanService struct {
	backend  Backend
	profiles *ProfileService
	recorder TransitionRecorder
}

// NewLoanService creates a new loan service. recorder may be nil.
func NewLoanService(backend Backend, profiles *ProfileService, recorder TransitionRecorder) *LoanService {
	return &LoanService{backend: backend, profiles: profiles, recorder: recorder}
}

// ============================================================
// Employee actions
// ============================================================

// Verify marks a pending application as correct
func (s *LoanService) Verify(ctx context.Context, sess *session.Session, rid string) error {
	return s.statusUpdate(ctx, sess, rid, domain.ActionVerify)
}

// FlagForReview sends a pending application back to the customer with a reason
func (s *LoanService) FlagForReview(ctx context.Context, sess *session.Session, rid, reason string) error {
	reason = strings.TrimSpace(reason)
	return s.run(ctx, sess, rid, domain.ActionFlagForReview,
		func(domain.Loan) error {
			if reason == "" {
				return domain.ErrRejectionReasonRequired
			}
			return nil
		},
		func(l *domain.Loan) { l.RejectionReason = &reason },
		func(ctx context.Context, next domain.LoanStatus) error {
			return s.backend.UpdateStatus(ctx, rid, StatusUpdate{NewStatus: next, RejectionReason: &reason})
		},
	)
}

// AcceptGold records the evaluation of submitted gold
func (s *LoanService) AcceptGold(ctx context.Context, sess *session.Session, rid string, qualityIndex, finalOffer float64) error {
	return s.run(ctx, sess, rid, domain.ActionAcceptGold,
		func(domain.Loan) error {
			if !(qualityIndex > 0) || !(finalOffer > 0) {
				return domain.ErrInvalidEvaluation
			}
			return nil
		},
		func(l *domain.Loan) {
			qi, fv := qualityIndex, finalOffer
			l.QualityIndex = &qi
			l.FinalValue = &fv
		},
		func(ctx context.Context, _ domain.LoanStatus) error {
			return s.backend.Evaluate(ctx, rid, Evaluation{FinalValue: finalOffer, QualityIndex: qualityIndex})
		},
	)
}

// RejectGold rejects the submitted gold; the loan becomes terminal
func (s *LoanService) RejectGold(ctx context.Context, sess *session.Session, rid string) error {
	return s.statusUpdate(ctx, sess, rid, domain.ActionRejectGold)
}

// SendOffer makes the evaluated final value available to the customer
func (s *LoanService) SendOffer(ctx context.Context, sess *session.Session, rid string) error {
	return s.statusUpdate(ctx, sess, rid, domain.ActionSendOffer)
}

// RejectEvaluated rejects an evaluated loan instead of making an offer
func (s *LoanService) RejectEvaluated(ctx context.Context, sess *session.Session, rid string) error {
	return s.statusUpdate(ctx, sess, rid, domain.ActionRejectEvaluated)
}

// Disburse pays out an accepted offer
func (s *LoanService) Disburse(ctx context.Context, sess *session.Session, rid string) error {
	return s.run(ctx, sess, rid, domain.ActionDisburse, nil, nil,
		func(ctx context.Context, _ domain.LoanStatus) error { return s.backend.Disburse(ctx, rid) })
}

// CollectGold hands the gold back after the fine is paid
func (s *LoanService) CollectGold(ctx context.Context, sess *session.Session, rid string) error {
	return s.run(ctx, sess, rid, domain.ActionCollectGold, nil, nil,
		func(ctx context.Context, _ domain.LoanStatus) error { return s.backend.CollectGold(ctx, rid) })
}

// ============================================================
// Customer actions
// ============================================================

// SubmitGold confirms the customer brought the gold in
func (s *LoanService) SubmitGold(ctx context.Context, sess *session.Session, rid string) error {
	return s.run(ctx, sess, rid, domain.ActionSubmitGold, nil, nil,
		func(ctx context.Context, _ domain.LoanStatus) error { return s.backend.SubmitGold(ctx, rid) })
}

// AcceptOffer accepts the final offer
func (s *LoanService) AcceptOffer(ctx context.Context, sess *session.Session, rid string) error {
	return s.offerDecision(ctx, sess, rid, domain.ActionAcceptOffer)
}

// RejectOffer declines the final offer; a fine becomes due
func (s *LoanService) RejectOffer(ctx context.Context, sess *session.Session, rid string) error {
	return s.offerDecision(ctx, sess, rid, domain.ActionRejectOffer)
}

// PayFine pays the fixed fine after a declined offer
func (s *LoanService) PayFine(ctx context.Context, sess *session.Session, rid string) error {
	return s.run(ctx, sess, rid, domain.ActionPayFine, nil, nil,
		func(ctx context.Context, _ domain.LoanStatus) error {
			return s.backend.PayFine(ctx, rid, domain.FineAmount)
		})
}

// ReApply resubmits an application flagged for review
func (s *LoanService) ReApply(ctx context.Context, sess *session.Session, rid string) error {
	return s.run(ctx, sess, rid, domain.ActionReApply, nil,
		func(l *domain.Loan) { l.RejectionReason = nil },
		func(ctx context.Context, _ domain.LoanStatus) error { return s.backend.ReApply(ctx, rid) })
}

// Apply dispatches an action by name. reason is used by flag-for-review,
// qualityIndex and finalOffer by accept-gold.
func (s *LoanService) Apply(ctx context.Context, sess *session.Session, rid string, action domain.Action, in ActionInput) error {
	switch action {
	case domain.ActionVerify:
		return s.Verify(ctx, sess, rid)
	case domain.ActionFlagForReview:
		return s.FlagForReview(ctx, sess, rid, in.Reason)
	case domain.ActionSubmitGold:
		return s.SubmitGold(ctx, sess, rid)
	case domain.ActionAcceptGold:
		return s.AcceptGold(ctx, sess, rid, in.QualityIndex, in.FinalOffer)
	case domain.ActionRejectGold:
		return s.RejectGold(ctx, sess, rid)
	case domain.ActionSendOffer:
		return s.SendOffer(ctx, sess, rid)
	case domain.ActionRejectEvaluated:
		return s.RejectEvaluated(ctx, sess, rid)
	case domain.ActionAcceptOffer:
		return s.AcceptOffer(ctx, sess, rid)
	case domain.ActionRejectOffer:
		return s.RejectOffer(ctx, sess, rid)
	case domain.ActionPayFine:
		return s.PayFine(ctx, sess, rid)
	case domain.ActionCollectGold:
		return s.CollectGold(ctx, sess, rid)
	case domain.ActionDisburse:
		return s.Disburse(ctx, sess, rid)
	case domain.ActionReApply:
		return s.ReApply(ctx, sess, rid)
	default:
		s.record(action, OutcomeRejectedLocally)
		return fmt.Errorf("%w: unknown action %q", domain.ErrInvalidTransition, action)
	}
}

// ActionInput carries the side data of Apply
type ActionInput struct {
	Reason       string  `json:"reason"`
	QualityIndex float64 `json:"qualityIndex"`
	FinalOffer   float64 `json:"finalOffer"`
}

// ============================================================
// Application, refresh and detail
// ============================================================

// SubmitApplication validates and submits a new application. The loan is added
// to the cached list as PENDING when the backend message carries a reference id.
func (s *LoanService) SubmitApplication(ctx context.Context, sess *session.Session, app domain.LoanApplication) (*domain.SubmitResult, error) {
	if sess.Credential() == "" {
		return nil, domain.ErrNoCredential
	}
	if sess.RoleType() != domain.RoleCustomer {
		return nil, fmt.Errorf("%w: submit application", domain.ErrActorNotAllowed)
	}

	details, err := s.profiles.CustomerDetails(ctx, sess)
	if err != nil {
		return nil, err
	}
	if !details.KycVerified || details.ID == 0 {
		return nil, domain.Invalid("kyc", "KYC is not verified or Customer ID is missing")
	}
	app.CustomerID = details.ID
	if err := ValidateApplication(app); err != nil {
		return nil, err
	}

	message, err := s.backend.SubmitApplication(session.WithSession(ctx, sess), app)
	if err != nil {
		return nil, remoteFailed(sess, err)
	}

	rid := ExtractRID(message)
	if rid == NoRID {
		log.Printf("⚠️ loan application accepted but no reference id in %q", message)
		return &domain.SubmitResult{Message: message, RID: rid}, nil
	}

	sess.AppendLoan(domain.Loan{
		ID:     rid,
		Type:   "Gold Loan (New)",
		Date:   time.Now().Format("2006-01-02"),
		Kn:     details.KnNumber,
		Name:   details.FullName,
		Amount: app.AmountSeeking,
		Status: domain.StatusPending,
	})
	log.Printf("✅ loan application %s submitted", rid)
	return &domain.SubmitResult{Message: message, RID: rid}, nil
}

// ValidateApplication applies the local form rules
func ValidateApplication(app domain.LoanApplication) error {
	switch {
	case app.AmountSeeking < domain.MinAmountSeeking:
		return domain.Invalid("amountSeeking", "must be at least 1000")
	case strings.TrimSpace(app.ItemType) == "":
		return domain.Invalid("itemType", "is required")
	case app.NumberOfItems < 1:
		return domain.Invalid("numberOfItems", "must be at least 1")
	case strings.TrimSpace(app.Purity) == "":
		return domain.Invalid("purity", "is required")
	case app.NetWeight < domain.MinNetWeight:
		return domain.Invalid("netWeight", "must be at least 0.1")
	case !app.Acknowledgement:
		return domain.Invalid("acknowledgement", "must be accepted")
	}
	return nil
}

// ExtractRID pulls the reference id out of a submission message
func ExtractRID(message string) string {
	m := ridPattern.FindStringSubmatch(strings.TrimSpace(message))
	switch {
	case m == nil:
		return NoRID
	case m[1] != "":
		return m[1]
	case m[2] != "":
		return m[2]
	default:
		return NoRID
	}
}

// RefreshCustomerLoans replaces the cached list with the customer's loans
func (s *LoanService) RefreshCustomerLoans(ctx context.Context, sess *session.Session) ([]domain.Loan, error) {
	loans, err := s.backend.CustomerLoans(session.WithSession(ctx, sess))
	if err != nil {
		return nil, remoteFailed(sess, err)
	}
	return s.replace(sess, loans), nil
}

// RefreshAllLoans replaces the cached list with every application (employee view)
func (s *LoanService) RefreshAllLoans(ctx context.Context, sess *session.Session) ([]domain.Loan, error) {
	loans, err := s.backend.EmployeeLoans(session.WithSession(ctx, sess))
	if err != nil {
		return nil, remoteFailed(sess, err)
	}
	return s.replace(sess, loans), nil
}

func (s *LoanService) replace(sess *session.Session, loans []domain.Loan) []domain.Loan {
	sorted := SortByDateDesc(loans)
	for _, l := range sorted {
		if !l.Status.IsCanonical() {
			log.Printf("⚠️ loan %s has unknown status %q", l.ID, l.Status)
		}
	}
	sess.ReplaceLoans(sorted)
	return sorted
}

// SortByDateDesc returns loans newest first
func SortByDateDesc(loans []domain.Loan) []domain.Loan {
	out := slices.Clone(loans)
	slices.SortStableFunc(out, func(a, b domain.Loan) int { return strings.Compare(b.Date, a.Date) })
	return out
}

// LoanDetails fetches one application through the role's detail endpoint and
// merges it into the cached list
func (s *LoanService) LoanDetails(ctx context.Context, sess *session.Session, rid string) (*domain.LoanDetails, error) {
	ctx = session.WithSession(ctx, sess)

	var (
		details *domain.LoanDetails
		err     error
	)
	if sess.RoleType() == domain.RoleEmployee {
		details, err = s.backend.EmployeeLoan(ctx, rid)
	} else {
		details, err = s.backend.CustomerLoan(ctx, rid)
	}
	if err != nil {
		return nil, remoteFailed(sess, err)
	}

	merge := func(l *domain.Loan) {
		l.Status = details.Status
		l.FinalValue = details.FinalValue
		l.QualityIndex = details.Asset.QualityIndex
		l.RejectionReason = details.RejectionReason
	}
	if !sess.UpdateLoan(rid, merge) {
		l := domain.Loan{
			ID:     details.RID,
			Type:   details.Asset.ItemType,
			Date:   details.Date,
			Kn:     details.Applicant.KnNumber,
			Name:   details.Applicant.FullName,
			Amount: details.Amount,
		}
		if l.ID == "" {
			l.ID = rid
		}
		merge(&l)
		sess.AppendLoan(l)
	}
	return details, nil
}

// ============================================================
// Transition plumbing
// ============================================================

func (s *LoanService) statusUpdate(ctx context.Context, sess *session.Session, rid string, action domain.Action) error {
	return s.run(ctx, sess, rid, action, nil,
		func(l *domain.Loan) { l.RejectionReason = nil },
		func(ctx context.Context, next domain.LoanStatus) error {
			return s.backend.UpdateStatus(ctx, rid, StatusUpdate{NewStatus: next})
		})
}

func (s *LoanService) offerDecision(ctx context.Context, sess *session.Session, rid string, action domain.Action) error {
	return s.run(ctx, sess, rid, action, nil, nil,
		func(ctx context.Context, next domain.LoanStatus) error {
			return s.backend.OfferDecision(ctx, rid, next)
		})
}

// run is the shared transition sequence: actor, cached loan, precondition
// and validate are checked before anything changes; mutate is applied together
// with the new status; confirm is sent last.
func (s *LoanService) run(
	ctx context.Context,
	sess *session.Session,
	rid string,
	action domain.Action,
	validate func(domain.Loan) error,
	mutate func(*domain.Loan),
	confirm func(ctx context.Context, next domain.LoanStatus) error,
) error {
	t, ok := domain.LookupTransition(action)
	if !ok {
		return s.rejectLocally(action, rid, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidTransition, action))
	}
	if sess.Credential() == "" {
		return s.rejectLocally(action, rid, domain.ErrNoCredential)
	}
	if role := sess.RoleType(); role != t.Actor {
		return s.rejectLocally(action, rid, fmt.Errorf("%w: %s is a %s action", domain.ErrActorNotAllowed, action, t.Actor))
	}
	loan, ok := sess.Loan(rid)
	if !ok {
		return s.rejectLocally(action, rid, fmt.Errorf("%w: %s", domain.ErrLoanNotLoaded, rid))
	}
	next, err := domain.NextStatus(action, loan.Status)
	if err != nil {
		return s.rejectLocally(action, rid, err)
	}
	if validate != nil {
		if err := validate(loan); err != nil {
			return s.rejectLocally(action, rid, err)
		}
	}

	sess.UpdateLoan(rid, func(l *domain.Loan) {
		l.Status = next
		if mutate != nil {
			mutate(l)
		}
	})

	if err := confirm(session.WithSession(ctx, sess), next); err != nil {
		s.record(action, OutcomeRemoteError)
		log.Printf("❌ %s %s: backend refused, cached status stays %s: %v", action, rid, next, err)
		return remoteFailed(sess, fmt.Errorf("%s %s: %w", action, rid, err))
	}

	s.record(action, OutcomeOK)
	log.Printf("✅ %s %s: %s → %s", action, rid, loan.Status, next)
	return nil
}

func (s *LoanService) rejectLocally(action domain.Action, rid string, err error) error {
	s.record(action, OutcomeRejectedLocally)
	log.Printf("⚠️ %s %s aborted: %v", action, rid, err)
	return err
}

func (s *LoanService) record(action domain.Action, outcome string) {
	if s.recorder != nil {
		s.recorder.Transition(string(action), outcome)
	}
}
