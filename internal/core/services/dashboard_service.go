package services

import (
	"context"
	"errors"
	"log"

	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/session"

	"golang.org/x/sync/errgroup"
)

// DashboardService assembles the customer and employee dashboards
type DashboardService struct {
	profiles *ProfileService
	loans    *LoanService
	bullion  *BullionService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(profiles *ProfileService, loans *LoanService, bullion *BullionService) *DashboardService {
	return &DashboardService{profiles: profiles, loans: loans, bullion: bullion}
}

// ============================================================
// Customer Dashboard
// ============================================================

// CustomerDashboardData represents customer dashboard data
type CustomerDashboardData struct {
	UserName   string            `json:"userName"`
	KycStatus  string            `json:"kycStatus"`
	KnNumber   *string           `json:"knNumber"`
	Loans      []LoanView        `json:"loans"`
	GoldPrices []domain.GoldRate `json:"goldPrices"`
}

// LoanView is a cached loan plus the actions its viewer may take
type LoanView struct {
	domain.Loan
	Actions []domain.Action `json:"actions"`
	Closed  bool            `json:"closed"`
}

// GetCustomerDashboard loads profile, loans and gold rates in parallel.
// Profile and rate failures degrade the view; an authentication failure aborts it.
func (s *DashboardService) GetCustomerDashboard(ctx context.Context, sess *session.Session) (*CustomerDashboardData, error) {
	data := &CustomerDashboardData{UserName: "Guest", KycStatus: domain.KycNotApplied}

	var (
		profile *domain.CustomerProfile
		loans   []domain.Loan
		rates   []domain.GoldRate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.CustomerProfile(gctx, sess)
		if err != nil {
			return tolerate("customer profile", err)
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		l, err := s.loans.RefreshCustomerLoans(gctx, sess)
		if err != nil {
			return tolerate("customer loans", err)
		}
		loans = l
		return nil
	})
	g.Go(func() error {
		r, err := s.bullion.Rates(gctx)
		if err != nil {
			log.Printf("⚠️ dashboard: gold rates unavailable: %v", err)
			return nil
		}
		rates = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if profile != nil {
		data.UserName = profile.Name
		data.KycStatus = profile.KycDisplayStatus()
		data.KnNumber = profile.KnNumber
	}
	data.Loans = views(loans, domain.RoleCustomer)
	data.GoldPrices = rates
	return data, nil
}

// ============================================================
// Employee Dashboard
// ============================================================

// EmployeeDashboardData represents employee dashboard data
type EmployeeDashboardData struct {
	Employee *domain.EmployeeProfile `json:"employee"`
	Stats    LoanStats               `json:"stats"`
	Loans    []LoanView              `json:"loans"`
}

// LoanStats counts applications by stage
type LoanStats struct {
	Total            int `json:"total"`
	PendingReview    int `json:"pendingReview"`
	AwaitingGold     int `json:"awaitingGold"`
	AwaitingEval     int `json:"awaitingEvaluation"`
	OffersOut        int `json:"offersOut"`
	AwaitingDisburse int `json:"awaitingDisbursement"`
	Disbursed        int `json:"disbursed"`
	Rejected         int `json:"rejected"`
}

// GetEmployeeDashboard loads the employee profile and every application in parallel
func (s *DashboardService) GetEmployeeDashboard(ctx context.Context, sess *session.Session) (*EmployeeDashboardData, error) {
	data := &EmployeeDashboardData{}

	var loans []domain.Loan
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.EmployeeProfile(gctx, sess)
		if err != nil {
			return tolerate("employee profile", err)
		}
		data.Employee = p
		return nil
	})
	g.Go(func() error {
		l, err := s.loans.RefreshAllLoans(gctx, sess)
		if err != nil {
			return err
		}
		loans = l
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data.Stats = CountLoans(loans)
	data.Loans = views(loans, domain.RoleEmployee)
	return data, nil
}

// CountLoans buckets loans by lifecycle stage
func CountLoans(loans []domain.Loan) LoanStats {
	stats := LoanStats{Total: len(loans)}
	for _, l := range loans {
		switch l.Status {
		case domain.StatusPending:
			stats.PendingReview++
		case domain.StatusVerified:
			stats.AwaitingGold++
		case domain.StatusGoldSubmitted:
			stats.AwaitingEval++
		case domain.StatusEvaluated, domain.StatusOfferMade:
			stats.OffersOut++
		case domain.StatusOfferAccepted:
			stats.AwaitingDisburse++
		case domain.StatusDisbursed:
			stats.Disbursed++
		case domain.StatusRejected, domain.StatusRejectedForReview:
			stats.Rejected++
		}
	}
	return stats
}

func views(loans []domain.Loan, role domain.Role) []LoanView {
	out := make([]LoanView, len(loans))
	for i, l := range loans {
		out[i] = LoanView{Loan: l, Actions: domain.AllowedActions(l.Status, role), Closed: l.Status.IsTerminal()}
	}
	return out
}

// tolerate swallows everything but authentication failures
func tolerate(what string, err error) error {
	if errors.Is(err, domain.ErrUnauthenticated) {
		return err
	}
	log.Printf("⚠️ dashboard: %s unavailable: %v", what, err)
	return nil
}
