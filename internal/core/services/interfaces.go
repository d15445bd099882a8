package services

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=mocks/mocks.go goldloan-portal/internal/core/services Backend

import (
	"context"

	"goldloan-portal/internal/core/domain"
)

// Backend is the gold-loan REST API. Implementations attach the bearer of the
// session carried by ctx (see session.WithSession) to non-public calls.
type Backend interface {
	// Auth (public)
	RegisterCustomer(ctx context.Context, in domain.Registration) error
	Login(ctx context.Context, role domain.Role, in domain.Credentials) (string, error)
	ForgotPassword(ctx context.Context, role domain.Role, in domain.PasswordReset) error
	ChangePassword(ctx context.Context, role domain.Role, credential string, in domain.PasswordChange) error

	// Profiles
	CustomerProfile(ctx context.Context) (*domain.CustomerProfile, error)
	EmployeeProfile(ctx context.Context) (*domain.EmployeeProfile, error)
	CustomerDetails(ctx context.Context) (*domain.CustomerDetails, error)
	SubmitKYC(ctx context.Context, in domain.KYCRequest) (*domain.KYCResult, error)
	CreateEmployee(ctx context.Context, in domain.NewEmployee) error

	// Loans
	SubmitApplication(ctx context.Context, in domain.LoanApplication) (string, error)
	CustomerLoans(ctx context.Context) ([]domain.Loan, error)
	EmployeeLoans(ctx context.Context) ([]domain.Loan, error)
	CustomerLoan(ctx context.Context, rid string) (*domain.LoanDetails, error)
	EmployeeLoan(ctx context.Context, rid string) (*domain.LoanDetails, error)

	// Employee transitions
	UpdateStatus(ctx context.Context, rid string, in StatusUpdate) error
	Evaluate(ctx context.Context, rid string, in Evaluation) error
	Disburse(ctx context.Context, rid string) error
	CollectGold(ctx context.Context, rid string) error

	// Customer transitions
	SubmitGold(ctx context.Context, rid string) error
	OfferDecision(ctx context.Context, rid string, status domain.LoanStatus) error
	PayFine(ctx context.Context, rid string, amount float64) error
	ReApply(ctx context.Context, rid string) error

	// Bullion (public)
	GoldRates(ctx context.Context) ([]domain.GoldRate, error)
}

// StatusUpdate is the body of POST /customer/employee/loan/{rid}/status
type StatusUpdate struct {
	NewStatus       domain.LoanStatus `json:"newStatus"`
	RejectionReason *string           `json:"rejectionReason"`
}

// Evaluation is the body of POST /customer/employee/loan/{rid}/evaluate
type Evaluation struct {
	FinalValue   float64 `json:"finalValue"`
	QualityIndex float64 `json:"qualityIndex"`
}

// TransitionRecorder counts lifecycle transitions by outcome
type TransitionRecorder interface {
	Transition(action, outcome string)
}
