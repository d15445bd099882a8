package services_test

import (
	"context"
	"errors"
	"testing"

	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/services"
	"goldloan-portal/internal/core/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDashboard(backend services.Backend) *services.DashboardService {
	profiles := services.NewProfileService(backend)
	return services.NewDashboardService(
		profiles,
		services.NewLoanService(backend, profiles, nil),
		services.NewBullionService(backend),
	)
}

func TestDashboardService_Customer(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := newDashboard(backend)
	sess := customer(t)

	backend.EXPECT().CustomerProfile(gomock.Any()).
		Return(&domain.CustomerProfile{Name: "Asha", KycStatus: true, KycVerified: true, KnNumber: ptr("KN-77")}, nil)
	backend.EXPECT().CustomerLoans(gomock.Any()).Return([]domain.Loan{
		{ID: "GLN-1", Date: "2024-01-01", Status: domain.StatusVerified},
		{ID: "GLN-2", Date: "2024-02-01", Status: domain.StatusDisbursed},
	}, nil)
	backend.EXPECT().GoldRates(gomock.Any()).Return(liveRates(), nil)

	data, err := svc.GetCustomerDashboard(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "Asha", data.UserName)
	assert.Equal(t, domain.KycVerified, data.KycStatus)
	assert.Equal(t, "KN-77", *data.KnNumber)
	require.Len(t, data.Loans, 2)
	assert.Equal(t, "GLN-2", data.Loans[0].ID)
	assert.Empty(t, data.Loans[0].Actions)
	assert.Equal(t, []domain.Action{domain.ActionSubmitGold}, data.Loans[1].Actions)
	assert.Len(t, data.GoldPrices, 2)
	assert.Len(t, sess.Loans(), 2)
}

func TestDashboardService_CustomerDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := newDashboard(backend)

	backend.EXPECT().CustomerProfile(gomock.Any()).Return(nil, &domain.APIError{Status: 500})
	backend.EXPECT().CustomerLoans(gomock.Any()).Return(nil, errors.New("boom"))
	backend.EXPECT().GoldRates(gomock.Any()).Return(nil, domain.ErrTransport)

	data, err := svc.GetCustomerDashboard(context.Background(), customer(t))
	require.NoError(t, err)
	assert.Equal(t, "Guest", data.UserName)
	assert.Equal(t, domain.KycNotApplied, data.KycStatus)
	assert.Empty(t, data.Loans)
	assert.Empty(t, data.GoldPrices)
}

func TestDashboardService_CustomerAbortsOnUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := newDashboard(backend)
	sess := customer(t)

	backend.EXPECT().CustomerProfile(gomock.Any()).Return(nil, &domain.APIError{Status: 401}).AnyTimes()
	backend.EXPECT().CustomerLoans(gomock.Any()).Return(nil, &domain.APIError{Status: 401}).AnyTimes()
	backend.EXPECT().GoldRates(gomock.Any()).Return(liveRates(), nil).AnyTimes()

	_, err := svc.GetCustomerDashboard(context.Background(), sess)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Empty(t, sess.Credential())
}

func TestDashboardService_Employee(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := newDashboard(backend)

	backend.EXPECT().EmployeeProfile(gomock.Any()).
		Return(&domain.EmployeeProfile{Username: "ravi", Role: domain.FineRoleStaff}, nil)
	backend.EXPECT().EmployeeLoans(gomock.Any()).Return([]domain.Loan{
		{ID: "GLN-1", Date: "2024-03-01", Status: domain.StatusPending},
		{ID: "GLN-2", Date: "2024-02-01", Status: domain.StatusOfferAccepted},
	}, nil)

	data, err := svc.GetEmployeeDashboard(context.Background(), staff(t))
	require.NoError(t, err)
	assert.Equal(t, "ravi", data.Employee.Username)
	assert.Equal(t, 2, data.Stats.Total)
	assert.Equal(t, []domain.Action{domain.ActionVerify, domain.ActionFlagForReview}, data.Loans[0].Actions)
	assert.Equal(t, []domain.Action{domain.ActionDisburse}, data.Loans[1].Actions)
}

func TestDashboardService_EmployeeLoanFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	svc := newDashboard(backend)

	backend.EXPECT().EmployeeProfile(gomock.Any()).Return(&domain.EmployeeProfile{}, nil).AnyTimes()
	backend.EXPECT().EmployeeLoans(gomock.Any()).Return(nil, &domain.APIError{Status: 503})

	_, err := svc.GetEmployeeDashboard(context.Background(), staff(t))
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestCountLoans(t *testing.T) {
	loans := []domain.Loan{
		{Status: domain.StatusPending},
		{Status: domain.StatusPending},
		{Status: domain.StatusVerified},
		{Status: domain.StatusGoldSubmitted},
		{Status: domain.StatusEvaluated},
		{Status: domain.StatusOfferMade},
		{Status: domain.StatusOfferAccepted},
		{Status: domain.StatusDisbursed},
		{Status: domain.StatusRejected},
		{Status: domain.StatusRejectedForReview},
		{Status: domain.StatusPaidFine},
	}
	assert.Equal(t, services.LoanStats{
		Total:            11,
		PendingReview:    2,
		AwaitingGold:     1,
		AwaitingEval:     1,
		OffersOut:        2,
		AwaitingDisburse: 1,
		Disbursed:        1,
		Rejected:         2,
	}, services.CountLoans(loans))
}
