package domain

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]LoanStatus{
		"PENDING":             StatusPending,
		"pending":             StatusPending,
		" Offer Made ":        StatusOfferMade,
		"offer-accepted":      StatusOfferAccepted,
		"Accepted":            StatusOfferAccepted,
		"approved":            StatusVerified,
		"rejected for review": StatusRejectedForReview,
		"gold_submitted":      StatusGoldSubmitted,
	}
	for raw, want := range cases {
		got := NormalizeStatus(raw)
		assert.Equal(t, want, got, raw)
		assert.True(t, got.IsCanonical(), raw)
	}

	unknown := NormalizeStatus("on hold")
	assert.Equal(t, LoanStatus("ON_HOLD"), unknown)
	assert.False(t, unknown.IsCanonical())
	assert.Empty(t, AllowedActions(unknown, RoleEmployee))
	assert.Empty(t, AllowedActions(unknown, RoleCustomer))
}

func TestLoanStatus_UnmarshalNormalizes(t *testing.T) {
	var loan Loan
	require.NoError(t, json.Unmarshal([]byte(`{"id":"GLN-1","status":"Offer Made"}`), &loan))
	assert.Equal(t, StatusOfferMade, loan.Status)
}

func TestNextStatus(t *testing.T) {
	next, err := NextStatus(ActionVerify, StatusPending)
	require.NoError(t, err)
	assert.Equal(t, StatusVerified, next)

	next, err = NextStatus(ActionDisburse, StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusPending, next)

	_, err = NextStatus(Action("teleport"), StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	for _, s := range []LoanStatus{StatusDisbursed, StatusRejected, StatusGoldCollected} {
		assert.True(t, s.IsTerminal())
		assert.Empty(t, AllowedActions(s, RoleCustomer), s)
		assert.Empty(t, AllowedActions(s, RoleEmployee), s)
		for _, a := range actionOrder {
			_, err := NextStatus(a, s)
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	}
}

func TestAllowedActions(t *testing.T) {
	assert.Equal(t, []Action{ActionVerify, ActionFlagForReview}, AllowedActions(StatusPending, RoleEmployee))
	assert.Empty(t, AllowedActions(StatusPending, RoleCustomer))
	assert.Equal(t, []Action{ActionAcceptOffer, ActionRejectOffer}, AllowedActions(StatusOfferMade, RoleCustomer))
	assert.Equal(t, []Action{ActionReApply}, AllowedActions(StatusRejectedForReview, RoleCustomer))
	assert.Equal(t, []Action{ActionSendOffer, ActionRejectEvaluated}, AllowedActions(StatusEvaluated, RoleEmployee))
}

func TestHappyPathReachesDisbursed(t *testing.T) {
	status := StatusPending
	for _, a := range []Action{ActionVerify, ActionSubmitGold, ActionAcceptGold, ActionSendOffer, ActionAcceptOffer, ActionDisburse} {
		next, err := NextStatus(a, status)
		require.NoError(t, err, a)
		status = next
	}
	assert.Equal(t, StatusDisbursed, status)
}

func TestCoarseRole(t *testing.T) {
	assert.Equal(t, RoleEmployee, CoarseRole("BANK_ADMIN"))
	assert.Equal(t, RoleEmployee, CoarseRole("BANK_STAFF"))
	assert.Equal(t, RoleCustomer, CoarseRole("CUSTOMER"))
	assert.Equal(t, RoleCustomer, CoarseRole(""))
}

func TestAPIError_Unwrap(t *testing.T) {
	cases := map[int]error{
		http.StatusUnauthorized:        ErrUnauthenticated,
		http.StatusForbidden:           ErrForbidden,
		http.StatusNotFound:            ErrNotFound,
		http.StatusBadRequest:          ErrInvalidInput,
		http.StatusConflict:            ErrInvalidInput,
		http.StatusInternalServerError: ErrTransport,
		http.StatusBadGateway:          ErrTransport,
	}
	for status, want := range cases {
		err := error(&APIError{Status: status, Message: "x"})
		assert.True(t, errors.Is(err, want), status)
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Customer not found", UserMessage(&APIError{Status: 400, Message: "Customer not found"}))
	assert.Equal(t, "Server error. Please try again.", UserMessage(&APIError{Status: 503}))
	assert.Equal(t, ErrRejectionReasonRequired.Error(), UserMessage(ErrRejectionReasonRequired))
	assert.Contains(t, UserMessage(&APIError{Status: 401}), "log in again")
	assert.Equal(t, "amountSeeking: must be at least 1000", UserMessage(Invalid("amountSeeking", "must be at least 1000")))
}

func TestKycDisplayStatus(t *testing.T) {
	assert.Equal(t, KycVerified, (&CustomerProfile{KycVerified: true, KycStatus: true}).KycDisplayStatus())
	assert.Equal(t, KycPending, (&CustomerProfile{KycStatus: true}).KycDisplayStatus())
	assert.Equal(t, KycNotApplied, (&CustomerProfile{}).KycDisplayStatus())
}

func TestSuggestedOffer(t *testing.T) {
	d := LoanDetails{Amount: 100000}
	assert.InDelta(t, 90000, d.SuggestedOffer(), 0.001)
}
