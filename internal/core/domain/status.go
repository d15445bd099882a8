package domain

import (
	"encoding/json"
	"strings"
)

// LoanStatus is the canonical loan application status
type LoanStatus string

const (
	StatusPending           LoanStatus = "PENDING"
	StatusVerified          LoanStatus = "VERIFIED"
	StatusRejectedForReview LoanStatus = "REJECTED_FOR_REVIEW"
	StatusGoldSubmitted     LoanStatus = "GOLD_SUBMITTED"
	StatusEvaluated         LoanStatus = "EVALUATED"
	StatusOfferMade         LoanStatus = "OFFER_MADE"
	StatusOfferAccepted     LoanStatus = "OFFER_ACCEPTED"
	StatusOfferRejected     LoanStatus = "OFFER_REJECTED"
	StatusPaidFine          LoanStatus = "PAID_FINE"
	StatusGoldCollected     LoanStatus = "GOLD_COLLECTED"
	StatusDisbursed         LoanStatus = "DISBURSED"
	StatusRejected          LoanStatus = "REJECTED"
)

// legacy aliases that do not normalise by case/separator alone
var statusAliases = map[string]LoanStatus{
	"ACCEPTED": StatusOfferAccepted,
	"APPROVED": StatusVerified,
}

var canonicalStatuses = map[LoanStatus]struct{}{
	StatusPending: {}, StatusVerified: {}, StatusRejectedForReview: {}, StatusGoldSubmitted: {},
	StatusEvaluated: {}, StatusOfferMade: {}, StatusOfferAccepted: {}, StatusOfferRejected: {},
	StatusPaidFine: {}, StatusGoldCollected: {}, StatusDisbursed: {}, StatusRejected: {},
}

// NormalizeStatus maps legacy spellings ("Offer Made", "pending", "offer-accepted")
// onto the canonical enumeration. Unknown values come back upper-cased and match no transition.
func NormalizeStatus(raw string) LoanStatus {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	if alias, ok := statusAliases[s]; ok {
		return alias
	}
	return LoanStatus(s)
}

// IsCanonical reports whether s belongs to the canonical enumeration
func (s LoanStatus) IsCanonical() bool {
	_, ok := canonicalStatuses[s]
	return ok
}

// IsTerminal reports whether no transition leaves s
func (s LoanStatus) IsTerminal() bool {
	switch s {
	case StatusDisbursed, StatusRejected, StatusGoldCollected:
		return true
	}
	return false
}

// UnmarshalJSON normalises statuses at the boundary
func (s *LoanStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = NormalizeStatus(raw)
	return nil
}
