package domain

import "fmt"

// Action is a lifecycle step a customer or an employee can trigger
type Action string

const (
	ActionVerify          Action = "verify"
	ActionFlagForReview   Action = "flag-for-review"
	ActionSubmitGold      Action = "submit-gold"
	ActionAcceptGold      Action = "accept-gold"
	ActionRejectGold      Action = "reject-gold"
	ActionSendOffer       Action = "send-offer"
	ActionRejectEvaluated Action = "reject-evaluated"
	ActionAcceptOffer     Action = "accept-offer"
	ActionRejectOffer     Action = "reject-offer"
	ActionPayFine         Action = "pay-fine"
	ActionCollectGold     Action = "collect-gold"
	ActionDisburse        Action = "disburse"
	ActionReApply         Action = "re-apply"
)

// Transition is one edge of the loan state machine
type Transition struct {
	From  LoanStatus
	To    LoanStatus
	Actor Role
}

// Submitting an application has no From state and is handled separately.
var transitions = map[Action]Transition{
	ActionVerify:          {From: StatusPending, To: StatusVerified, Actor: RoleEmployee},
	ActionFlagForReview:   {From: StatusPending, To: StatusRejectedForReview, Actor: RoleEmployee},
	ActionSubmitGold:      {From: StatusVerified, To: StatusGoldSubmitted, Actor: RoleCustomer},
	ActionAcceptGold:      {From: StatusGoldSubmitted, To: StatusEvaluated, Actor: RoleEmployee},
	ActionRejectGold:      {From: StatusGoldSubmitted, To: StatusRejected, Actor: RoleEmployee},
	ActionSendOffer:       {From: StatusEvaluated, To: StatusOfferMade, Actor: RoleEmployee},
	ActionRejectEvaluated: {From: StatusEvaluated, To: StatusRejected, Actor: RoleEmployee},
	ActionAcceptOffer:     {From: StatusOfferMade, To: StatusOfferAccepted, Actor: RoleCustomer},
	ActionRejectOffer:     {From: StatusOfferMade, To: StatusOfferRejected, Actor: RoleCustomer},
	ActionPayFine:         {From: StatusOfferRejected, To: StatusPaidFine, Actor: RoleCustomer},
	ActionCollectGold:     {From: StatusPaidFine, To: StatusGoldCollected, Actor: RoleEmployee},
	ActionDisburse:        {From: StatusOfferAccepted, To: StatusDisbursed, Actor: RoleEmployee},
	ActionReApply:         {From: StatusRejectedForReview, To: StatusPending, Actor: RoleCustomer},
}

// actionOrder keeps AllowedActions deterministic
var actionOrder = []Action{
	ActionVerify, ActionFlagForReview, ActionSubmitGold, ActionAcceptGold, ActionRejectGold,
	ActionSendOffer, ActionRejectEvaluated, ActionAcceptOffer, ActionRejectOffer, ActionPayFine,
	ActionCollectGold, ActionDisburse, ActionReApply,
}

// LookupTransition returns the edge for an action
func LookupTransition(a Action) (Transition, bool) {
	t, ok := transitions[a]
	return t, ok
}

// NextStatus validates that action a may fire from status current and returns the target status
func NextStatus(a Action, current LoanStatus) (LoanStatus, error) {
	t, ok := transitions[a]
	if !ok {
		return current, fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, a)
	}
	if t.From != current {
		return current, fmt.Errorf("%w: %s requires %s, loan is %s", ErrInvalidTransition, a, t.From, current)
	}
	return t.To, nil
}

// AllowedActions lists what role may do to a loan in status s
func AllowedActions(s LoanStatus, role Role) []Action {
	var out []Action
	for _, a := range actionOrder {
		t := transitions[a]
		if t.From == s && t.Actor == role {
			out = append(out, a)
		}
	}
	return out
}
