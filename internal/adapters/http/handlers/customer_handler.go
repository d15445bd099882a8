package handlers

import (
	"goldloan-portal/internal/adapters/http/middleware"
	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/services"
	"goldloan-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles the customer area
type CustomerHandler struct {
	dashboardService *services.DashboardService
	loanService      *services.LoanService
	profileService   *services.ProfileService
	authService      *services.AuthService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	dashboardService *services.DashboardService,
	loanService *services.LoanService,
	profileService *services.ProfileService,
	authService *services.AuthService,
) *CustomerHandler {
	return &CustomerHandler{
		dashboardService: dashboardService,
		loanService:      loanService,
		profileService:   profileService,
		authService:      authService,
	}
}

// OfferDecisionRequest is the body of POST /loans/{rid}/offer-decision
type OfferDecisionRequest struct {
	Accept bool `json:"accept"`
}

// Dashboard returns the customer dashboard
// @Summary Customer dashboard
// @Description Profile, KYC state, loans with their available actions and gold rates
// @Tags Customer
// @Produce json
// @Success 200 {object} response.Response{data=services.CustomerDashboardData}
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *CustomerHandler) Dashboard(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	data, err := h.dashboardService.GetCustomerDashboard(c.UserContext(), sess)
	if err != nil {
		return fail(c, sess, err)
	}
	return response.Success(c, "Customer dashboard retrieved successfully", data)
}

// KYCStatus returns the customer's KYC state
// @Summary KYC status
// @Tags Customer
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /kyc [get]
func (h *CustomerHandler) KYCStatus(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	profile, err := h.profileService.CustomerProfile(c.UserContext(), sess)
	if err != nil {
		return fail(c, sess, err)
	}
	return response.Success(c, "KYC status retrieved successfully", fiber.Map{
		"kycStatus": profile.KycDisplayStatus(),
		"knNumber":  profile.KnNumber,
	})
}

// SubmitKYC submits the KYC form
// @Summary Submit KYC
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body domain.KYCRequest true "KYC form"
// @Success 200 {object} response.Response{data=domain.KYCResult}
// @Failure 400 {object} response.Response
// @Router /kyc [post]
func (h *CustomerHandler) SubmitKYC(c *fiber.Ctx) error {
	var req domain.KYCRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	sess := middleware.SessionFrom(c)
	result, err := h.authService.SubmitKYC(c.UserContext(), sess, req)
	if err != nil {
		return fail(c, sess, err)
	}
	return response.Success(c, result.Message, result)
}

// ApplicationForm returns the data that pre-fills the loan application
// @Summary Loan application prefill
// @Tags Customer
// @Produce json
// @Success 200 {object} response.Response{data=domain.CustomerDetails}
// @Router /loan-application [get]
func (h *CustomerHandler) ApplicationForm(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	details, err := h.profileService.CustomerDetails(c.UserContext(), sess)
	if err != nil {
		return fail(c, sess, err)
	}
	return response.Success(c, "Customer details retrieved successfully", details)
}

// SubmitApplication submits a loan application
// @Summary Submit loan application
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body domain.LoanApplication true "Application"
// @Success 201 {object} response.Response{data=domain.SubmitResult}
// @Failure 400 {object} response.Response
// @Router /loan-application [post]
func (h *CustomerHandler) SubmitApplication(c *fiber.Ctx) error {
	var req domain.LoanApplication
	if err := parseBody(c, &req); err != nil {
		return err
	}

	sess := middleware.SessionFrom(c)
	result, err := h.loanService.SubmitApplication(c.UserContext(), sess, req)
	if err != nil {
		return fail(c, sess, err)
	}
	return response.Created(c, result.Message, result)
}

// LoanDetails returns one application of the customer
// @Summary Customer loan detail
// @Tags Customer
// @Produce json
// @Param rid path string true "Reference id"
// @Success 200 {object} response.Response{data=domain.LoanDetails}
// @Failure 404 {object} response.Response
// @Router /loans/{rid} [get]
func (h *CustomerHandler) LoanDetails(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	details, err := h.loanService.LoanDetails(c.UserContext(), sess, c.Params("rid"))
	if err != nil {
		return fail(c, sess, err)
	}
	return response.Success(c, "Loan retrieved successfully", details)
}

// SubmitGold confirms the gold was handed in
// @Summary Submit gold
// @Tags Customer
// @Produce json
// @Param rid path string true "Reference id"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans/{rid}/submit-gold [post]
func (h *CustomerHandler) SubmitGold(c *fiber.Ctx) error {
	return h.transition(c, domain.ActionSubmitGold, "Gold submission recorded")
}

// OfferDecision accepts or rejects the final offer
// @Summary Offer decision
// @Tags Customer
// @Accept json
// @Produce json
// @Param rid path string true "Reference id"
// @Param request body OfferDecisionRequest true "Decision"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans/{rid}/offer-decision [post]
func (h *CustomerHandler) OfferDecision(c *fiber.Ctx) error {
	var req OfferDecisionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Accept {
		return h.transition(c, domain.ActionAcceptOffer, "Offer accepted")
	}
	return h.transition(c, domain.ActionRejectOffer, "Offer rejected")
}

// PayFine pays the fine owed after rejecting an offer
// @Summary Pay fine
// @Tags Customer
// @Produce json
// @Param rid path string true "Reference id"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans/{rid}/pay-fine [post]
func (h *CustomerHandler) PayFine(c *fiber.Ctx) error {
	return h.transition(c, domain.ActionPayFine, "Fine paid")
}

// ReApply resubmits an application flagged for review
// @Summary Re-apply
// @Tags Customer
// @Produce json
// @Param rid path string true "Reference id"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans/{rid}/re-apply [post]
func (h *CustomerHandler) ReApply(c *fiber.Ctx) error {
	return h.transition(c, domain.ActionReApply, "Application resubmitted")
}

func (h *CustomerHandler) transition(c *fiber.Ctx, action domain.Action, message string) error {
	sess := middleware.SessionFrom(c)
	rid := c.Params("rid")
	if err := h.loanService.Apply(c.UserContext(), sess, rid, action, services.ActionInput{}); err != nil {
		return fail(c, sess, err)
	}
	loan, _ := sess.Loan(rid)
	return response.Success(c, message, loan)
}
