package handlers

import (
	"goldloan-portal/internal/adapters/http/middleware"
	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/services"
	"goldloan-portal/internal/pkg/pagination"
	"goldloan-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler handles the employee area
type EmployeeHandler struct {
	dashboardService *services.DashboardService
	loanService      *services.LoanService
	authService      *services.AuthService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(
	dashboardService *services.DashboardService,
	loanService *services.LoanService,
	authService *services.AuthService,
) *EmployeeHandler {
	return &EmployeeHandler{
		dashboardService: dashboardService,
		loanService:      loanService,
		authService:      authService,
	}
}

// VerifyRequest is the body of POST /employee/loan-details/{id}/verify
type VerifyRequest struct {
	Correct bool   `json:"correct"`
	Reason  string `json:"reason"`
}

// GoldReceiptRequest is the body of POST /employee/loan-details/{id}/gold-receipt
type GoldReceiptRequest struct {
	Accept       bool    `json:"accept"`
	QualityIndex float64 `json:"qualityIndex"`
	FinalOffer   float64 `json:"finalOffer"`
}

// OfferRequest is the body of POST /employee/loan-details/{id}/offer
type OfferRequest struct {
	Send bool `json:"send"`
}

// EmployeeDashboardPage is one page of the employee dashboard
type EmployeeDashboardPage struct {
	Employee *domain.EmployeeProfile `json:"employee"`
	Stats    services.LoanStats      `json:"stats"`
	Loans    []services.LoanView     `json:"loans"`
	Meta     *pagination.Meta        `json:"meta"`
}

// LoanDetailView is a loan detail plus the suggested final offer
type LoanDetailView struct {
	*domain.LoanDetails
	SuggestedOffer float64         `json:"suggestedOffer"`
	Actions        []domain.Action `json:"actions"`
}

// Dashboard returns one page of every application with stage counts
// @Summary Employee dashboard
// @Tags Employee
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response{data=EmployeeDashboardPage}
// @Failure 401 {object} response.Response
// @Router /employee/dashboard [get]
func (h *EmployeeHandler) Dashboard(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	data, err := h.dashboardService.GetEmployeeDashboard(c.UserContext(), sess)
	if err != nil {
		return fail(c, sess, err)
	}

	params := pagination.GetParams(c)
	return response.Success(c, "Employee dashboard retrieved successfully", EmployeeDashboardPage{
		Employee: data.Employee,
		Stats:    data.Stats,
		Loans:    pagination.Slice(data.Loans, params),
		Meta:     pagination.GetMeta(params, int64(len(data.Loans))),
	})
}

// LoanDetails returns one application with the suggested offer
// @Summary Employee loan detail
// @Tags Employee
// @Produce json
// @Param id path string true "Reference id"
// @Success 200 {object} response.Response{data=LoanDetailView}
// @Failure 404 {object} response.Response
// @Router /employee/loan-details/{id} [get]
func (h *EmployeeHandler) LoanDetails(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	details, err := h.loanService.LoanDetails(c.UserContext(), sess, c.Params("id"))
	if err != nil {
		return fail(c, sess, err)
	}
	return response.Success(c, "Loan retrieved successfully", LoanDetailView{
		LoanDetails:    details,
		SuggestedOffer: details.SuggestedOffer(),
		Actions:        domain.AllowedActions(details.Status, domain.RoleEmployee),
	})
}

// Verify marks the applicant's documents correct or flags them for review
// @Summary Verify application
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Reference id"
// @Param request body VerifyRequest true "Verification"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employee/loan-details/{id}/verify [post]
func (h *EmployeeHandler) Verify(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Correct {
		return h.transition(c, domain.ActionVerify, services.ActionInput{}, "Application verified")
	}
	return h.transition(c, domain.ActionFlagForReview, services.ActionInput{Reason: req.Reason}, "Application flagged for review")
}

// GoldReceipt accepts the submitted gold with an evaluation, or rejects it
// @Summary Gold receipt
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Reference id"
// @Param request body GoldReceiptRequest true "Evaluation"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employee/loan-details/{id}/gold-receipt [post]
func (h *EmployeeHandler) GoldReceipt(c *fiber.Ctx) error {
	var req GoldReceiptRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Accept {
		in := services.ActionInput{QualityIndex: req.QualityIndex, FinalOffer: req.FinalOffer}
		return h.transition(c, domain.ActionAcceptGold, in, "Gold evaluated")
	}
	return h.transition(c, domain.ActionRejectGold, services.ActionInput{}, "Gold rejected")
}

// Offer sends the final offer or rejects the evaluated application
// @Summary Offer
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Reference id"
// @Param request body OfferRequest true "Offer"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employee/loan-details/{id}/offer [post]
func (h *EmployeeHandler) Offer(c *fiber.Ctx) error {
	var req OfferRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Send {
		return h.transition(c, domain.ActionSendOffer, services.ActionInput{}, "Offer sent")
	}
	return h.transition(c, domain.ActionRejectEvaluated, services.ActionInput{}, "Application rejected")
}

// Disburse pays out an accepted offer
// @Summary Disburse
// @Tags Employee
// @Produce json
// @Param id path string true "Reference id"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employee/loan-details/{id}/disburse [post]
func (h *EmployeeHandler) Disburse(c *fiber.Ctx) error {
	return h.transition(c, domain.ActionDisburse, services.ActionInput{}, "Loan disbursed")
}

// CollectGold records the return of gold after the fine is paid
// @Summary Collect gold
// @Tags Employee
// @Produce json
// @Param id path string true "Reference id"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employee/loan-details/{id}/collect-gold [post]
func (h *EmployeeHandler) CollectGold(c *fiber.Ctx) error {
	return h.transition(c, domain.ActionCollectGold, services.ActionInput{}, "Gold collected")
}

// CreateEmployee adds a staff account (admin only)
// @Summary Create employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body domain.NewEmployee true "New employee"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /employee/create [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var req domain.NewEmployee
	if err := parseBody(c, &req); err != nil {
		return err
	}

	sess := middleware.SessionFrom(c)
	if err := h.authService.CreateEmployee(c.UserContext(), sess, req); err != nil {
		return fail(c, sess, err)
	}
	return response.Created(c, "Employee created successfully", fiber.Map{"username": req.Username})
}

func (h *EmployeeHandler) transition(c *fiber.Ctx, action domain.Action, in services.ActionInput, message string) error {
	sess := middleware.SessionFrom(c)
	rid := c.Params("id")
	if err := h.loanService.Apply(c.UserContext(), sess, rid, action, in); err != nil {
		return fail(c, sess, err)
	}
	loan, _ := sess.Loan(rid)
	return response.Success(c, message, loan)
}
