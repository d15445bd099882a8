package handlers

import (
	"goldloan-portal/internal/adapters/http/middleware"
	"goldloan-portal/internal/core/services"
	"goldloan-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RatesHandler serves gold rates and the loan estimator
type RatesHandler struct {
	bullionService *services.BullionService
}

// NewRatesHandler creates a new rates handler
func NewRatesHandler(bullionService *services.BullionService) *RatesHandler {
	return &RatesHandler{bullionService: bullionService}
}

// EstimateRequest is the body of POST /estimate
type EstimateRequest struct {
	Purity string  `json:"purity" example:"22K"`
	Weight float64 `json:"weight" example:"10"`
}

// Rates returns the live gold rates
// @Summary Gold rates
// @Tags Rates
// @Produce json
// @Success 200 {object} response.Response{data=[]domain.GoldRate}
// @Failure 502 {object} response.Response
// @Router /rates [get]
func (h *RatesHandler) Rates(c *fiber.Ctx) error {
	rates, err := h.bullionService.Rates(c.UserContext())
	if err != nil {
		return fail(c, middleware.SessionFrom(c), err)
	}
	return response.Success(c, "Gold rates retrieved successfully", fiber.Map{
		"rates":     rates,
		"fetchedAt": h.bullionService.FetchedAt(),
	})
}

// Estimate values an amount of gold at the loan-to-value ratio
// @Summary Loan estimate
// @Tags Rates
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Gold"
// @Success 200 {object} response.Response{data=services.Estimate}
// @Failure 400 {object} response.Response
// @Router /estimate [post]
func (h *RatesHandler) Estimate(c *fiber.Ctx) error {
	var req EstimateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	est, err := h.bullionService.Estimate(c.UserContext(), req.Purity, req.Weight)
	if err != nil {
		return fail(c, middleware.SessionFrom(c), err)
	}
	return response.Success(c, "Estimate calculated", est)
}
