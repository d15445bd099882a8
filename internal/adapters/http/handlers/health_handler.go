package handlers

import (
	"context"
	"time"

	"goldloan-portal/internal/core/session"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	sessions *session.Manager
	backend  string
	check    func(ctx context.Context) error
}

// NewHealthHandler creates a new health handler. check pings the session storage backend.
func NewHealthHandler(sessions *session.Manager, backend string, check func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{sessions: sessions, backend: backend, check: check}
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check service and session storage health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status, storage, code := "ok", "healthy", fiber.StatusOK
	if h.check != nil {
		if err := h.check(ctx); err != nil {
			status, storage, code = "degraded", "unhealthy", fiber.StatusServiceUnavailable
		}
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": fiber.Map{
			"api":     "healthy",
			"storage": fiber.Map{"backend": h.backend, "status": storage},
		},
		"sessions": h.sessions.Len(),
	})
}
