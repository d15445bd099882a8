package handlers

import (
	"errors"
	"log"

	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/guard"
	"goldloan-portal/internal/core/services"
	"goldloan-portal/internal/core/session"
	"goldloan-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// fail maps a service error onto a response. An authentication failure
// ends the session and points the browser back to the login page.
func fail(c *fiber.Ctx, sess *session.Session, err error) error {
	msg := domain.UserMessage(err)

	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrNoCredential):
		sess.Logout()
		return response.ErrorRedirect(c, fiber.StatusUnauthorized, msg, guard.PathLogin)
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, msg)
	case errors.Is(err, domain.ErrLoanNotLoaded), errors.Is(err, domain.ErrInvalidTransition):
		return response.Conflict(c, msg)
	case errors.Is(err, domain.ErrActorNotAllowed):
		return response.Forbidden(c, msg)
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, msg)
	case errors.Is(err, domain.ErrInvalidInput), domain.IsLocal(err):
		return response.BadRequest(c, msg)
	case errors.Is(err, services.ErrMissingToken), errors.Is(err, services.ErrOAuthFailed):
		return response.ErrorRedirect(c, fiber.StatusUnauthorized, err.Error(), guard.PathLogin)
	default:
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
		return response.BadGateway(c, msg)
	}
}

// parseBody decodes the request body. The returned *fiber.Error is rendered
// by the app error handler.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}
