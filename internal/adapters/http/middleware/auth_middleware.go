package middleware

import (
	"goldloan-portal/internal/core/guard"

	"github.com/gofiber/fiber/v2"
)

// decide turns a guard decision into either the next handler or a 303
func decide(c *fiber.Ctx, d guard.Decision) error {
	if d.Allow {
		return c.Next()
	}
	return c.Redirect(d.Redirect, fiber.StatusSeeOther)
}

// AuthMiddleware runs the authentication guard
func AuthMiddleware(policy *guard.Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return decide(c, policy.Authenticated(SessionFrom(c), c.Path()))
	}
}

// CustomerOnly runs the customer guard
func CustomerOnly(policy *guard.Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return decide(c, policy.Customer(SessionFrom(c), c.Path()))
	}
}

// EmployeeOnly runs the employee guard
func EmployeeOnly(policy *guard.Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return decide(c, policy.Employee(SessionFrom(c), c.Path()))
	}
}

// AdminOnly runs the admin guard, which fetches the employee profile
func AdminOnly(policy *guard.Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return decide(c, policy.Admin(c.UserContext(), SessionFrom(c), c.Path()))
	}
}
