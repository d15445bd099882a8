package handlers

import (
	"errors"
	"net/url"

	"goldloan-portal/internal/adapters/http/middleware"
	"goldloan-portal/internal/core/domain"
	"goldloan-portal/internal/core/guard"
	"goldloan-portal/internal/core/services"
	"goldloan-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles login, signup and password endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Portal   domain.Role `json:"portal" example:"customer"`
	Email    string      `json:"email" example:"asha@example.com"`
	Password string      `json:"password" example:"secret123"`
}

// SignupRequest is the body of POST /signup
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ForgotPasswordRequest is the body of POST /forgot-password
type ForgotPasswordRequest struct {
	Portal          domain.Role `json:"portal"`
	Email           string      `json:"email"`
	DateOfBirth     string      `json:"dateOfBirth"`
	NewPassword     string      `json:"newPassword"`
	ConfirmPassword string      `json:"confirmPassword"`
}

// ChangePasswordRequest is the body of the change-password endpoints
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func portal(r domain.Role) domain.Role {
	if r == domain.RoleEmployee {
		return domain.RoleEmployee
	}
	return domain.RoleCustomer
}

// Login handles password login for either portal
// @Summary Login
// @Description Password login through the customer or employee portal
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	sess := middleware.SessionFrom(c)
	dest, err := h.authService.Login(c.UserContext(), sess, portal(req.Portal),
		domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		// a rejected password stays on the login page
		if errors.Is(err, domain.ErrUnauthenticated) {
			sess.Logout()
			return response.Unauthorized(c, "Login failed. Please check your email and password.")
		}
		return fail(c, sess, err)
	}
	return response.Navigate(c, "Login successful", dest)
}

// OAuthCallback completes a provider login
// @Summary OAuth callback
// @Description Receives the token issued after a provider login and redirects
// @Tags Auth
// @Param token query string false "Issued token"
// @Param error query string false "Provider error"
// @Success 303
// @Router /login/oauth/callback [get]
func (h *AuthHandler) OAuthCallback(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	dest, err := h.authService.OAuthCallback(c.UserContext(), sess, c.Query("token"), c.Query("error"))
	if err != nil {
		return c.Redirect(guard.PathLogin+"?error="+url.QueryEscape(err.Error()), fiber.StatusSeeOther)
	}
	return c.Redirect(dest, fiber.StatusSeeOther)
}

// Landing sends the browser to the right home page
// @Summary Landing
// @Description Redirects to the login page, the KYC form or a dashboard
// @Tags Auth
// @Success 303
// @Router / [get]
func (h *AuthHandler) Landing(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	dest, err := h.authService.Landing(c.UserContext(), sess)
	if err != nil {
		return fail(c, sess, err)
	}
	return c.Redirect(dest, fiber.StatusSeeOther)
}

// Signup registers a customer
// @Summary Signup
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "New account"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	in := domain.Registration{Name: req.Name, Email: req.Email, Password: req.Password}
	if err := h.authService.Register(c.UserContext(), in, req.ConfirmPassword); err != nil {
		return fail(c, middleware.SessionFrom(c), err)
	}
	return response.Created(c, "Registration successful, please log in", fiber.Map{"redirect": guard.PathLogin})
}

// ForgotPassword resets a portal password
// @Summary Forgot password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Reset request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	in := domain.PasswordReset{Email: req.Email, DateOfBirth: req.DateOfBirth, NewPassword: req.NewPassword}
	if err := h.authService.ForgotPassword(c.UserContext(), portal(req.Portal), in, req.ConfirmPassword); err != nil {
		return fail(c, middleware.SessionFrom(c), err)
	}
	return response.Navigate(c, "Password reset successful, please log in", guard.PathLogin)
}

// ChangePassword changes the password of the logged in account
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Password change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /change-password [post]
// @Router /employee/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	sess := middleware.SessionFrom(c)
	in := domain.PasswordChange{CurrentPassword: req.CurrentPassword, NewPassword: req.NewPassword}
	if err := h.authService.ChangePassword(c.UserContext(), sess, in, req.ConfirmPassword); err != nil {
		return fail(c, sess, err)
	}
	return response.Success(c, "Password updated successfully", nil)
}

// Logout ends the session
// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.authService.Logout(middleware.SessionFrom(c))
	return response.Navigate(c, "Logged out", guard.PathLogin)
}
