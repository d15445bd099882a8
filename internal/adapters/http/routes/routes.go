package routes

import (
	"time"

	"goldloan-portal/internal/adapters/http/handlers"
	"goldloan-portal/internal/adapters/http/middleware"
	"goldloan-portal/internal/adapters/metrics"
	"goldloan-portal/internal/config"
	"goldloan-portal/internal/core/guard"
	"goldloan-portal/internal/core/services"
	"goldloan-portal/internal/core/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Container holds the services wired by Setup that outlive a request
type Container struct {
	Sessions *session.Manager
	Bullion  *services.BullionService
	Metrics  *metrics.Metrics
}

// Setup configures all routes for the application.
// store holds the session slots; reg receives the portal's metrics.
func Setup(app *fiber.App, cfg *config.Config, backend services.Backend, store fiber.Storage, reg *prometheus.Registry) *Container {
	m := metrics.New(reg)

	sessions := session.NewManager(store, cfg.SessionTTL())
	metrics.RegisterSessionGauge(reg, sessions.Len)
	sessions.OnCredential(m.CredentialChanged)

	// Initialize services
	profileService := services.NewProfileService(backend)
	loanService := services.NewLoanService(backend, profileService, m)
	bullionService := services.NewBullionService(backend)
	authService := services.NewAuthService(backend, profileService)
	dashboardService := services.NewDashboardService(profileService, loanService, bullionService)

	policy := &guard.Policy{
		Strict:   cfg.AuthGuardStrict,
		Profiles: profileService,
		Recorder: m,
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(sessions, cfg.Session.Storage, config.HealthCheck)
	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(dashboardService, loanService, profileService, authService)
	employeeHandler := handlers.NewEmployeeHandler(dashboardService, loanService, authService)
	ratesHandler := handlers.NewRatesHandler(bullionService)

	// Infrastructure routes (no session)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Every route below is bound to a browser session
	portal := app.Group("", middleware.Sessions(sessions, cfg.Cookie, cfg.SessionTTL()))
	setupPublicRoutes(portal, authHandler, ratesHandler, store)
	setupCustomerRoutes(portal, policy, authHandler, customerHandler)
	setupEmployeeRoutes(portal, policy, authHandler, employeeHandler)

	return &Container{Sessions: sessions, Bullion: bullionService, Metrics: m}
}

// setupPublicRoutes configures routes reachable without a credential
func setupPublicRoutes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	ratesHandler *handlers.RatesHandler,
	store fiber.Storage,
) {
	router.Get("/", authHandler.Landing)

	router.Get("/rates", middleware.CacheControl(time.Minute), ratesHandler.Rates)
	router.Post("/estimate", ratesHandler.Estimate)

	router.Post("/login", middleware.AuthRateLimiter(store), authHandler.Login)
	router.Get("/login/oauth/callback", authHandler.OAuthCallback)
	router.Post("/signup", middleware.AuthRateLimiter(store), authHandler.Signup)
	router.Post("/forgot-password", middleware.StrictRateLimiter(store), authHandler.ForgotPassword)
	router.Post("/logout", authHandler.Logout)
}

// setupCustomerRoutes configures the customer area. The customer pages sit at
// the root, so the guards are attached per route rather than by group prefix.
func setupCustomerRoutes(
	router fiber.Router,
	policy *guard.Policy,
	authHandler *handlers.AuthHandler,
	customerHandler *handlers.CustomerHandler,
) {
	guarded := func(h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{
			middleware.NoCacheHeaders(),
			middleware.AuthMiddleware(policy),
			middleware.CustomerOnly(policy),
			h,
		}
	}

	router.Get("/dashboard", guarded(customerHandler.Dashboard)...)
	router.Get("/kyc", guarded(customerHandler.KYCStatus)...)
	router.Post("/kyc", guarded(customerHandler.SubmitKYC)...)
	router.Get("/loan-application", guarded(customerHandler.ApplicationForm)...)
	router.Post("/loan-application", guarded(customerHandler.SubmitApplication)...)
	router.Post("/change-password", guarded(authHandler.ChangePassword)...)

	router.Get("/loans/:rid", guarded(customerHandler.LoanDetails)...)
	router.Post("/loans/:rid/submit-gold", guarded(customerHandler.SubmitGold)...)
	router.Post("/loans/:rid/offer-decision", guarded(customerHandler.OfferDecision)...)
	router.Post("/loans/:rid/pay-fine", guarded(customerHandler.PayFine)...)
	router.Post("/loans/:rid/re-apply", guarded(customerHandler.ReApply)...)
}

// setupEmployeeRoutes configures the employee area
func setupEmployeeRoutes(
	router fiber.Router,
	policy *guard.Policy,
	authHandler *handlers.AuthHandler,
	employeeHandler *handlers.EmployeeHandler,
) {
	employee := router.Group("/employee",
		middleware.NoCacheHeaders(),
		middleware.AuthMiddleware(policy),
		middleware.EmployeeOnly(policy),
	)

	employee.Get("/dashboard", employeeHandler.Dashboard)
	employee.Post("/change-password", authHandler.ChangePassword)
	employee.Post("/create", middleware.AdminOnly(policy), employeeHandler.CreateEmployee)

	details := employee.Group("/loan-details")
	details.Get("/:id", employeeHandler.LoanDetails)
	details.Post("/:id/verify", employeeHandler.Verify)
	details.Post("/:id/gold-receipt", employeeHandler.GoldReceipt)
	details.Post("/:id/offer", employeeHandler.Offer)
	details.Post("/:id/disburse", employeeHandler.Disburse)
	details.Post("/:id/collect-gold", employeeHandler.CollectGold)
}
