package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "teamreg_backend/internals/features/payments/controller"
	service "teamreg_backend/internals/features/payments/service"
	teamService "teamreg_backend/internals/features/teams/service"

	"teamreg_backend/internals/configs"
	"teamreg_backend/internals/middlewares"
)

// PaymentRoutes wires the three reconciliation entry points.
// Base path at the caller: /api
func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	cfg := service.NewCashfreeConfig(
		configs.GetEnv("CASHFREE_ENV", "sandbox"),
		configs.GetEnv("CASHFREE_API_VERSION"),
		configs.GetEnv("CASHFREE_CLIENT_ID"),
		configs.GetEnv("CASHFREE_CLIENT_SECRET"),
		configs.GetEnv("CASHFREE_WEBHOOK_SECRET"),
	)

	engine := service.NewEngine(
		service.NewCashfreeClient(cfg),
		service.NewGormPaymentStore(db),
		teamService.NewTeamStatusService(db),
	)
	verifier := service.NewSignatureVerifier(cfg.WebhookSecret)

	h := paymentController.NewPaymentController(engine, configs.AppBaseURL+"/order-result")
	wh := paymentController.NewWebhookController(engine, verifier, db)

	payments := r.Group("/payments")

	payments.Post("/create-order", middlewares.GlobalRateLimiter(), h.CreateOrder)
	payments.Get("/verify-order", middlewares.GlobalRateLimiter(), h.VerifyOrder)
	payments.Post("/webhook", middlewares.WebhookRateLimiter(), wh.HandleWebhook)
}

// AdminPaymentRoutes exposes the listing endpoints behind the admin
// JWT guard. Base path at the caller: /api/admin
func AdminPaymentRoutes(r fiber.Router, db *gorm.DB) {
	ph := paymentController.NewPaymentAdminController(db)
	eh := paymentController.NewGatewayEventController(db)

	r.Get("/payments", ph.ListPayments)
	r.Get("/payment-gateway-events", eh.ListEvents)
}
