package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "teamreg_backend/internals/features/payments/route"
	teamRoute "teamreg_backend/internals/features/teams/route"
	"teamreg_backend/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up payment routes...")
	api := app.Group("/api")
	paymentRoute.PaymentRoutes(api, db)
	teamRoute.TeamRoutes(api, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up admin routes...")
	admin := app.Group("/api/admin", middlewares.AdminAuthMiddleware())
	paymentRoute.AdminPaymentRoutes(admin, db)
}
