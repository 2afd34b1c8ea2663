package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teamController "teamreg_backend/internals/features/teams/controller"
)

// TeamRoutes: public read-only projection endpoint.
// Base path at the caller: /api
func TeamRoutes(r fiber.Router, db *gorm.DB) {
	h := teamController.NewTeamController(db)

	teams := r.Group("/teams")
	teams.Get("/:id/payment-status", h.GetPaymentStatus)
}
