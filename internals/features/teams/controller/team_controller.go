package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentModel "teamreg_backend/internals/features/payments/model"
	model "teamreg_backend/internals/features/teams/model"
	helper "teamreg_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type TeamController struct {
	DB *gorm.DB
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db}
}

/* =======================================================================
   GET /api/teams/:id/payment-status

   Polled by the checkout result page. Returns the projected team
   status plus the most recent payment record for the team so the
   client can show order/transaction details.
======================================================================= */

func (h *TeamController) GetPaymentStatus(c *fiber.Ctx) error {
	teamID := strings.TrimSpace(c.Params("id"))
	if teamID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing team id")
	}

	var team model.TeamModel
	if err := h.DB.First(&team, "team_id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "team not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var latest paymentModel.PaymentModel
	err := h.DB.
		Where("payment_team_id = ?", teamID).
		Order("payment_updated_at DESC").
		First(&latest).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	data := fiber.Map{
		"team_id":        team.TeamID,
		"team_name":      team.TeamName,
		"payment_status": team.TeamPaymentStatus,
	}
	if latest.PaymentOrderID != "" {
		data["payment"] = latest
	}

	return helper.Success(c, "ok", data)
}
