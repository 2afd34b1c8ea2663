package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "teamreg_backend/internals/features/payments/model"
)

/* =======================================================================
   Controller (admin)
======================================================================= */

type PaymentAdminController struct {
	DB *gorm.DB
}

func NewPaymentAdminController(db *gorm.DB) *PaymentAdminController {
	return &PaymentAdminController{DB: db}
}

/* =======================================================================
   GET /api/admin/payments
   Query params:
     - status: folded to the stored UPPERCASE form
     - team_id
     - page (default 1), limit (default 20, max 200)
======================================================================= */

func (h *PaymentAdminController) ListPayments(c *fiber.Ctx) error {
	db := h.DB.Model(&model.PaymentModel{})

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		db = db.Where("payment_status = ?", model.CanonicalStatus(s))
	}
	if tid := strings.TrimSpace(c.Query("team_id")); tid != "" {
		db = db.Where("payment_team_id = ?", tid)
	}

	page := clampInt(queryInt(c, "page", 1), 1, 1_000_000)
	limit := clampInt(queryInt(c, "limit", 20), 1, 200)
	offset := (page - 1) * limit

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PaymentModel
	if err := db.Order("payment_updated_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"page":  page,
		"limit": limit,
		"total": total,
		"data":  rows,
	})
}
