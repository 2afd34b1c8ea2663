package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "teamreg_backend/internals/features/payments/model"
)

/* =======================================================================
   Controller (admin)
======================================================================= */

type GatewayEventController struct {
	DB *gorm.DB
}

func NewGatewayEventController(db *gorm.DB) *GatewayEventController {
	return &GatewayEventController{DB: db}
}

/* =======================================================================
   List (filter + pagination)
   Query params:
     - status: received|success|failed
     - order_id: gateway order id
     - start, end: ISO8601 (filter received_at)
     - page (default 1), limit (default 20, max 200)
======================================================================= */

func (h *GatewayEventController) ListEvents(c *fiber.Ctx) error {
	db := h.DB.Model(&model.GatewayEventModel{})

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		db = db.Where("gateway_event_status = ?", strings.ToLower(s))
	}
	if oid := strings.TrimSpace(c.Query("order_id")); oid != "" {
		db = db.Where("gateway_event_order_id = ?", oid)
	}

	if start := strings.TrimSpace(c.Query("start")); start != "" {
		if t, err := time.Parse(time.RFC3339, start); err == nil {
			db = db.Where("gateway_event_received_at >= ?", t)
		} else {
			return fiber.NewError(fiber.StatusBadRequest, "invalid start (use RFC3339)")
		}
	}
	if end := strings.TrimSpace(c.Query("end")); end != "" {
		if t, err := time.Parse(time.RFC3339, end); err == nil {
			db = db.Where("gateway_event_received_at < ?", t)
		} else {
			return fiber.NewError(fiber.StatusBadRequest, "invalid end (use RFC3339)")
		}
	}

	page := clampInt(queryInt(c, "page", 1), 1, 1_000_000)
	limit := clampInt(queryInt(c, "limit", 20), 1, 200)
	offset := (page - 1) * limit

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.GatewayEventModel
	if err := db.Order("gateway_event_received_at DESC").
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

/* =======================================================================
   Helpers
======================================================================= */

func queryInt(c *fiber.Ctx, key string, def int) int {
	if v := c.Query(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
