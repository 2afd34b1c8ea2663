package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "teamreg_backend/internals/features/payments/dto"
	service "teamreg_backend/internals/features/payments/service"
	helper "teamreg_backend/internals/helpers"
	"teamreg_backend/internals/metrics"
)

var validate = validator.New()

/* =======================================================================
   Controller
======================================================================= */

type PaymentController struct {
	Engine           *service.Engine
	DefaultReturnURL string
}

func NewPaymentController(engine *service.Engine, defaultReturnURL string) *PaymentController {
	return &PaymentController{Engine: engine, DefaultReturnURL: defaultReturnURL}
}

/* =======================================================================
   POST /api/payments/create-order
======================================================================= */

func (h *PaymentController) CreateOrder(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.NotOk(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	req.ApplyDefaults(h.DefaultReturnURL)
	if err := validate.Struct(&req); err != nil {
		return helper.NotOk(c, fiber.StatusBadRequest, validationMessage(err))
	}

	resp, err := h.Engine.CreateOrder(c.UserContext(), service.CreateOrderInput{
		TeamID: req.TeamID,
		Params: service.CreateOrderParams{
			Amount:        req.Amount,
			Currency:      req.Currency,
			CustomerID:    req.CustomerID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			ReturnURL:     req.ReturnURL,
		},
	})
	if err != nil {
		metrics.OrderCreateFailuresTotal.Inc()
		return writeEngineError(c, "create-order", err)
	}

	metrics.OrdersCreatedTotal.Inc()
	return helper.Ok(c, fiber.Map{"data": resp.Raw})
}

/* =======================================================================
   GET /api/payments/verify-order?order_id=...
======================================================================= */

func (h *PaymentController) VerifyOrder(c *fiber.Ctx) error {
	metrics.VerifyRequestsTotal.Inc()

	orderID := c.Query("order_id")
	if orderID == "" {
		return helper.NotOk(c, fiber.StatusBadRequest, "Missing order_id")
	}

	res, err := h.Engine.VerifyOrder(c.UserContext(), orderID)
	if err != nil {
		return writeEngineError(c, "verify-order", err)
	}

	// Persistence problems on this path do not fail the request; the
	// gateway's answer is authoritative and the next observation can
	// repair the store.
	if res.StoreErr != nil {
		log.Printf("[verify-order] store update err order=%s: %v", orderID, res.StoreErr)
	}
	if res.ProjectErr != nil {
		log.Printf("[verify-order] team projection err order=%s: %v", orderID, res.ProjectErr)
	}
	if res.TeamMarked {
		metrics.TeamsMarkedPaidTotal.Inc()
	}

	return helper.Ok(c, fiber.Map{"order": res.Order.Raw})
}

/* =======================================================================
   Shared error mapping
======================================================================= */

func writeEngineError(c *fiber.Ctx, op string, err error) error {
	var (
		ve *service.ValidationError
		ce *service.ConfigurationError
		ge *service.GatewayError
		se *service.SecurityError
		pe *service.PersistenceError
	)
	switch {
	case errors.As(err, &ve):
		return helper.NotOk(c, fiber.StatusBadRequest, ve.Msg)
	case errors.As(err, &se):
		return helper.NotOk(c, fiber.StatusBadRequest, se.Msg)
	case errors.As(err, &ce):
		log.Printf("[%s] configuration err: %v", op, err)
		return helper.NotOk(c, fiber.StatusInternalServerError, "Server misconfiguration")
	case errors.As(err, &ge):
		log.Printf("[%s] gateway err: %v", op, err)
		if len(ge.Body) > 0 {
			return helper.NotOk(c, fiber.StatusBadGateway, json.RawMessage(ge.Body))
		}
		return helper.NotOk(c, fiber.StatusBadGateway, ge.Error())
	case errors.As(err, &pe):
		log.Printf("[%s] persistence err: %v", op, err)
		return helper.NotOk(c, fiber.StatusInternalServerError, pe.Error())
	default:
		log.Printf("[%s] err: %v", op, err)
		return helper.NotOk(c, fiber.StatusInternalServerError, err.Error())
	}
}

func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return "Missing or invalid " + ve[0].Field()
	}
	return "Invalid input"
}
