package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dto "teamreg_backend/internals/features/payments/dto"
	model "teamreg_backend/internals/features/payments/model"
	service "teamreg_backend/internals/features/payments/service"
	helper "teamreg_backend/internals/helpers"
	"teamreg_backend/internals/metrics"
)

const (
	headerSignature = "x-webhook-signature"
	headerTimestamp = "x-webhook-timestamp"

	gatewayProvider = "cashfree"
)

/* =======================================================================
   Controller
======================================================================= */

type WebhookController struct {
	Engine   *service.Engine
	Verifier *service.SignatureVerifier

	// Audit trail only; reconciliation never reads from it.
	DB *gorm.DB
}

func NewWebhookController(engine *service.Engine, verifier *service.SignatureVerifier, db *gorm.DB) *WebhookController {
	return &WebhookController{Engine: engine, Verifier: verifier, DB: db}
}

/* =======================================================================
   POST /api/payments/webhook

   The sender retries on anything but a top-level acceptance, so a
   verified notification is always acked with {ok:true} no matter how
   reconciliation went internally.
======================================================================= */

func (h *WebhookController) HandleWebhook(c *fiber.Ctx) error {
	metrics.WebhooksReceivedTotal.Inc()

	// c.Body() is only valid during the handler; the raw bytes are
	// kept in the record, so take a copy.
	raw := make([]byte, len(c.Body()))
	copy(raw, c.Body())

	signature := c.Get(headerSignature)
	timestamp := c.Get(headerTimestamp)

	if err := h.Verifier.Verify(timestamp, raw, signature); err != nil {
		metrics.WebhooksInvalidTotal.Inc()
		var ce *service.ConfigurationError
		if errors.As(err, &ce) {
			log.Printf("[webhook] %v", err)
			return helper.NotOk(c, fiber.StatusInternalServerError, "Server misconfiguration")
		}
		log.Printf("[webhook] rejected: %v", err)
		return helper.NotOk(c, fiber.StatusBadRequest, err.Error())
	}

	env, err := dto.ParseWebhookEnvelope(raw)
	if err != nil {
		metrics.WebhooksInvalidTotal.Inc()
		return helper.NotOk(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}

	obs := service.WebhookObservation{
		OrderID:       env.OrderID(),
		TransactionID: env.TransactionID(),
		Status:        env.Status(),
		Amount:        env.Amount(),
		Currency:      env.Currency(),
		EventSuccess:  env.IndicatesSuccess(),
		RawPayload:    raw,
	}

	res, err := h.Engine.ApplyWebhook(c.UserContext(), obs)
	if err != nil {
		metrics.WebhooksInvalidTotal.Inc()
		h.recordEvent(c, env, raw, signature, timestamp, nil, err)
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return helper.NotOk(c, fiber.StatusBadRequest, ve.Msg)
		}
		return helper.NotOk(c, fiber.StatusInternalServerError, err.Error())
	}

	if res.StoreErr != nil {
		log.Printf("[webhook] store err order=%s: %v", obs.OrderID, res.StoreErr)
	}
	if res.ProjectErr != nil {
		log.Printf("[webhook] team projection err order=%s: %v", obs.OrderID, res.ProjectErr)
	}
	if res.Inserted || res.Updated {
		metrics.WebhooksAppliedTotal.Inc()
	}
	if res.TeamMarked {
		metrics.TeamsMarkedPaidTotal.Inc()
	}

	h.recordEvent(c, env, raw, signature, timestamp, res, nil)

	return helper.Ok(c, nil)
}

/* =======================================================================
   Audit trail (best effort)
======================================================================= */

func (h *WebhookController) recordEvent(
	c *fiber.Ctx,
	env *dto.WebhookEnvelope,
	raw []byte,
	signature, timestamp string,
	res *service.WebhookResult,
	applyErr error,
) {
	if h.DB == nil {
		return
	}
	now := time.Now().UTC()

	status := model.GatewayEventStatusSuccess
	var errText *string
	switch {
	case applyErr != nil:
		status = model.GatewayEventStatusFailed
		errText = strptr(applyErr.Error())
	case res != nil && res.StoreErr != nil:
		status = model.GatewayEventStatusFailed
		errText = strptr(res.StoreErr.Error())
	}

	ev := model.GatewayEventModel{
		GatewayEventProvider:    gatewayProvider,
		GatewayEventType:        strptrOrNil(env.EventType()),
		GatewayEventOrderID:     strptrOrNil(env.OrderID()),
		GatewayEventPayload:     datatypes.JSON(raw),
		GatewayEventSignature:   strptrOrNil(signature),
		GatewayEventTimestamp:   strptrOrNil(timestamp),
		GatewayEventStatus:      status,
		GatewayEventError:       errText,
		GatewayEventReceivedAt:  now,
		GatewayEventProcessedAt: &now,
	}

	if err := h.DB.WithContext(c.UserContext()).Create(&ev).Error; err != nil {
		log.Printf("[webhook] audit insert err: %v", err)
	}
}

func strptr(s string) *string { return &s }

func strptrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
