package dto

import (
	"encoding/json"
	"strings"
)

/* =========================================================
   WEBHOOK ENVELOPE

   Shape of the gateway's server-to-server notification. Only
   the fields reconciliation needs are mapped; the raw body is
   carried alongside for the audit columns.
========================================================= */

type WebhookEnvelope struct {
	// e.g. PAYMENT_SUCCESS_WEBHOOK
	Type string `json:"type"`
	// e.g. PAYMENT_SUCCESS; independent of payment_status
	Event string `json:"event"`

	Order struct {
		OrderID string `json:"order_id"`
	} `json:"order"`

	Payment struct {
		CfPaymentID     json.Number `json:"cf_payment_id"`
		PaymentStatus   string      `json:"payment_status"`
		PaymentAmount   json.Number `json:"payment_amount"`
		PaymentCurrency string      `json:"payment_currency"`
	} `json:"payment"`

	CustomerDetails struct {
		CustomerID string `json:"customer_id"`
	} `json:"customer_details"`
}

func ParseWebhookEnvelope(raw []byte) (*WebhookEnvelope, error) {
	var env WebhookEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (e *WebhookEnvelope) OrderID() string       { return strings.TrimSpace(e.Order.OrderID) }
func (e *WebhookEnvelope) TransactionID() string { return e.Payment.CfPaymentID.String() }
func (e *WebhookEnvelope) Status() string        { return e.Payment.PaymentStatus }
func (e *WebhookEnvelope) Amount() string        { return e.Payment.PaymentAmount.String() }
func (e *WebhookEnvelope) Currency() string      { return e.Payment.PaymentCurrency }

// EventType prefers the explicit event tag and falls back to the
// envelope type header.
func (e *WebhookEnvelope) EventType() string {
	if e.Event != "" {
		return e.Event
	}
	return e.Type
}

// IndicatesSuccess reports the "payment succeeded" event signal.
// This is independent of Payment.PaymentStatus: either suffices
// to trigger the team projection.
func (e *WebhookEnvelope) IndicatesSuccess() bool {
	return strings.EqualFold(e.Event, "PAYMENT_SUCCESS")
}
