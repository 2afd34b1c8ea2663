package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	model "teamreg_backend/internals/features/payments/model"
)

/* =========================================================
   Reconciliation engine

   Converges the payment record from three unordered sources:
   the create response, verify polling, and the webhook push.
   Merge discipline: last-write-wins per field, first-write-wins
   for transaction_id, idempotent status application. There is
   no ordering guarantee between poll and webhook delivery.
========================================================= */

// TeamProjector propagates a payment outcome to the team entity.
// Implementations must be idempotent.
type TeamProjector interface {
	MarkPaid(ctx context.Context, teamID string) error
	MarkPending(ctx context.Context, teamID string) error
}

type Engine struct {
	gateway OrderGateway
	store   PaymentStore
	teams   TeamProjector
}

func NewEngine(gateway OrderGateway, store PaymentStore, teams TeamProjector) *Engine {
	return &Engine{gateway: gateway, store: store, teams: teams}
}

/* =========================================================
   Entry point 1: order creation
========================================================= */

type CreateOrderInput struct {
	TeamID string
	Params CreateOrderParams
}

// CreateOrder creates the gateway order and persists the initial
// record. This is the only path that sets payment_team_id. An insert
// failure aborts the flow: the checkout client depends on the stored
// payment_session_id round-trip, so an unrecorded order must surface
// as an error. The gateway-side order is not cancelled in that case
// (known gap, the order simply expires unpaid).
func (e *Engine) CreateOrder(ctx context.Context, in CreateOrderInput) (*OrderResponse, error) {
	if strings.TrimSpace(in.TeamID) == "" {
		return nil, &ValidationError{Msg: "Missing team_id"}
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(in.Params.Amount))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, &ValidationError{Msg: "Invalid amount"}
	}

	resp, err := e.gateway.CreateOrder(ctx, in.Params)
	if err != nil {
		return nil, err
	}

	rec := &model.PaymentModel{
		PaymentOrderID:    resp.OrderID,
		PaymentTeamID:     in.TeamID,
		PaymentSessionID:  resp.PaymentSessionID,
		PaymentAmount:     in.Params.Amount,
		PaymentCurrency:   in.Params.Currency,
		PaymentStatus:     model.CanonicalStatus(resp.OrderStatus),
		PaymentRawPayload: datatypes.JSON(resp.Raw),
	}
	if err := e.store.Insert(ctx, rec); err != nil {
		return nil, err
	}

	if err := e.teams.MarkPending(ctx, in.TeamID); err != nil {
		return nil, err
	}
	return resp, nil
}

/* =========================================================
   Entry point 2: verify polling
========================================================= */

type VerifyResult struct {
	Order *OrderResponse

	// Non-fatal outcomes for the boundary to log. The verified
	// gateway state is still returned to the caller; the store is
	// repairable by the next observation.
	StoreErr   error
	TeamMarked bool
	ProjectErr error
}

// VerifyOrder polls the gateway and overwrites the stored record
// with whatever it reports. Unlike the webhook path this does not
// compute a minimal delta: status, transaction_id, raw_payload and
// updated_at are always written.
func (e *Engine) VerifyOrder(ctx context.Context, orderID string) (*VerifyResult, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, &ValidationError{Msg: "Missing order_id"}
	}

	resp, err := e.gateway.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	res := &VerifyResult{Order: resp}
	res.StoreErr = e.store.UpdateFields(ctx, orderID, map[string]interface{}{
		"payment_status":         model.CanonicalStatus(resp.OrderStatus),
		"payment_transaction_id": resp.TransactionID,
		"payment_raw_payload":    datatypes.JSON(resp.Raw),
		"payment_updated_at":     time.Now().UTC(),
	})

	if model.IsPaidStatus(resp.OrderStatus) {
		res.TeamMarked, res.ProjectErr = e.projectPaid(ctx, orderID)
	}
	return res, nil
}

/* =========================================================
   Entry point 3: webhook notification
========================================================= */

// WebhookObservation is the normalized view of a (signature-verified)
// notification.
type WebhookObservation struct {
	OrderID       string
	TransactionID string
	Status        string
	Amount        string
	Currency      string
	// Distinct "payment succeeded" event signal; either this or a
	// paid Status triggers the team projection.
	EventSuccess bool
	RawPayload   []byte
}

type WebhookResult struct {
	Inserted bool
	Updated  bool

	TeamMarked bool

	StoreErr   error
	ProjectErr error
}

// ApplyWebhook merges a notification into the store. Duplicated and
// out-of-order deliveries are expected: applying the same observation
// twice computes an empty update set the second time.
func (e *Engine) ApplyWebhook(ctx context.Context, obs WebhookObservation) (*WebhookResult, error) {
	if strings.TrimSpace(obs.OrderID) == "" {
		return nil, &ValidationError{Msg: "Missing order_id in payload"}
	}

	res := &WebhookResult{}

	existing, err := e.store.FindByOrderID(ctx, obs.OrderID)
	if err != nil {
		// Treat an unreadable record as absent; the insert below
		// either lands or hits the unique key.
		res.StoreErr = err
	}

	if existing == nil {
		// Webhook arrived before (or instead of) the creation flow's
		// insert. team_id is unknown here and stays unset.
		rec := &model.PaymentModel{
			PaymentOrderID:       obs.OrderID,
			PaymentTransactionID: obs.TransactionID,
			PaymentAmount:        obs.Amount,
			PaymentCurrency:      obs.Currency,
			PaymentStatus:        model.CanonicalStatus(obs.Status),
			PaymentRawPayload:    datatypes.JSON(obs.RawPayload),
		}
		if err := e.store.Insert(ctx, rec); err != nil {
			res.StoreErr = err
		} else {
			res.Inserted = true
		}
	} else {
		updates := map[string]interface{}{}
		if obs.Status != "" && !strings.EqualFold(obs.Status, existing.PaymentStatus) {
			updates["payment_status"] = model.CanonicalStatus(obs.Status)
		}
		if obs.TransactionID != "" && !existing.HasTransaction() {
			updates["payment_transaction_id"] = obs.TransactionID
		}
		if len(updates) > 0 {
			updates["payment_raw_payload"] = datatypes.JSON(obs.RawPayload)
			updates["payment_updated_at"] = time.Now().UTC()
			if err := e.store.UpdateFields(ctx, obs.OrderID, updates); err != nil {
				res.StoreErr = err
			} else {
				res.Updated = true
			}
		}
	}

	if model.IsPaidStatus(obs.Status) || obs.EventSuccess {
		res.TeamMarked, res.ProjectErr = e.projectPaid(ctx, obs.OrderID)
	}
	return res, nil
}

/* =========================================================
   Shared projection step
========================================================= */

// projectPaid resolves the record's team and marks it paid. A record
// created by the defensive webhook path has no team yet; that is not
// an error, any later observation re-triggers the projection.
func (e *Engine) projectPaid(ctx context.Context, orderID string) (bool, error) {
	teamID, err := e.store.TeamIDByOrderID(ctx, orderID)
	if err != nil {
		return false, err
	}
	if teamID == "" {
		return false, nil
	}
	if err := e.teams.MarkPaid(ctx, teamID); err != nil {
		return false, err
	}
	return true, nil
}
