package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
  payment_gateway_events = audit log of webhook notifications.
  Many rows per order are expected (the gateway redelivers), so this
  table is append-only and never consulted by the reconciliation path.
*/

const (
	GatewayEventStatusReceived = "received"
	GatewayEventStatusSuccess  = "success"
	GatewayEventStatusFailed   = "failed"
)

type GatewayEventModel struct {
	GatewayEventID uuid.UUID `gorm:"column:gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gateway_event_id"`

	GatewayEventProvider string  `gorm:"column:gateway_event_provider;not null" json:"gateway_event_provider"`
	GatewayEventType     *string `gorm:"column:gateway_event_type" json:"gateway_event_type"`

	// Gateway order id the event refers to, when present in the payload.
	GatewayEventOrderID *string `gorm:"column:gateway_event_order_id;index" json:"gateway_event_order_id"`

	// Raw data for debug / replay
	GatewayEventPayload   datatypes.JSON `gorm:"column:gateway_event_payload;type:jsonb" json:"gateway_event_payload"`
	GatewayEventSignature *string        `gorm:"column:gateway_event_signature" json:"gateway_event_signature"`
	GatewayEventTimestamp *string        `gorm:"column:gateway_event_timestamp" json:"gateway_event_timestamp"`

	GatewayEventStatus string  `gorm:"column:gateway_event_status;not null;default:'received'" json:"gateway_event_status"`
	GatewayEventError  *string `gorm:"column:gateway_event_error" json:"gateway_event_error"`

	GatewayEventReceivedAt  time.Time  `gorm:"column:gateway_event_received_at;not null;default:now()" json:"gateway_event_received_at"`
	GatewayEventProcessedAt *time.Time `gorm:"column:gateway_event_processed_at" json:"gateway_event_processed_at"`
}

func (GatewayEventModel) TableName() string { return "payment_gateway_events" }
