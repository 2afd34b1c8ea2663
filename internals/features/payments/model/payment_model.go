package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

/* ===================== Status values ===================== */
/* The gateway reports order statuses in mixed case across its
   create, lookup and webhook surfaces. Everything is folded to
   UPPERCASE before it reaches the table; PAID is the canonical
   paid literal all three entry points converge on.
*/

const (
	PaymentStatusInitiated = "INITIATED"
	PaymentStatusActive    = "ACTIVE"
	PaymentStatusPending   = "PENDING"
	PaymentStatusPaid      = "PAID"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusExpired   = "EXPIRED"
)

// CanonicalStatus folds a gateway-reported status to the stored
// representation. Unknown statuses are kept, uppercased.
func CanonicalStatus(s string) string {
	u := strings.ToUpper(strings.TrimSpace(s))
	if u == PaymentStatusPaid {
		return PaymentStatusPaid
	}
	return u
}

// IsPaidStatus reports whether a raw gateway status means paid,
// regardless of the case it arrived in.
func IsPaidStatus(s string) bool {
	return CanonicalStatus(s) == PaymentStatusPaid
}

/* ===================== Model ===================== */

type PaymentModel struct {
	// Gateway-assigned order id, one payment attempt per order.
	PaymentOrderID string `gorm:"column:payment_order_id;primaryKey" json:"payment_order_id"`

	// Set only by the create-order flow; the defensive webhook
	// insert path leaves it empty.
	PaymentTeamID string `gorm:"column:payment_team_id;index" json:"payment_team_id,omitempty"`

	// Opaque token the checkout client uses to open the gateway popup.
	PaymentSessionID string `gorm:"column:payment_session_id" json:"payment_session_id,omitempty"`

	PaymentAmount   string `gorm:"column:payment_amount;type:varchar(32)" json:"payment_amount"`
	PaymentCurrency string `gorm:"column:payment_currency;type:varchar(8);default:INR" json:"payment_currency"`

	PaymentStatus string `gorm:"column:payment_status;type:varchar(32);not null;default:'INITIATED'" json:"payment_status"`

	// First-write-wins: once set it is never cleared or replaced.
	PaymentTransactionID string `gorm:"column:payment_transaction_id" json:"payment_transaction_id,omitempty"`

	// Last observed full gateway response/notification, for audit.
	PaymentRawPayload datatypes.JSON `gorm:"column:payment_raw_payload;type:jsonb" json:"payment_raw_payload,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string { return "payments" }

/* ===================== Helpers ===================== */

func (p *PaymentModel) IsPaid() bool {
	return p.PaymentStatus == PaymentStatusPaid
}

func (p *PaymentModel) HasTransaction() bool {
	return strings.TrimSpace(p.PaymentTransactionID) != ""
}
