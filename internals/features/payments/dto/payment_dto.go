package dto

import (
	"strings"

	"github.com/google/uuid"
)

/* =========================================================
   CREATE ORDER
========================================================= */

type CreateOrderRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`

	TeamID string `json:"team_id" validate:"required"`

	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone"`

	ReturnURL string `json:"return_url" validate:"omitempty,url"`
}

// ApplyDefaults fills the optional fields the checkout client may omit.
// defaultReturnURL comes from process configuration (APP_BASE_URL).
func (r *CreateOrderRequest) ApplyDefaults(defaultReturnURL string) {
	if strings.TrimSpace(r.Amount) == "" {
		r.Amount = "1.00"
	}
	if strings.TrimSpace(r.Currency) == "" {
		r.Currency = "INR"
	}
	if strings.TrimSpace(r.CustomerID) == "" {
		r.CustomerID = "cust_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	}
	if strings.TrimSpace(r.ReturnURL) == "" {
		r.ReturnURL = defaultReturnURL
	}
}
