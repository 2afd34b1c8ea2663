package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

/* =========================================================
   Cashfree client

   Thin wrapper over the gateway's order endpoints. Credentials
   and base URL come in through CashfreeConfig at construction;
   nothing here reads the environment.
========================================================= */

const (
	cashfreeProductionBase = "https://api.cashfree.com/pg"
	cashfreeSandboxBase    = "https://sandbox.cashfree.com/pg"

	defaultAPIVersion = "2023-08-01"
	httpTimeout       = 10 * time.Second
)

type CashfreeConfig struct {
	BaseURL       string
	APIVersion    string
	ClientID      string
	ClientSecret  string
	WebhookSecret string
}

// NewCashfreeConfig selects the base URL from the environment flag
// value ("production" vs anything else = sandbox).
func NewCashfreeConfig(env, apiVersion, clientID, clientSecret, webhookSecret string) CashfreeConfig {
	base := cashfreeSandboxBase
	if strings.EqualFold(env, "production") {
		base = cashfreeProductionBase
	}
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	return CashfreeConfig{
		BaseURL:       base,
		APIVersion:    apiVersion,
		ClientID:      clientID,
		ClientSecret:  clientSecret,
		WebhookSecret: webhookSecret,
	}
}

type CreateOrderParams struct {
	Amount        string
	Currency      string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ReturnURL     string
}

// OrderResponse carries the parsed fields the engine needs plus the
// full body for the raw_payload column and the client round-trip.
type OrderResponse struct {
	OrderID          string          `json:"order_id"`
	PaymentSessionID string          `json:"payment_session_id"`
	OrderStatus      string          `json:"order_status"`
	TransactionID    string          `json:"transaction_id"`
	Raw              json.RawMessage `json:"-"`
}

type OrderGateway interface {
	CreateOrder(ctx context.Context, p CreateOrderParams) (*OrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*OrderResponse, error)
}

type CashfreeClient struct {
	cfg  CashfreeConfig
	http *http.Client
}

func NewCashfreeClient(cfg CashfreeConfig) *CashfreeClient {
	return &CashfreeClient{
		cfg:  cfg,
		http: &http.Client{Timeout: httpTimeout},
	}
}

func (c *CashfreeClient) CreateOrder(ctx context.Context, p CreateOrderParams) (*OrderResponse, error) {
	payload := map[string]interface{}{
		"order_amount":   p.Amount,
		"order_currency": p.Currency,
		"customer_details": map[string]string{
			"customer_id":    p.CustomerID,
			"customer_name":  p.CustomerName,
			"customer_email": p.CustomerEmail,
			"customer_phone": p.CustomerPhone,
		},
		"order_meta": map[string]string{
			"return_url": p.ReturnURL,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req)

	return c.do(req)
}

func (c *CashfreeClient) GetOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	endpoint := fmt.Sprintf("%s/orders/%s", c.cfg.BaseURL, url.PathEscape(orderID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setAuthHeaders(req)

	return c.do(req)
}

func (c *CashfreeClient) setAuthHeaders(req *http.Request) {
	req.Header.Set("x-api-version", c.cfg.APIVersion)
	req.Header.Set("x-client-id", c.cfg.ClientID)
	req.Header.Set("x-client-secret", c.cfg.ClientSecret)
}

func (c *CashfreeClient) do(req *http.Request) (*OrderResponse, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &GatewayError{StatusCode: res.StatusCode, Body: raw}
	}

	var out OrderResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}
	out.Raw = raw
	return &out, nil
}
