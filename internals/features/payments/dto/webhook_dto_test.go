package dto

import "testing"

func TestParseWebhookEnvelope(t *testing.T) {
	t.Run("Given full payload Then fields mapped", func(t *testing.T) {
		raw := []byte(`{
			"type": "PAYMENT_SUCCESS_WEBHOOK",
			"event": "PAYMENT_SUCCESS",
			"order": {"order_id": "O1"},
			"payment": {
				"cf_payment_id": 12345,
				"payment_status": "PAID",
				"payment_amount": 10.00,
				"payment_currency": "INR"
			},
			"customer_details": {"customer_id": "cust_1"}
		}`)

		env, err := ParseWebhookEnvelope(raw)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if env.OrderID() != "O1" {
			t.Errorf("order id = %q", env.OrderID())
		}
		if env.TransactionID() != "12345" {
			t.Errorf("transaction id = %q", env.TransactionID())
		}
		if env.Status() != "PAID" {
			t.Errorf("status = %q", env.Status())
		}
		if env.Currency() != "INR" {
			t.Errorf("currency = %q", env.Currency())
		}
		if !env.IndicatesSuccess() {
			t.Error("success event not detected")
		}
	})

	t.Run("Given payload without event tag Then success only via status", func(t *testing.T) {
		raw := []byte(`{"order":{"order_id":"O1"},"payment":{"payment_status":"FAILED"}}`)

		env, err := ParseWebhookEnvelope(raw)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if env.IndicatesSuccess() {
			t.Error("no success event expected")
		}
		if env.TransactionID() != "" {
			t.Errorf("transaction id = %q, want empty", env.TransactionID())
		}
	})

	t.Run("Given malformed json Then error", func(t *testing.T) {
		if _, err := ParseWebhookEnvelope([]byte(`{not-json`)); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("Given whitespace order id Then normalized to empty", func(t *testing.T) {
		env, err := ParseWebhookEnvelope([]byte(`{"order":{"order_id":"  "}}`))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if env.OrderID() != "" {
			t.Errorf("order id = %q, want empty", env.OrderID())
		}
	})
}

func TestCreateOrderRequest_ApplyDefaults(t *testing.T) {
	r := CreateOrderRequest{TeamID: "T1"}
	r.ApplyDefaults("http://localhost:3000/order-result")

	if r.Amount != "1.00" {
		t.Errorf("amount = %q", r.Amount)
	}
	if r.Currency != "INR" {
		t.Errorf("currency = %q", r.Currency)
	}
	if r.CustomerID == "" {
		t.Error("customer id not generated")
	}
	if r.ReturnURL != "http://localhost:3000/order-result" {
		t.Errorf("return url = %q", r.ReturnURL)
	}

	// Provided values are never overridden.
	r2 := CreateOrderRequest{TeamID: "T1", Amount: "25.00", Currency: "USD", CustomerID: "cust_x"}
	r2.ApplyDefaults("http://localhost:3000/order-result")
	if r2.Amount != "25.00" || r2.Currency != "USD" || r2.CustomerID != "cust_x" {
		t.Errorf("defaults overrode provided values: %+v", r2)
	}
}
