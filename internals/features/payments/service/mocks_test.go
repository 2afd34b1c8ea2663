package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	model "teamreg_backend/internals/features/payments/model"
)

// =============================================================================
// Mock: PaymentStore
// =============================================================================

type MockPaymentStore struct {
	mu      sync.Mutex
	Records map[string]*model.PaymentModel

	InsertErr error
	UpdateErr error
	FindErr   error

	InsertCalls int
	UpdateCalls int
	// Field sets passed to UpdateFields, in order.
	UpdateSets []map[string]interface{}
}

func NewMockPaymentStore() *MockPaymentStore {
	return &MockPaymentStore{Records: map[string]*model.PaymentModel{}}
}

func (m *MockPaymentStore) FindByOrderID(ctx context.Context, orderID string) (*model.PaymentModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	rec, ok := m.Records[orderID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *MockPaymentStore) Insert(ctx context.Context, p *model.PaymentModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InsertCalls++
	if m.InsertErr != nil {
		return m.InsertErr
	}
	if _, exists := m.Records[p.PaymentOrderID]; exists {
		return &PersistenceError{Op: "insert", Err: ErrDuplicateOrder}
	}
	cp := *p
	m.Records[p.PaymentOrderID] = &cp
	return nil
}

func (m *MockPaymentStore) UpdateFields(ctx context.Context, orderID string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	m.UpdateSets = append(m.UpdateSets, fields)
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	rec, ok := m.Records[orderID]
	if !ok {
		return nil
	}
	if v, ok := fields["payment_status"]; ok {
		rec.PaymentStatus = v.(string)
	}
	if v, ok := fields["payment_transaction_id"]; ok {
		rec.PaymentTransactionID = v.(string)
	}
	return nil
}

func (m *MockPaymentStore) TeamIDByOrderID(ctx context.Context, orderID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return "", m.FindErr
	}
	if rec, ok := m.Records[orderID]; ok {
		return rec.PaymentTeamID, nil
	}
	return "", nil
}

// =============================================================================
// Mock: OrderGateway
// =============================================================================

type MockGateway struct {
	CreateResp *OrderResponse
	CreateErr  error
	GetResp    *OrderResponse
	GetErr     error

	CreateCalls int
	GetCalls    int
}

func (m *MockGateway) CreateOrder(ctx context.Context, p CreateOrderParams) (*OrderResponse, error) {
	m.CreateCalls++
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	return m.CreateResp, nil
}

func (m *MockGateway) GetOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	m.GetCalls++
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.GetResp, nil
}

// =============================================================================
// Mock: TeamProjector
// =============================================================================

type MockTeamProjector struct {
	PaidErr    error
	PendingErr error

	PaidCalls    []string
	PendingCalls []string
}

func (m *MockTeamProjector) MarkPaid(ctx context.Context, teamID string) error {
	m.PaidCalls = append(m.PaidCalls, teamID)
	return m.PaidErr
}

func (m *MockTeamProjector) MarkPending(ctx context.Context, teamID string) error {
	m.PendingCalls = append(m.PendingCalls, teamID)
	return m.PendingErr
}

// =============================================================================
// Shared helpers
// =============================================================================

func orderResp(orderID, sessionID, status string) *OrderResponse {
	raw, _ := json.Marshal(map[string]string{
		"order_id":           orderID,
		"payment_session_id": sessionID,
		"order_status":       status,
	})
	return &OrderResponse{
		OrderID:          orderID,
		PaymentSessionID: sessionID,
		OrderStatus:      status,
		Raw:              raw,
	}
}

var errBoom = errors.New("boom")
