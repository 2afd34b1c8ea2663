package service

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	model "teamreg_backend/internals/features/payments/model"
)

/* =========================================================
   Payment store

   All coordination between the three entry points happens
   through this table; the engine only sees the interface.
========================================================= */

type PaymentStore interface {
	// FindByOrderID returns (nil, nil) when no record exists.
	FindByOrderID(ctx context.Context, orderID string) (*model.PaymentModel, error)
	Insert(ctx context.Context, p *model.PaymentModel) error
	// UpdateFields applies a per-column set atomically on one row.
	UpdateFields(ctx context.Context, orderID string, fields map[string]interface{}) error
	TeamIDByOrderID(ctx context.Context, orderID string) (string, error)
}

// ErrDuplicateOrder surfaces the unique key on payment_order_id. A
// concurrent insert losing this race is repaired by the next
// observation, which will take the update path.
var ErrDuplicateOrder = errors.New("payment record already exists for order")

type GormPaymentStore struct {
	DB *gorm.DB
}

func NewGormPaymentStore(db *gorm.DB) *GormPaymentStore {
	return &GormPaymentStore{DB: db}
}

func (s *GormPaymentStore) FindByOrderID(ctx context.Context, orderID string) (*model.PaymentModel, error) {
	var p model.PaymentModel
	err := s.DB.WithContext(ctx).
		First(&p, "payment_order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "select", Err: err}
	}
	return &p, nil
}

func (s *GormPaymentStore) Insert(ctx context.Context, p *model.PaymentModel) error {
	if err := s.DB.WithContext(ctx).Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return &PersistenceError{Op: "insert", Err: ErrDuplicateOrder}
		}
		return &PersistenceError{Op: "insert", Err: err}
	}
	return nil
}

func (s *GormPaymentStore) UpdateFields(ctx context.Context, orderID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	err := s.DB.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_order_id = ?", orderID).
		Updates(fields).Error
	if err != nil {
		return &PersistenceError{Op: "update", Err: err}
	}
	return nil
}

func (s *GormPaymentStore) TeamIDByOrderID(ctx context.Context, orderID string) (string, error) {
	var teamID string
	err := s.DB.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_order_id = ?", orderID).
		Limit(1).
		Pluck("payment_team_id", &teamID).Error
	if err != nil {
		return "", &PersistenceError{Op: "select team_id", Err: err}
	}
	return teamID, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
