package repository

import (
	"context"
	"order-management-demo/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Save(ctx context.Context, tx *gorm.DB, payment *model.Payment) error
	FindByOrder(ctx context.Context, order *model.Order) (*model.Payment, error)
	DeleteAll(ctx context.Context) error
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) Save(ctx context.Context, tx *gorm.DB, payment *model.Payment) error {
	return tx.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepoImpl) FindByOrder(ctx context.Context, order *model.Order) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", order.ID).
		First(&payment).Error

	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (r *paymentRepoImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Payment{}).Error
}
