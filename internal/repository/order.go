package repository

import (
	"context"
	"order-management-demo/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Save(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	FindByEmail(ctx context.Context, email string) (*model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)
	DeleteByID(ctx context.Context, id uint) error
	UpdateByID(ctx context.Context, id uint, amount decimal.Decimal, date string, paid bool, email string) error
	MarkPaid(ctx context.Context, tx *gorm.DB, id uint) error
	DeleteAll(ctx context.Context) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Save(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindByEmail(ctx context.Context, email string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindAll(ctx context.Context) ([]model.Order, error) {
	// Non-nil so an empty list serializes as [] rather than null.
	orders := []model.Order{}
	err := r.db.WithContext(ctx).Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// DeleteByID is a silent no-op when no row matches.
func (r *orderRepoImpl) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Order{}, id).Error
}

func (r *orderRepoImpl) UpdateByID(ctx context.Context, id uint, amount decimal.Decimal, date string, paid bool, email string) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"amount": amount,
			"date":   date,
			"paid":   paid,
			"email":  email,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *orderRepoImpl) MarkPaid(ctx context.Context, tx *gorm.DB, id uint) error {
	result := tx.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("paid", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *orderRepoImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Order{}).Error
}
