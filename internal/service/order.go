package service

import (
	"context"
	"errors"
	"fmt"
	"order-management-demo/internal/client"
	"order-management-demo/internal/config"
	"order-management-demo/internal/model"
	"order-management-demo/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an operation needs to resolve an order by
// id and no such row exists.
var ErrOrderNotFound = errors.New("order not found")

type OrderService interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	DeleteOrder(ctx context.Context, id uint) error
	UpdateOrder(ctx context.Context, id uint, amount decimal.Decimal, date string, paid bool, email string) error
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	CreatePayment(ctx context.Context, orderID uint, creditCardNumber string) error
	SendOrderEmail(ctx context.Context, email string) error
	SendPaymentEmail(ctx context.Context, orderID uint) error
}

type orderServiceImpl struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	publisher   client.Publisher
	mq          config.RabbitMQ
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	publisher client.Publisher,
	mq config.RabbitMQ,
) OrderService {
	return &orderServiceImpl{
		db:          db,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		publisher:   publisher,
		mq:          mq,
	}
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.orderRepo.Save(ctx, order)
}

// DeleteOrder does not report whether a row existed.
func (s *orderServiceImpl) DeleteOrder(ctx context.Context, id uint) error {
	return s.orderRepo.DeleteByID(ctx, id)
}

func (s *orderServiceImpl) UpdateOrder(ctx context.Context, id uint, amount decimal.Decimal, date string, paid bool, email string) error {
	err := s.orderRepo.UpdateByID(ctx, id, amount, date, paid, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}

	return err
}

func (s *orderServiceImpl) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *orderServiceImpl) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

// CreatePayment marks the order paid and inserts the payment row in a single
// transaction. Calling it twice for the same order inserts a second payment;
// there is no idempotency guard.
func (s *orderServiceImpl) CreatePayment(ctx context.Context, orderID uint, creditCardNumber string) error {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.MarkPaid(ctx, tx, order.ID); err != nil {
			return err
		}

		payment := &model.Payment{
			OrderID:          order.ID,
			CreditCardNumber: creditCardNumber,
		}
		return s.paymentRepo.Save(ctx, tx, payment)
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	return nil
}

func (s *orderServiceImpl) SendOrderEmail(ctx context.Context, email string) error {
	return s.publisher.Publish(ctx, s.mq.Exchange, s.mq.OrderRoutingKey, []byte(email))
}

func (s *orderServiceImpl) SendPaymentEmail(ctx context.Context, orderID uint) error {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	return s.publisher.Publish(ctx, s.mq.Exchange, s.mq.PaymentRoutingKey, []byte(order.Email))
}
