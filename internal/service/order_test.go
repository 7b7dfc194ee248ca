package service

import (
	"context"
	"order-management-demo/internal/config"
	"order-management-demo/internal/model"
	"order-management-demo/internal/repository"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakePublisher struct {
	published []publishedMessage
}

type publishedMessage struct {
	exchange   string
	routingKey string
	payload    string
}

func (p *fakePublisher) Publish(_ context.Context, exchange string, routingKey string, payload []byte) error {
	p.published = append(p.published, publishedMessage{
		exchange:   exchange,
		routingKey: routingKey,
		payload:    string(payload),
	})
	return nil
}

var testMQ = config.RabbitMQ{
	Exchange:          "orders_exchange",
	OrderRoutingKey:   "order_confirmation",
	PaymentRoutingKey: "payment_confirmation",
}

func newTestService(t *testing.T) (OrderService, *gorm.DB, *fakePublisher) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Order{}, &model.Payment{}))

	publisher := &fakePublisher{}
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewPaymentRepository(db),
		publisher,
		testMQ,
	)

	return svc, db, publisher
}

func TestCreateOrderAndGetByID(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	order := &model.Order{
		Amount: decimal.RequireFromString("1000.00"),
		Email:  "a@b.com",
	}
	require.NoError(t, svc.CreateOrder(ctx, order))
	require.NotZero(t, order.ID)

	found, err := svc.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(decimal.RequireFromString("1000.00")))
	assert.Equal(t, "a@b.com", found.Email)
	assert.False(t, found.Paid)
}

func TestGetOrderByIDMissing(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetOrderByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	order := &model.Order{
		Amount: decimal.RequireFromString("1000.00"),
		Email:  "a@b.com",
	}
	require.NoError(t, svc.CreateOrder(ctx, order))

	newAmount := decimal.RequireFromString("500.00")
	require.NoError(t, svc.UpdateOrder(ctx, order.ID, newAmount, "2023-06-01", true, "test@mail.com"))

	updated, err := svc.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(newAmount))
	assert.Equal(t, "2023-06-01", updated.Date)
	assert.True(t, updated.Paid)
	assert.Equal(t, "test@mail.com", updated.Email)
}

func TestUpdateOrderMissing(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.UpdateOrder(context.Background(), 999, decimal.NewFromInt(1), "2023-06-01", false, "x@y.com")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDeleteOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	order := &model.Order{
		Amount: decimal.NewFromInt(10),
		Email:  "a@b.com",
	}
	require.NoError(t, svc.CreateOrder(ctx, order))

	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	_, err := svc.GetOrderByID(ctx, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// The missing-id case reports nothing.
	assert.NoError(t, svc.DeleteOrder(ctx, 999))
}

func TestCreatePayment(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	order := &model.Order{
		Amount: decimal.RequireFromString("1000.00"),
		Email:  "a@b.com",
	}
	require.NoError(t, svc.CreateOrder(ctx, order))

	require.NoError(t, svc.CreatePayment(ctx, order.ID, "4636790463393611"))

	paid, err := svc.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)

	payment, err := repository.NewPaymentRepository(db).FindByOrder(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, order.ID, payment.OrderID)
	assert.Equal(t, "4636790463393611", payment.CreditCardNumber)
}

func TestCreatePaymentMissingOrder(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	err := svc.CreatePayment(ctx, 999, "4636790463393611")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSendOrderEmail(t *testing.T) {
	svc, _, publisher := newTestService(t)

	require.NoError(t, svc.SendOrderEmail(context.Background(), "a@b.com"))

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "orders_exchange", publisher.published[0].exchange)
	assert.Equal(t, "order_confirmation", publisher.published[0].routingKey)
	assert.Equal(t, "a@b.com", publisher.published[0].payload)
}

func TestSendPaymentEmail(t *testing.T) {
	svc, _, publisher := newTestService(t)
	ctx := context.Background()

	order := &model.Order{
		Amount: decimal.NewFromInt(10),
		Email:  "a@b.com",
	}
	require.NoError(t, svc.CreateOrder(ctx, order))

	require.NoError(t, svc.SendPaymentEmail(ctx, order.ID))

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "payment_confirmation", publisher.published[0].routingKey)
	assert.Equal(t, "a@b.com", publisher.published[0].payload)
}

func TestSendPaymentEmailMissingOrder(t *testing.T) {
	svc, _, publisher := newTestService(t)

	err := svc.SendPaymentEmail(context.Background(), 999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Empty(t, publisher.published)
}
