package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"order-management-demo/internal/dto"
	"order-management-demo/internal/model"
	"order-management-demo/internal/service"
	"strconv"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
	logger       *slog.Logger
}

func NewOrderHandler(orderService service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	order := &model.Order{
		Amount: req.Amount,
		Email:  req.Email,
	}
	if err := h.orderService.CreateOrder(ctx, order); err != nil {
		return err
	}

	// Confirmation publish is fire-and-forget; a broker failure does not fail
	// the request.
	if err := h.orderService.SendOrderEmail(ctx, order.Email); err != nil {
		h.logger.Error("failed to publish order confirmation", "order_id", order.ID, "error", err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseOrderID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	err = h.orderService.UpdateOrder(ctx, id, req.Amount, req.Date, req.Paid, req.Email)
	if errors.Is(err, service.ErrOrderNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseOrderID(c)
	if err != nil {
		return err
	}

	if err := h.orderService.DeleteOrder(ctx, id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseOrderID(c)
	if err != nil {
		return err
	}

	order, err := h.orderService.GetOrderByID(ctx, id)
	if errors.Is(err, service.ErrOrderNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.GetAllOrders(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) PayOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseOrderID(c)
	if err != nil {
		return err
	}

	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	err = h.orderService.CreatePayment(ctx, id, req.CreditCardNumber)
	if errors.Is(err, service.ErrOrderNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	if err := h.orderService.SendPaymentEmail(ctx, id); err != nil {
		h.logger.Error("failed to publish payment confirmation", "order_id", id, "error", err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "paid"})
}

func parseOrderID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	return uint(id), nil
}
