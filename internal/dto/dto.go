package dto

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Email  string          `json:"email"`
}

type UpdateOrderRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Paid   bool            `json:"paid"`
	Email  string          `json:"email"`
}

type PaymentRequest struct {
	CreditCardNumber string `json:"creditCardNumber"`
}
