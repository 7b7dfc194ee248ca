package model

import "github.com/shopspring/decimal"

type Order struct {
	ID     uint            `gorm:"primaryKey" json:"id"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date   string          `gorm:"size:32" json:"date"` // YYYY-MM-DD
	Paid   bool            `gorm:"not null;default:false" json:"paid"`
	Email  string          `gorm:"size:128;uniqueIndex;not null" json:"email"`
}

type Payment struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	OrderID          uint   `gorm:"index;not null" json:"order_id"`
	Order            Order  `gorm:"foreignKey:OrderID" json:"-"`
	CreditCardNumber string `gorm:"size:32;not null" json:"credit_card_number"`
}
