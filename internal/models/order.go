package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus определяет статус заказа.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

// Valid сообщает, является ли статус допустимым.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order описывает одну строку заказа: один покупатель, один продавец, одна позиция меню.
type Order struct {
	OrderID     int64           `json:"order_id"`
	VendorID    int64           `json:"vendor_id"`
	CustomerID  int64           `json:"customer_id"`
	MenuID      int64           `json:"menu_id"`
	OrderDate   time.Time       `json:"order_date"`
	OrderStatus OrderStatus     `json:"order_status"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderLine описывает одну строку запроса на размещение заказа.
type OrderLine struct {
	MenuID   int64           `json:"menuID" validate:"gt=0"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"gt=0"`
}

// Subtotal возвращает стоимость строки: цена × количество.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
