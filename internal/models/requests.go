package models

import "github.com/shopspring/decimal"

// RegisterRequest описывает запрос на регистрацию учетной записи с профилем роли.
type RegisterRequest struct {
	Username       string         `json:"username" validate:"required,min=3,max=50"`
	Email          string         `json:"email" validate:"required,email"`
	Password       string         `json:"password" validate:"required,min=6"`
	Role           Role           `json:"role" validate:"required,role"`
	AdditionalData ProfileRequest `json:"additional_data"`
}

// ProfileRequest содержит поля профиля покупателя или продавца.
type ProfileRequest struct {
	CustomerName string `json:"customer_name"`
	VendorName   string `json:"vendor_name"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
	Address      string `json:"address"`
	Location     string `json:"location"`
}

// LoginRequest описывает запрос на вход.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	Role            Role   `json:"role" validate:"required,role"`
}

// ReviewRequest описывает запрос на добавление отзыва.
type ReviewRequest struct {
	Stars       int    `json:"Stars" validate:"required,gte=1,lte=5"`
	Description string `json:"Description" validate:"required"`
}

// PlaceOrderRequest описывает запрос на размещение заказа из нескольких позиций одного продавца.
type PlaceOrderRequest struct {
	VendorID int64       `json:"vendorID" validate:"gt=0"`
	Items    []OrderLine `json:"items" validate:"required,min=1,dive"`
}

// MenuItemRequest описывает запрос на добавление или изменение позиции меню.
type MenuItemRequest struct {
	FoodItem    string          `json:"FoodItem" validate:"required,max=100"`
	Price       decimal.Decimal `json:"Price"`
	Description string          `json:"Description"`
}

// StatusUpdateRequest описывает запрос на смену статуса заказа.
type StatusUpdateRequest struct {
	OrderStatus OrderStatus `json:"OrderStatus" validate:"required"`
}
