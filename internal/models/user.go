// Package models содержит доменные модели приложения.
package models

import "time"

// Role определяет роль учетной записи.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleVendor   Role = "Vendor"
)

// Valid сообщает, является ли роль допустимой.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleVendor
}

// AuthUser описывает учетную запись.
type AuthUser struct {
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Customer описывает профиль покупателя, связанный с учетной записью.
type Customer struct {
	CustomerID   int64  `json:"customer_id"`
	UserID       int64  `json:"user_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
}

// Vendor описывает профиль продавца, связанный с учетной записью.
type Vendor struct {
	VendorID   int64  `json:"vendor_id"`
	UserID     int64  `json:"user_id"`
	VendorName string `json:"vendor_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Location   string `json:"location"`
}
