package models

import "github.com/shopspring/decimal"

// Menu описывает позицию меню продавца.
type Menu struct {
	MenuID      int64           `json:"menu_id"`
	VendorID    int64           `json:"vendor_id"`
	FoodItem    string          `json:"food_item"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}
