package models

// VendorSummary собирается на запрос и не хранится: карточка продавца
// со средним рейтингом, отзывами и меню.
type VendorSummary struct {
	VendorID   int64       `json:"VendorID"`
	VendorName string      `json:"VendorName"`
	Location   string      `json:"Location"`
	Phone      string      `json:"Phone"`
	Email      string      `json:"Email"`
	Address    string      `json:"Address"`
	AvgRating  *float64    `json:"avg_rating"`
	Reviews    []Review    `json:"Reviews"`
	Menu       []MenuEntry `json:"Menu"`
}

// MenuEntry проецирует позицию меню; цена выводится строкой с фиксированной точкой.
type MenuEntry struct {
	MenuID   int64  `json:"MenuID"`
	FoodItem string `json:"FoodItem"`
	Price    string `json:"Price"`
}

// CustomerOrder проецирует заказ для выдачи покупателю.
type CustomerOrder struct {
	OrderID     int64       `json:"OrderID"`
	MenuItem    string      `json:"MenuItem"`
	Quantity    int         `json:"Quantity"`
	TotalPrice  string      `json:"TotalPrice"`
	OrderStatus OrderStatus `json:"OrderStatus"`
	OrderDate   string      `json:"OrderDate"`
}

// VendorOrder проецирует заказ для выдачи продавцу вместе с данными покупателя.
type VendorOrder struct {
	OrderID          int64       `json:"OrderID"`
	MenuItem         string      `json:"MenuItem"`
	Quantity         int         `json:"Quantity"`
	TotalPrice       string      `json:"TotalPrice"`
	OrderStatus      OrderStatus `json:"OrderStatus"`
	OrderDate        string      `json:"OrderDate"`
	CustomerName     string      `json:"CustomerName"`
	CustomerLocation string      `json:"CustomerLocation"`
}
