package models

// Rating описывает оценку продавца покупателем: 1-5 звезд плюс текст отзыва.
type Rating struct {
	RatingID    int64  `json:"rating_id"`
	VendorID    int64  `json:"vendor_id"`
	CustomerID  int64  `json:"customer_id"`
	Stars       int    `json:"stars"`
	Description string `json:"description"`
}

// Review проецирует оценку для выдачи в списке продавцов.
type Review struct {
	CustomerName string `json:"CustomerName"`
	Stars        int    `json:"Stars"`
	Description  string `json:"Description"`
}
