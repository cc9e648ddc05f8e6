package models

// VendorFilter задает необязательные фильтры списка продавцов.
// Пустая строка и nil означают отсутствие фильтра.
type VendorFilter struct {
	Location   string
	MinRating  *float64
	VendorName string
}
