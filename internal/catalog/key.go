// Package catalog содержит путь выдачи списка продавцов:
// кеш по ключу фильтра, повторяемый запрос и сборку карточек.
package catalog

import (
	"fmt"
	"strconv"

	"github.com/caterquest/caterquest/internal/models"
)

const absent = "all"

// CacheKey детерминированно выводит ключ кеша из фильтра: отсутствующие
// поля замещаются константой, порядок полей фиксирован.
func CacheKey(f models.VendorFilter) string {
	location := absent
	if f.Location != "" {
		location = f.Location
	}
	minRating := absent
	if f.MinRating != nil {
		minRating = strconv.FormatFloat(*f.MinRating, 'f', -1, 64)
	}
	name := absent
	if f.VendorName != "" {
		name = f.VendorName
	}
	return fmt.Sprintf("vendors_%s_%s_%s", location, minRating, name)
}
