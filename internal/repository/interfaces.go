package repository

import (
	"context"
	"time"

	"github.com/caterquest/caterquest/internal/models"
)

// UserStore описывает операции с учетными записями и профилями ролей.
type UserStore interface {
	// CreateUser создает учетную запись и профиль роли в одной транзакции.
	// Возвращает models.ErrConflict при занятом имени или почте.
	CreateUser(ctx context.Context, req models.RegisterRequest, passwordHash string) (*models.AuthUser, error)
	// FindUserByLogin ищет учетную запись по имени или почте с совпадающей ролью.
	FindUserByLogin(ctx context.Context, usernameOrEmail string, role models.Role) (*models.AuthUser, error)
	CustomerByUserID(ctx context.Context, userID int64) (*models.Customer, error)
	VendorByUserID(ctx context.Context, userID int64) (*models.Vendor, error)
}

// VendorCatalog описывает путь чтения выдачи списка продавцов.
type VendorCatalog interface {
	// FindVendors возвращает продавцов по конъюнкции заданных фильтров.
	FindVendors(ctx context.Context, f models.VendorFilter) ([]models.Vendor, error)
	// AverageRating возвращает средний рейтинг продавца или nil без оценок.
	AverageRating(ctx context.Context, vendorID int64) (*float64, error)
	VendorReviews(ctx context.Context, vendorID int64) ([]models.Review, error)
	VendorMenu(ctx context.Context, vendorID int64) ([]models.Menu, error)
}

// MenuStore описывает операции продавца с меню.
type MenuStore interface {
	MenuByVendor(ctx context.Context, vendorID int64) ([]models.Menu, error)
	AddMenuItem(ctx context.Context, item *models.Menu) error
	// UpdateMenuItem обновляет позицию только в пределах меню владельца;
	// иначе models.ErrNotFound.
	UpdateMenuItem(ctx context.Context, item *models.Menu) error
	MenuItem(ctx context.Context, menuID, vendorID int64) (*models.Menu, error)
}

// OrderStore описывает операции с заказами.
type OrderStore interface {
	// CreateOrders проверяет принадлежность всех позиций продавцу и создает
	// по строке заказа на позицию в одной транзакции. Ни одна строка не
	// записывается при models.ErrInvalidItem.
	CreateOrders(ctx context.Context, vendorID, customerID int64, lines []models.OrderLine) ([]models.Order, error)
	OrdersByCustomer(ctx context.Context, customerID int64) ([]models.CustomerOrder, error)
	OrdersByVendor(ctx context.Context, vendorID int64) ([]models.VendorOrder, error)
	// UpdateOrderStatus меняет статус заказа, принадлежащего продавцу,
	// и возвращает обновленный заказ с именем покупателя для уведомления.
	UpdateOrderStatus(ctx context.Context, orderID, vendorID int64, status models.OrderStatus) (*models.Order, string, error)
	// ChatRoomVendors возвращает продавцов из истории заказов покупателя.
	ChatRoomVendors(ctx context.Context, customerID int64) ([]int64, error)
	// ChatRoomCustomers возвращает покупателей из истории заказов продавца.
	ChatRoomCustomers(ctx context.Context, vendorID int64) ([]int64, error)
}

// RatingStore описывает операции с оценками.
type RatingStore interface {
	// AddRating добавляет оценку; повторная оценка того же продавца тем же
	// покупателем дает models.ErrConflict.
	AddRating(ctx context.Context, r *models.Rating) error
	AverageRating(ctx context.Context, vendorID int64) (*float64, error)
	VendorExists(ctx context.Context, vendorID int64) (bool, error)
}

// ListingCache описывает кеш сериализованной выдачи по ключу фильтра.
type ListingCache interface {
	// Lookup возвращает сохраненный ответ, если запись еще действительна.
	Lookup(key string) ([]byte, bool)
	// Store атомарно замещает запись по ключу; последний писатель побеждает.
	Store(key string, payload []byte)
	StartJanitor(ctx context.Context, interval time.Duration)
}
