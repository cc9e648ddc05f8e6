package models

import "errors"

// Ошибки доменного уровня; обработчики отображают их в HTTP-статусы.
var (
	// ErrNotFound возвращается при отсутствии продавца, покупателя, заказа или позиции меню.
	ErrNotFound = errors.New("not found")
	// ErrForbidden возвращается при несоответствии роли или владельца.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict возвращается при повторном отзыве или занятом имени/почте.
	ErrConflict = errors.New("conflict")
	// ErrInvalidItem возвращается, если позиция заказа не принадлежит продавцу.
	ErrInvalidItem = errors.New("invalid item")
	// ErrInvalidStatus возвращается при недопустимом статусе заказа.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidCredentials возвращается при неверных учетных данных или роли.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDataUnavailable возвращается после исчерпания повторов на пути чтения.
	ErrDataUnavailable = errors.New("data unavailable")
)
