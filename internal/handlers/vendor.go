package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/caterquest/caterquest/internal/kafka"
	"github.com/caterquest/caterquest/internal/models"
	"github.com/caterquest/caterquest/internal/retry"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type menuItemView struct {
	MenuID      int64  `json:"MenuID"`
	FoodItem    string `json:"FoodItem"`
	Price       string `json:"Price"`
	Description string `json:"Description"`
}

// vendorFromSession сверяет роль и достает профиль продавца текущей сессии.
func (h *Handler) vendorFromSession(w http.ResponseWriter, r *http.Request) (*models.Vendor, bool) {
	session, ok := h.requireRole(w, r, models.RoleVendor)
	if !ok {
		return nil, false
	}
	vendor, err := h.deps.Users.VendorByUserID(r.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeErrorMsg(w, http.StatusNotFound, "Vendor not found")
			return nil, false
		}
		writeError(w, err)
		return nil, false
	}
	return vendor, true
}

// MenuListHandler отдает меню текущего продавца.
//
//	@Summary  Меню продавца
//	@Produce  json
//	@Router   /menu [get]
func (h *Handler) MenuListHandler(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.vendorFromSession(w, r)
	if !ok {
		return
	}

	var items []models.Menu
	err := retry.Do(r.Context(), h.deps.ReadPolicy, "vendor menu", func() error {
		var qErr error
		items, qErr = h.deps.Menus.MenuByVendor(r.Context(), vendor.VendorID)
		return qErr
	})
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrDataUnavailable, err))
		return
	}

	menu := make([]menuItemView, 0, len(items))
	for _, item := range items {
		menu = append(menu, menuItemView{
			MenuID:      item.MenuID,
			FoodItem:    item.FoodItem,
			Price:       item.Price.StringFixed(2),
			Description: item.Description,
		})
	}

	writeJSON(w, http.StatusOK, map[string][]menuItemView{"menu": menu})
}

// MenuAddHandler добавляет позицию в меню текущего продавца.
//
//	@Summary  Добавить позицию меню
//	@Accept   json
//	@Produce  json
//	@Router   /menu [post]
func (h *Handler) MenuAddHandler(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.vendorFromSession(w, r)
	if !ok {
		return
	}

	var req models.MenuItemRequest
	if err := h.decode(r, &req); err != nil || req.Price.LessThanOrEqual(decimal.Zero) {
		writeErrorMsg(w, http.StatusBadRequest, "FoodItem and Price are required")
		return
	}

	item := &models.Menu{
		VendorID:    vendor.VendorID,
		FoodItem:    req.FoodItem,
		Price:       req.Price,
		Description: req.Description,
	}
	if err := h.deps.Menus.AddMenuItem(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "Menu item added successfully")
}

type menuUpdateRequest struct {
	FoodItem    *string          `json:"FoodItem"`
	Price       *decimal.Decimal `json:"Price"`
	Description *string          `json:"Description"`
}

// MenuUpdateHandler обновляет позицию меню; незаданные поля сохраняют значение.
//
//	@Summary  Изменить позицию меню
//	@Param    menu_id  path  int  true  "идентификатор позиции"
//	@Accept   json
//	@Produce  json
//	@Router   /menu/{menu_id} [put]
func (h *Handler) MenuUpdateHandler(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.vendorFromSession(w, r)
	if !ok {
		return
	}

	menuID, err := strconv.ParseInt(chi.URLParam(r, "menu_id"), 10, 64)
	if err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid menu id")
		return
	}

	item, err := h.deps.Menus.MenuItem(r.Context(), menuID, vendor.VendorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeErrorMsg(w, http.StatusNotFound, "Menu item not found or access denied")
			return
		}
		writeError(w, err)
		return
	}

	var req menuUpdateRequest
	if err := h.decode(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.FoodItem != nil {
		item.FoodItem = *req.FoodItem
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	if err := h.deps.Menus.UpdateMenuItem(r.Context(), item); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeErrorMsg(w, http.StatusNotFound, "Menu item not found or access denied")
			return
		}
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Menu item updated successfully")
}

// VendorOrdersHandler отдает заказы текущего продавца, свежие первыми.
//
//	@Summary  Заказы продавца
//	@Produce  json
//	@Router   /orders [get]
func (h *Handler) VendorOrdersHandler(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.vendorFromSession(w, r)
	if !ok {
		return
	}

	var orders []models.VendorOrder
	err := retry.Do(r.Context(), h.deps.ReadPolicy, "vendor orders", func() error {
		var qErr error
		orders, qErr = h.deps.Orders.OrdersByVendor(r.Context(), vendor.VendorID)
		return qErr
	})
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrDataUnavailable, err))
		return
	}
	if orders == nil {
		orders = []models.VendorOrder{}
	}

	writeJSON(w, http.StatusOK, map[string][]models.VendorOrder{"orders": orders})
}

// OrderStatusHandler меняет статус заказа, принадлежащего текущему продавцу.
//
//	@Summary  Сменить статус заказа
//	@Param    order_id  path  int  true  "идентификатор заказа"
//	@Accept   json
//	@Produce  json
//	@Router   /orders/{order_id} [put]
func (h *Handler) OrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.vendorFromSession(w, r)
	if !ok {
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req models.StatusUpdateRequest
	if err := h.decode(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.OrderStatus.Valid() {
		writeErrorMsg(w, http.StatusBadRequest, "Invalid order status.")
		return
	}

	order, customerName, err := h.deps.Orders.UpdateOrderStatus(r.Context(), orderID, vendor.VendorID, req.OrderStatus)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeErrorMsg(w, http.StatusNotFound, "Order not found or access denied.")
			return
		}
		writeError(w, err)
		return
	}

	event := kafka.StatusEvent{
		OrderID:      order.OrderID,
		NewStatus:    order.OrderStatus,
		CustomerName: customerName,
	}
	if err := h.deps.Notifier.OrderStatusUpdate(r.Context(), event); err != nil {
		logPublishError("order_status_update", err)
	}

	writeMessage(w, http.StatusOK, "Order status updated successfully.")
}
