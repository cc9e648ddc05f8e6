package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/caterquest/caterquest/internal/auth"
	"github.com/caterquest/caterquest/internal/kafka"
	"github.com/caterquest/caterquest/internal/models"
	"github.com/caterquest/caterquest/internal/retry"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// VendorsHandler отдает отфильтрованный список продавцов через кеш выдачи.
//
//	@Summary  Список продавцов с рейтингами, отзывами и меню
//	@Param    location     query  string  false  "подстрока локации"
//	@Param    min_rating   query  number  false  "минимальный средний рейтинг"
//	@Param    vendor_name  query  string  false  "подстрока имени"
//	@Produce  json
//	@Router   /vendors [get]
func (h *Handler) VendorsHandler(w http.ResponseWriter, r *http.Request) {
	filter := models.VendorFilter{
		Location:   r.URL.Query().Get("location"),
		VendorName: r.URL.Query().Get("vendor_name"),
	}
	if raw := r.URL.Query().Get("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeErrorMsg(w, http.StatusBadRequest, "min_rating must be a number")
			return
		}
		filter.MinRating = &minRating
	}

	payload, _, err := h.deps.Catalog.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, models.ErrDataUnavailable) {
			writeErrorMsg(w, http.StatusInternalServerError, "Failed to fetch vendors after retries.")
			return
		}
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// ReviewHandler добавляет оценку продавцу: один отзыв на пару покупатель-продавец.
//
//	@Summary  Добавить отзыв продавцу
//	@Param    vendor_id  path  int  true  "идентификатор продавца"
//	@Accept   json
//	@Produce  json
//	@Router   /vendors/{vendor_id}/review [post]
func (h *Handler) ReviewHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireRole(w, r, models.RoleCustomer)
	if !ok {
		return
	}

	vendorID, err := strconv.ParseInt(chi.URLParam(r, "vendor_id"), 10, 64)
	if err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid vendor id")
		return
	}

	var req models.ReviewRequest
	if err := h.decode(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "Stars must be between 1 and 5 and Description is required.")
		return
	}

	customer, err := h.deps.Users.CustomerByUserID(r.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeErrorMsg(w, http.StatusNotFound, "Customer not found")
			return
		}
		writeError(w, err)
		return
	}

	exists, err := h.deps.Ratings.VendorExists(r.Context(), vendorID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !exists {
		writeErrorMsg(w, http.StatusNotFound, "Vendor not found")
		return
	}

	rating := &models.Rating{
		VendorID:    vendorID,
		CustomerID:  customer.CustomerID,
		Stars:       req.Stars,
		Description: req.Description,
	}
	if err := h.deps.Ratings.AddRating(r.Context(), rating); err != nil {
		if errors.Is(err, models.ErrConflict) {
			writeErrorMsg(w, http.StatusBadRequest, "You have already reviewed this vendor.")
			return
		}
		writeError(w, err)
		return
	}

	avg, err := h.deps.Ratings.AverageRating(r.Context(), vendorID)
	if err != nil {
		writeError(w, err)
		return
	}
	if avg != nil {
		rounded := math.Round(*avg*100) / 100
		avg = &rounded
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "Review added successfully.",
		"avg_rating": avg,
	})
}

// PlaceOrderHandler размещает заказ из нескольких позиций одного продавца.
// Все позиции проверяются до записи; заказ создается целиком или никак.
//
//	@Summary  Разместить заказ
//	@Accept   json
//	@Produce  json
//	@Router   /orders [post]
func (h *Handler) PlaceOrderHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireRole(w, r, models.RoleCustomer)
	if !ok {
		return
	}

	var req models.PlaceOrderRequest
	if err := h.decode(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "VendorID and items are required.")
		return
	}

	customer, err := h.deps.Users.CustomerByUserID(r.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeErrorMsg(w, http.StatusNotFound, "Customer not found")
			return
		}
		writeError(w, err)
		return
	}

	if _, err := h.deps.Orders.CreateOrders(r.Context(), req.VendorID, customer.CustomerID, req.Items); err != nil {
		if errors.Is(err, models.ErrInvalidItem) {
			writeErrorMsg(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, err)
		return
	}

	total := decimal.Zero
	lines := make([]kafka.OrderLineEvent, 0, len(req.Items))
	for _, item := range req.Items {
		total = total.Add(item.Subtotal())
		lines = append(lines, kafka.OrderLineEvent{
			MenuID:   item.MenuID,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
		})
	}
	event := kafka.NewOrderEvent{
		VendorID:   req.VendorID,
		Orders:     lines,
		TotalPrice: total.StringFixed(2),
	}
	if err := h.deps.Notifier.NewOrder(r.Context(), event); err != nil {
		// Заказ уже закоммичен; потеря уведомления не отменяет его.
		logPublishError("new_order", err)
	}

	writeMessage(w, http.StatusCreated, "Order placed successfully.")
}

// CustomerOrdersHandler отдает заказы текущего покупателя.
//
//	@Summary  Заказы покупателя
//	@Produce  json
//	@Router   /orders/customer [get]
func (h *Handler) CustomerOrdersHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := h.requireRole(w, r, models.RoleCustomer)
	if !ok {
		return
	}

	customer, err := h.deps.Users.CustomerByUserID(r.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeErrorMsg(w, http.StatusNotFound, "Customer not found")
			return
		}
		writeError(w, err)
		return
	}

	var orders []models.CustomerOrder
	err = retry.Do(r.Context(), h.deps.ReadPolicy, "customer orders", func() error {
		var qErr error
		orders, qErr = h.deps.Orders.OrdersByCustomer(r.Context(), customer.CustomerID)
		return qErr
	})
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", models.ErrDataUnavailable, err))
		return
	}
	if orders == nil {
		orders = []models.CustomerOrder{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// ChatRoomsHandler выводит комнаты чата из истории заказов текущей роли.
//
//	@Summary  Комнаты чата
//	@Produce  json
//	@Router   /chat/rooms [get]
func (h *Handler) ChatRoomsHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		writeErrorMsg(w, http.StatusForbidden, "forbidden")
		return
	}

	rooms := []string{}
	switch session.Role {
	case models.RoleCustomer:
		customer, err := h.deps.Users.CustomerByUserID(r.Context(), session.UserID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				writeErrorMsg(w, http.StatusNotFound, "Customer not found.")
				return
			}
			writeError(w, err)
			return
		}
		vendorIDs, err := h.deps.Orders.ChatRoomVendors(r.Context(), customer.CustomerID)
		if err != nil {
			writeError(w, err)
			return
		}
		for _, vendorID := range vendorIDs {
			rooms = append(rooms, fmt.Sprintf("room_%d_%d", vendorID, customer.CustomerID))
		}
	case models.RoleVendor:
		vendor, err := h.deps.Users.VendorByUserID(r.Context(), session.UserID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				writeErrorMsg(w, http.StatusNotFound, "Vendor not found.")
				return
			}
			writeError(w, err)
			return
		}
		customerIDs, err := h.deps.Orders.ChatRoomCustomers(r.Context(), vendor.VendorID)
		if err != nil {
			writeError(w, err)
			return
		}
		for _, customerID := range customerIDs {
			rooms = append(rooms, fmt.Sprintf("room_%d_%d", vendor.VendorID, customerID))
		}
	default:
		writeError(w, models.ErrForbidden)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"rooms": rooms})
}
