package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/caterquest/caterquest/internal/models"
	"github.com/jackc/pgx/v5"
)

const orderDateLayout = "2006-01-02 15:04:05"

func (r *PostgresStorage) MenuByVendor(ctx context.Context, vendorID int64) ([]models.Menu, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT menu_id, vendor_id, food_item, price, COALESCE(description, '')
		FROM menu WHERE vendor_id = $1
		ORDER BY menu_id
	`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("query menu: %w", err)
	}
	defer rows.Close()

	var items []models.Menu
	for rows.Next() {
		var m models.Menu
		if err := rows.Scan(&m.MenuID, &m.VendorID, &m.FoodItem, &m.Price, &m.Description); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan menu rows: %w", err)
	}
	return items, nil
}

func (r *PostgresStorage) AddMenuItem(ctx context.Context, item *models.Menu) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO menu (vendor_id, food_item, price, description)
		VALUES ($1, $2, $3, $4)
		RETURNING menu_id
	`, item.VendorID, item.FoodItem, item.Price, item.Description).Scan(&item.MenuID)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

func (r *PostgresStorage) UpdateMenuItem(ctx context.Context, item *models.Menu) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE menu SET food_item = $1, price = $2, description = $3
		WHERE menu_id = $4 AND vendor_id = $5
	`, item.FoodItem, item.Price, item.Description, item.MenuID, item.VendorID)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *PostgresStorage) MenuItem(ctx context.Context, menuID, vendorID int64) (*models.Menu, error) {
	m := &models.Menu{}
	err := r.pool.QueryRow(ctx, `
		SELECT menu_id, vendor_id, food_item, price, COALESCE(description, '')
		FROM menu WHERE menu_id = $1 AND vendor_id = $2
	`, menuID, vendorID).Scan(&m.MenuID, &m.VendorID, &m.FoodItem, &m.Price, &m.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return m, nil
}

func (r *PostgresStorage) CreateOrders(ctx context.Context, vendorID, customerID int64, lines []models.OrderLine) ([]models.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Все позиции проверяются до первой вставки: заказ атомарен.
	for _, line := range lines {
		var exists bool
		err := tx.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM menu WHERE menu_id = $1 AND vendor_id = $2)
		`, line.MenuID, vendorID).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("check menu item %d: %w", line.MenuID, err)
		}
		if !exists {
			return nil, fmt.Errorf("menu item %d does not belong to vendor %d: %w",
				line.MenuID, vendorID, models.ErrInvalidItem)
		}
	}

	orders := make([]models.Order, 0, len(lines))
	for _, line := range lines {
		o := models.Order{
			VendorID:    vendorID,
			CustomerID:  customerID,
			MenuID:      line.MenuID,
			OrderStatus: models.OrderPending,
			Quantity:    line.Quantity,
			TotalPrice:  line.Subtotal(),
		}
		err := tx.QueryRow(ctx, `
			INSERT INTO orders (vendor_id, customer_id, menu_id, order_status, quantity, total_price)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING order_id, order_date
		`, o.VendorID, o.CustomerID, o.MenuID, o.OrderStatus, o.Quantity, o.TotalPrice).
			Scan(&o.OrderID, &o.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("insert order line: %w", err)
		}
		orders = append(orders, o)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return orders, nil
}

func (r *PostgresStorage) OrdersByCustomer(ctx context.Context, customerID int64) ([]models.CustomerOrder, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.order_id, m.food_item, o.quantity, o.total_price, o.order_status, o.order_date
		FROM orders o
		JOIN menu m ON m.menu_id = o.menu_id
		WHERE o.customer_id = $1
		ORDER BY o.order_id
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("query customer orders: %w", err)
	}
	defer rows.Close()

	var orders []models.CustomerOrder
	for rows.Next() {
		var o models.Order
		var co models.CustomerOrder
		if err := rows.Scan(&co.OrderID, &co.MenuItem, &co.Quantity, &o.TotalPrice, &co.OrderStatus, &o.OrderDate); err != nil {
			return nil, fmt.Errorf("scan customer order: %w", err)
		}
		co.TotalPrice = o.TotalPrice.StringFixed(2)
		co.OrderDate = o.OrderDate.Format(orderDateLayout)
		orders = append(orders, co)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan customer order rows: %w", err)
	}
	return orders, nil
}

func (r *PostgresStorage) OrdersByVendor(ctx context.Context, vendorID int64) ([]models.VendorOrder, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.order_id, m.food_item, o.quantity, o.total_price, o.order_status, o.order_date,
		       c.customer_name, COALESCE(c.location, '')
		FROM orders o
		JOIN menu m ON m.menu_id = o.menu_id
		JOIN customers c ON c.customer_id = o.customer_id
		WHERE o.vendor_id = $1
		ORDER BY o.order_date DESC
	`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("query vendor orders: %w", err)
	}
	defer rows.Close()

	var orders []models.VendorOrder
	for rows.Next() {
		var o models.Order
		var vo models.VendorOrder
		if err := rows.Scan(&vo.OrderID, &vo.MenuItem, &vo.Quantity, &o.TotalPrice, &vo.OrderStatus,
			&o.OrderDate, &vo.CustomerName, &vo.CustomerLocation); err != nil {
			return nil, fmt.Errorf("scan vendor order: %w", err)
		}
		vo.TotalPrice = o.TotalPrice.StringFixed(2)
		vo.OrderDate = o.OrderDate.Format(orderDateLayout)
		orders = append(orders, vo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan vendor order rows: %w", err)
	}
	return orders, nil
}

func (r *PostgresStorage) UpdateOrderStatus(ctx context.Context, orderID, vendorID int64, status models.OrderStatus) (*models.Order, string, error) {
	o := &models.Order{}
	var customerName string
	err := r.pool.QueryRow(ctx, `
		UPDATE orders o SET order_status = $1
		FROM customers c
		WHERE o.order_id = $2 AND o.vendor_id = $3 AND c.customer_id = o.customer_id
		RETURNING o.order_id, o.vendor_id, o.customer_id, o.menu_id, o.order_date,
		          o.order_status, o.quantity, o.total_price, c.customer_name
	`, status, orderID, vendorID).Scan(&o.OrderID, &o.VendorID, &o.CustomerID, &o.MenuID,
		&o.OrderDate, &o.OrderStatus, &o.Quantity, &o.TotalPrice, &customerName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", models.ErrNotFound
		}
		if isPgCode(err, pgCheckViolation) {
			return nil, "", models.ErrInvalidStatus
		}
		return nil, "", fmt.Errorf("update order status: %w", err)
	}
	return o, customerName, nil
}

func (r *PostgresStorage) ChatRoomVendors(ctx context.Context, customerID int64) ([]int64, error) {
	return r.chatRoomPeers(ctx, `SELECT vendor_id FROM orders WHERE customer_id = $1 ORDER BY order_id`, customerID)
}

func (r *PostgresStorage) ChatRoomCustomers(ctx context.Context, vendorID int64) ([]int64, error) {
	return r.chatRoomPeers(ctx, `SELECT customer_id FROM orders WHERE vendor_id = $1 ORDER BY order_id`, vendorID)
}

func (r *PostgresStorage) chatRoomPeers(ctx context.Context, query string, id int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("query chat peers: %w", err)
	}
	defer rows.Close()

	var peers []int64
	for rows.Next() {
		var peer int64
		if err := rows.Scan(&peer); err != nil {
			return nil, fmt.Errorf("scan chat peer: %w", err)
		}
		peers = append(peers, peer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan chat peer rows: %w", err)
	}
	return peers, nil
}

func (r *PostgresStorage) AddRating(ctx context.Context, rating *models.Rating) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO ratings (vendor_id, customer_id, stars, description)
		VALUES ($1, $2, $3, $4)
		RETURNING rating_id
	`, rating.VendorID, rating.CustomerID, rating.Stars, rating.Description).Scan(&rating.RatingID)
	if err != nil {
		if isPgCode(err, pgUniqueViolation) {
			return models.ErrConflict
		}
		if isPgCode(err, pgForeignKeyViolation) {
			return models.ErrNotFound
		}
		return fmt.Errorf("insert rating: %w", err)
	}
	return nil
}
