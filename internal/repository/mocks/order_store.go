package mocks

import (
	"context"
	"errors"

	"github.com/caterquest/caterquest/internal/models"
)

type OrderStoreMock struct {
	CreateOrdersFunc      func(ctx context.Context, vendorID, customerID int64, lines []models.OrderLine) ([]models.Order, error)
	OrdersByCustomerFunc  func(ctx context.Context, customerID int64) ([]models.CustomerOrder, error)
	OrdersByVendorFunc    func(ctx context.Context, vendorID int64) ([]models.VendorOrder, error)
	UpdateOrderStatusFunc func(ctx context.Context, orderID, vendorID int64, status models.OrderStatus) (*models.Order, string, error)
	ChatRoomVendorsFunc   func(ctx context.Context, customerID int64) ([]int64, error)
	ChatRoomCustomersFunc func(ctx context.Context, vendorID int64) ([]int64, error)

	CreateOrdersCalls      int
	OrdersByCustomerCalls  int
	OrdersByVendorCalls    int
	UpdateOrderStatusCalls int
	ChatRoomVendorsCalls   int
	ChatRoomCustomersCalls int
}

func (m *OrderStoreMock) CreateOrders(ctx context.Context, vendorID, customerID int64, lines []models.OrderLine) ([]models.Order, error) {
	m.CreateOrdersCalls++
	if m.CreateOrdersFunc == nil {
		return nil, errors.New("CreateOrdersFunc not set")
	}
	return m.CreateOrdersFunc(ctx, vendorID, customerID, lines)
}

func (m *OrderStoreMock) OrdersByCustomer(ctx context.Context, customerID int64) ([]models.CustomerOrder, error) {
	m.OrdersByCustomerCalls++
	if m.OrdersByCustomerFunc == nil {
		return nil, errors.New("OrdersByCustomerFunc not set")
	}
	return m.OrdersByCustomerFunc(ctx, customerID)
}

func (m *OrderStoreMock) OrdersByVendor(ctx context.Context, vendorID int64) ([]models.VendorOrder, error) {
	m.OrdersByVendorCalls++
	if m.OrdersByVendorFunc == nil {
		return nil, errors.New("OrdersByVendorFunc not set")
	}
	return m.OrdersByVendorFunc(ctx, vendorID)
}

func (m *OrderStoreMock) UpdateOrderStatus(ctx context.Context, orderID, vendorID int64, status models.OrderStatus) (*models.Order, string, error) {
	m.UpdateOrderStatusCalls++
	if m.UpdateOrderStatusFunc == nil {
		return nil, "", errors.New("UpdateOrderStatusFunc not set")
	}
	return m.UpdateOrderStatusFunc(ctx, orderID, vendorID, status)
}

func (m *OrderStoreMock) ChatRoomVendors(ctx context.Context, customerID int64) ([]int64, error) {
	m.ChatRoomVendorsCalls++
	if m.ChatRoomVendorsFunc == nil {
		return nil, errors.New("ChatRoomVendorsFunc not set")
	}
	return m.ChatRoomVendorsFunc(ctx, customerID)
}

func (m *OrderStoreMock) ChatRoomCustomers(ctx context.Context, vendorID int64) ([]int64, error) {
	m.ChatRoomCustomersCalls++
	if m.ChatRoomCustomersFunc == nil {
		return nil, errors.New("ChatRoomCustomersFunc not set")
	}
	return m.ChatRoomCustomersFunc(ctx, vendorID)
}
