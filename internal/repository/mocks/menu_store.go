package mocks

import (
	"context"
	"errors"

	"github.com/caterquest/caterquest/internal/models"
)

type MenuStoreMock struct {
	MenuByVendorFunc   func(ctx context.Context, vendorID int64) ([]models.Menu, error)
	AddMenuItemFunc    func(ctx context.Context, item *models.Menu) error
	UpdateMenuItemFunc func(ctx context.Context, item *models.Menu) error
	MenuItemFunc       func(ctx context.Context, menuID, vendorID int64) (*models.Menu, error)

	MenuByVendorCalls   int
	AddMenuItemCalls    int
	UpdateMenuItemCalls int
	MenuItemCalls       int
}

func (m *MenuStoreMock) MenuByVendor(ctx context.Context, vendorID int64) ([]models.Menu, error) {
	m.MenuByVendorCalls++
	if m.MenuByVendorFunc == nil {
		return nil, errors.New("MenuByVendorFunc not set")
	}
	return m.MenuByVendorFunc(ctx, vendorID)
}

func (m *MenuStoreMock) AddMenuItem(ctx context.Context, item *models.Menu) error {
	m.AddMenuItemCalls++
	if m.AddMenuItemFunc == nil {
		return errors.New("AddMenuItemFunc not set")
	}
	return m.AddMenuItemFunc(ctx, item)
}

func (m *MenuStoreMock) UpdateMenuItem(ctx context.Context, item *models.Menu) error {
	m.UpdateMenuItemCalls++
	if m.UpdateMenuItemFunc == nil {
		return errors.New("UpdateMenuItemFunc not set")
	}
	return m.UpdateMenuItemFunc(ctx, item)
}

func (m *MenuStoreMock) MenuItem(ctx context.Context, menuID, vendorID int64) (*models.Menu, error) {
	m.MenuItemCalls++
	if m.MenuItemFunc == nil {
		return nil, errors.New("MenuItemFunc not set")
	}
	return m.MenuItemFunc(ctx, menuID, vendorID)
}
