package mocks

import (
	"context"
	"errors"

	"github.com/caterquest/caterquest/internal/models"
)

type UserStoreMock struct {
	CreateUserFunc       func(ctx context.Context, req models.RegisterRequest, passwordHash string) (*models.AuthUser, error)
	FindUserByLoginFunc  func(ctx context.Context, usernameOrEmail string, role models.Role) (*models.AuthUser, error)
	CustomerByUserIDFunc func(ctx context.Context, userID int64) (*models.Customer, error)
	VendorByUserIDFunc   func(ctx context.Context, userID int64) (*models.Vendor, error)

	CreateUserCalls       int
	FindUserByLoginCalls  int
	CustomerByUserIDCalls int
	VendorByUserIDCalls   int
}

func (m *UserStoreMock) CreateUser(ctx context.Context, req models.RegisterRequest, passwordHash string) (*models.AuthUser, error) {
	m.CreateUserCalls++
	if m.CreateUserFunc == nil {
		return nil, errors.New("CreateUserFunc not set")
	}
	return m.CreateUserFunc(ctx, req, passwordHash)
}

func (m *UserStoreMock) FindUserByLogin(ctx context.Context, usernameOrEmail string, role models.Role) (*models.AuthUser, error) {
	m.FindUserByLoginCalls++
	if m.FindUserByLoginFunc == nil {
		return nil, errors.New("FindUserByLoginFunc not set")
	}
	return m.FindUserByLoginFunc(ctx, usernameOrEmail, role)
}

func (m *UserStoreMock) CustomerByUserID(ctx context.Context, userID int64) (*models.Customer, error) {
	m.CustomerByUserIDCalls++
	if m.CustomerByUserIDFunc == nil {
		return nil, errors.New("CustomerByUserIDFunc not set")
	}
	return m.CustomerByUserIDFunc(ctx, userID)
}

func (m *UserStoreMock) VendorByUserID(ctx context.Context, userID int64) (*models.Vendor, error) {
	m.VendorByUserIDCalls++
	if m.VendorByUserIDFunc == nil {
		return nil, errors.New("VendorByUserIDFunc not set")
	}
	return m.VendorByUserIDFunc(ctx, userID)
}
