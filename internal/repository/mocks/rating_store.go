package mocks

import (
	"context"
	"errors"

	"github.com/caterquest/caterquest/internal/models"
)

type RatingStoreMock struct {
	AddRatingFunc      func(ctx context.Context, r *models.Rating) error
	AverageRatingFunc  func(ctx context.Context, vendorID int64) (*float64, error)
	VendorExistsFunc   func(ctx context.Context, vendorID int64) (bool, error)
	AddRatingCalls     int
	AverageRatingCalls int
	VendorExistsCalls  int
}

func (m *RatingStoreMock) AddRating(ctx context.Context, r *models.Rating) error {
	m.AddRatingCalls++
	if m.AddRatingFunc == nil {
		return errors.New("AddRatingFunc not set")
	}
	return m.AddRatingFunc(ctx, r)
}

func (m *RatingStoreMock) AverageRating(ctx context.Context, vendorID int64) (*float64, error) {
	m.AverageRatingCalls++
	if m.AverageRatingFunc == nil {
		return nil, nil
	}
	return m.AverageRatingFunc(ctx, vendorID)
}

func (m *RatingStoreMock) VendorExists(ctx context.Context, vendorID int64) (bool, error) {
	m.VendorExistsCalls++
	if m.VendorExistsFunc == nil {
		return true, nil
	}
	return m.VendorExistsFunc(ctx, vendorID)
}
