package mocks

import (
	"context"
	"errors"

	"github.com/caterquest/caterquest/internal/models"
)

type VendorCatalogMock struct {
	FindVendorsFunc    func(ctx context.Context, f models.VendorFilter) ([]models.Vendor, error)
	AverageRatingFunc  func(ctx context.Context, vendorID int64) (*float64, error)
	VendorReviewsFunc  func(ctx context.Context, vendorID int64) ([]models.Review, error)
	VendorMenuFunc     func(ctx context.Context, vendorID int64) ([]models.Menu, error)
	FindVendorsCalls   int
	AverageRatingCalls int
	VendorReviewsCalls int
	VendorMenuCalls    int
}

func (m *VendorCatalogMock) FindVendors(ctx context.Context, f models.VendorFilter) ([]models.Vendor, error) {
	m.FindVendorsCalls++
	if m.FindVendorsFunc == nil {
		return nil, errors.New("FindVendorsFunc not set")
	}
	return m.FindVendorsFunc(ctx, f)
}

func (m *VendorCatalogMock) AverageRating(ctx context.Context, vendorID int64) (*float64, error) {
	m.AverageRatingCalls++
	if m.AverageRatingFunc == nil {
		return nil, nil
	}
	return m.AverageRatingFunc(ctx, vendorID)
}

func (m *VendorCatalogMock) VendorReviews(ctx context.Context, vendorID int64) ([]models.Review, error) {
	m.VendorReviewsCalls++
	if m.VendorReviewsFunc == nil {
		return nil, nil
	}
	return m.VendorReviewsFunc(ctx, vendorID)
}

func (m *VendorCatalogMock) VendorMenu(ctx context.Context, vendorID int64) ([]models.Menu, error) {
	m.VendorMenuCalls++
	if m.VendorMenuFunc == nil {
		return nil, nil
	}
	return m.VendorMenuFunc(ctx, vendorID)
}
