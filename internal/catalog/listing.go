package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/caterquest/caterquest/internal/models"
	"github.com/caterquest/caterquest/internal/repository"
	"github.com/caterquest/caterquest/internal/retry"
)

// Service отдает выдачу списка продавцов: сначала кеш, при промахе —
// запрос с повторами и сборка карточек, результат записывается в кеш.
type Service struct {
	store  repository.VendorCatalog
	cache  repository.ListingCache
	policy retry.Policy
}

func NewService(store repository.VendorCatalog, cache repository.ListingCache, policy retry.Policy) *Service {
	if policy.MaxAttempts == 0 {
		policy = retry.VendorListing
	}
	return &Service{store: store, cache: cache, policy: policy}
}

// List возвращает сериализованную выдачу и признак попадания в кеш.
// Кешированный ответ отдается дословно. После исчерпания повторов
// возвращается models.ErrDataUnavailable.
func (s *Service) List(ctx context.Context, f models.VendorFilter) ([]byte, bool, error) {
	key := CacheKey(f)

	if payload, ok := s.cache.Lookup(key); ok {
		log.Printf("cache hit for %s", key)
		return payload, true, nil
	}
	log.Printf("cache miss for %s", key)

	var vendors []models.Vendor
	err := retry.Do(ctx, s.policy, "query vendors", func() error {
		var qErr error
		vendors, qErr = s.store.FindVendors(ctx, f)
		return qErr
	})
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", models.ErrDataUnavailable, err)
	}

	summaries, err := s.aggregate(ctx, vendors)
	if err != nil {
		return nil, false, err
	}

	payload, err := json.Marshal(summaries)
	if err != nil {
		return nil, false, fmt.Errorf("marshal listing: %w", err)
	}

	s.cache.Store(key, payload)
	return payload, false, nil
}

// aggregate собирает карточки в порядке входного списка продавцов.
// Продавец без оценок получает nil рейтинг, без меню и отзывов — пустые
// списки, это не ошибка.
func (s *Service) aggregate(ctx context.Context, vendors []models.Vendor) ([]models.VendorSummary, error) {
	summaries := make([]models.VendorSummary, 0, len(vendors))
	for _, v := range vendors {
		avg, err := s.store.AverageRating(ctx, v.VendorID)
		if err != nil {
			return nil, fmt.Errorf("vendor %d: %w", v.VendorID, err)
		}
		if avg != nil {
			rounded := math.Round(*avg*100) / 100
			avg = &rounded
		}

		reviews, err := s.store.VendorReviews(ctx, v.VendorID)
		if err != nil {
			return nil, fmt.Errorf("vendor %d: %w", v.VendorID, err)
		}
		if reviews == nil {
			reviews = []models.Review{}
		}

		items, err := s.store.VendorMenu(ctx, v.VendorID)
		if err != nil {
			return nil, fmt.Errorf("vendor %d: %w", v.VendorID, err)
		}
		menu := make([]models.MenuEntry, 0, len(items))
		for _, m := range items {
			menu = append(menu, models.MenuEntry{
				MenuID:   m.MenuID,
				FoodItem: m.FoodItem,
				Price:    m.Price.StringFixed(2),
			})
		}

		summaries = append(summaries, models.VendorSummary{
			VendorID:   v.VendorID,
			VendorName: v.VendorName,
			Location:   v.Location,
			Phone:      v.Phone,
			Email:      v.Email,
			Address:    v.Address,
			AvgRating:  avg,
			Reviews:    reviews,
			Menu:       menu,
		})
	}
	return summaries, nil
}
