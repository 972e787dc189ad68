package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/chaithanya-077/ridewave-r/internal/domain"
	"github.com/chaithanya-077/ridewave-r/internal/repository"
	apperrors "github.com/chaithanya-077/ridewave-r/pkg/util"
)

// CatalogService provides read-only access to the bike catalog.
type CatalogService struct {
	bikes repository.BikeRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(bikes repository.BikeRepository) *CatalogService {
	return &CatalogService{bikes: bikes}
}

// ListByCategory returns bikes of one category in catalog order.
func (s *CatalogService) ListByCategory(ctx context.Context, category domain.BikeCategory) ([]domain.Bike, error) {
	return s.bikes.ListByCategory(ctx, category)
}

// GroupedByCategory returns the full catalog keyed by category for the
// explore view.
func (s *CatalogService) GroupedByCategory(ctx context.Context) (map[domain.BikeCategory][]domain.Bike, error) {
	grouped := make(map[domain.BikeCategory][]domain.Bike, len(domain.Categories()))
	for _, category := range domain.Categories() {
		bikes, err := s.bikes.ListByCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		grouped[category] = bikes
	}
	return grouped, nil
}

// Get fetches a single bike.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Bike, error) {
	bike, err := s.bikes.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("bike", map[string]any{"bike_id": id})
		}
		return nil, err
	}
	return bike, nil
}
