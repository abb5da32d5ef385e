package provider

import (
	"fmt"
	"strings"

	providerRepo "stilrandevu/database/repository/provider"
	userRepo "stilrandevu/database/repository/user"
	"stilrandevu/models"
	"stilrandevu/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo     providerRepo.ProviderRepository
	UserRepo userRepo.UserRepository
}

// List returns providers matching the filter. A failed favorites lookup logs
// and falls back to the unfiltered listing rather than breaking browsing.
func (s *DefaultProviderService) List(filter ListFilter) ([]models.Provider, error) {
	if filter.FavoritesOf != "" {
		ids, err := s.UserRepo.GetFavorites(filter.FavoritesOf)
		if err != nil {
			utils.GetLogger().Warn("failed to fetch favorites for listing",
				zap.String("userID", filter.FavoritesOf), zap.Error(err))
			ids = nil
		}
		if len(ids) == 0 {
			return nil, nil
		}
		providers, err := s.Repo.GetByIDs(ids)
		if err != nil {
			return nil, fmt.Errorf("failed to list favorite providers: %w", err)
		}
		return filterByName(providers, filter.Name), nil
	}

	if filter.Name != "" {
		return s.Repo.SearchByName(filter.Name)
	}
	return s.Repo.GetAll()
}

func filterByName(providers []models.Provider, name string) []models.Provider {
	if name == "" {
		return providers
	}
	var out []models.Provider
	for _, p := range providers {
		if containsFold(p.Name, name) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Nearby lists all providers sorted by distance from the given coordinates.
func (s *DefaultProviderService) Nearby(lat, lon float64) ([]ProviderDistance, error) {
	providers, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return AnnotateAndSort(providers, lat, lon), nil
}

func (s *DefaultProviderService) GetByID(id string) (*models.Provider, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultProviderService) Register(p *models.Provider) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.Rating = 0
	p.TotalVotes = 0
	return s.Repo.Create(p)
}

func (s *DefaultProviderService) Update(p *models.Provider) error {
	return s.Repo.Update(p)
}

func (s *DefaultProviderService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultProviderService) AddService(providerID string, svc models.Service) (models.Service, error) {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if svc.Price < 0 {
		return models.Service{}, fmt.Errorf("service price cannot be negative")
	}
	if svc.DurationMin < 0 {
		return models.Service{}, fmt.Errorf("service duration cannot be negative")
	}
	if err := s.Repo.AddService(providerID, svc); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

func (s *DefaultProviderService) RemoveService(providerID, serviceID string) error {
	return s.Repo.RemoveService(providerID, serviceID)
}

func (s *DefaultProviderService) SetImage(providerID, imageURL string) error {
	return s.Repo.UpdateSet(providerID, bson.M{"image": imageURL})
}
