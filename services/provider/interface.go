package provider

import "stilrandevu/models"

// ListFilter narrows the provider listing.
type ListFilter struct {
	// Name filters providers by name, case-insensitive substring match.
	Name string
	// FavoritesOf limits the listing to the given user's favorite providers.
	FavoritesOf string
}

// ProviderService exposes provider browsing and management.
type ProviderService interface {
	List(filter ListFilter) ([]models.Provider, error)
	Nearby(lat, lon float64) ([]ProviderDistance, error)
	GetByID(id string) (*models.Provider, error)
	Register(p *models.Provider) error
	Update(p *models.Provider) error
	Delete(id string) error
	AddService(providerID string, svc models.Service) (models.Service, error)
	RemoveService(providerID, serviceID string) error
	SetImage(providerID, imageURL string) error
}
