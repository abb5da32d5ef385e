package providerRepo

import (
	"context"

	"stilrandevu/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(id string) (*models.Provider, error)
	// GetAll retrieves all providers.
	GetAll() ([]models.Provider, error)
	// SearchByName returns providers whose name matches the query, case-insensitive.
	SearchByName(query string) ([]models.Provider, error)
	// GetByIDs retrieves the providers for the given set of IDs.
	GetByIDs(ids []string) ([]models.Provider, error)
	// Create inserts a new provider record.
	Create(provider *models.Provider) error
	// Update modifies an existing provider record.
	Update(provider *models.Provider) error
	// UpdateSet patches selected fields of a provider document.
	UpdateSet(id string, updateDoc bson.M) error
	// Delete removes a provider record by its ID; embedded services go with it.
	Delete(id string) error
	// AddService appends a service to the provider's catalogue.
	AddService(providerID string, svc models.Service) error
	// RemoveService removes a service from the provider's catalogue.
	RemoveService(providerID, serviceID string) error
	// ApplyRating folds one star value into the provider aggregate and flips
	// the appointment's isRated flag, both inside a single transaction.
	ApplyRating(ctx context.Context, providerID, appointmentID string, stars int) (*models.RatingResult, error)
}
