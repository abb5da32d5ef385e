package userRepo

import (
	"stilrandevu/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user document.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email address.
	GetByEmail(email string) (*models.User, error)
	// UpdateSet patches selected fields of a user document.
	UpdateSet(id string, updateDoc bson.M) error
	// Delete removes a user document by its ID.
	Delete(id string) error
	// GetFavorites returns the user's favorite provider IDs.
	GetFavorites(userID string) ([]string, error)
	// AddFavorite adds a provider to the user's favorite set ($addToSet).
	AddFavorite(userID, providerID string) error
	// RemoveFavorite removes a provider from the user's favorite set ($pull).
	RemoveFavorite(userID, providerID string) error
}
