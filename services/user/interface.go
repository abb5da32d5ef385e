package user

import "stilrandevu/models"

// AuthResponse carries the signed-in user and their session token.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UserService exposes account registration, sign-in and profile management.
type UserService interface {
	RegisterUser(email, name, password string) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdateDisplayName(id, name string) error
	DeleteUser(id string) error
	RevokeToken(id string) error
}
