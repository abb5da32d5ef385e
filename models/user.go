package models

import "time"

// User represents a platform user. Favorites holds provider IDs and is
// mutated only through set operations ($addToSet/$pull) so that two devices
// toggling concurrently never overwrite each other's changes.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	Favorites    []string  `bson:"favorites,omitempty" json:"favorites,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
