package models

import "time"

// Appointment status values.
const (
	AppointmentPending   = "pending"
	AppointmentCompleted = "completed"
)

// Appointment is the persisted record of a confirmed booking. The provider
// name and service names are denormalized at creation time so the record
// stays displayable even if the provider changes later. IsRated transitions
// false -> true exactly once.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"userId" json:"userId"`
	UserEmail    string    `bson:"userEmail" json:"userEmail"`
	ProviderID   string    `bson:"providerId" json:"providerId"`
	ProviderName string    `bson:"providerName" json:"providerName"`
	Date         string    `bson:"date" json:"date"` // e.g., "2025-10-21"
	DateLabel    string    `bson:"dateLabel" json:"dateLabel"`
	Time         string    `bson:"time" json:"time"` // e.g., "14:00"
	Services     string    `bson:"services" json:"services"` // comma-joined service names
	TotalPrice   float64   `bson:"totalPrice" json:"totalPrice"`
	Status       string    `bson:"status" json:"status"`
	IsRated      bool      `bson:"isRated" json:"isRated"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
