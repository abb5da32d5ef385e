package rating

import (
	"context"

	"stilrandevu/models"
)

// RatingService applies a customer's star rating for a completed appointment
// to the provider's running aggregate.
type RatingService interface {
	RateAppointment(ctx context.Context, userID, appointmentID string, stars int) (*models.RatingResult, error)
}
