package rating

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "stilrandevu/database/repository/appointment"
	providerRepo "stilrandevu/database/repository/provider"
	"stilrandevu/models"
	"stilrandevu/utils"

	"go.uber.org/zap"
)

// RatingError is a rating request rejected before the aggregate is touched.
type RatingError struct {
	Code    string
	Message string
}

func (e *RatingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrInvalidStars signals a star value outside 1..5.
	ErrInvalidStars = &RatingError{Code: "invalidStars", Message: "rating must be between 1 and 5 stars"}
	// ErrNotOwner signals the appointment belongs to another user.
	ErrNotOwner = &RatingError{Code: "notOwner", Message: "you can only rate your own appointments"}
	// ErrNotCompleted signals the service has not been performed yet.
	ErrNotCompleted = &RatingError{Code: "notCompleted", Message: "only completed appointments can be rated"}
	// ErrAlreadyRated signals the appointment's one rating has been spent.
	ErrAlreadyRated = &RatingError{Code: "alreadyRated", Message: "this appointment has already been rated"}
)

// DefaultRatingService implements RatingService.
type DefaultRatingService struct {
	ProviderRepo providerRepo.ProviderRepository
	ApptRepo     appointmentRepo.AppointmentRepository
}

// RateAppointment checks that the appointment is the caller's, completed and
// still unrated, then folds the star value into the provider aggregate. The
// aggregate update and the isRated flip happen in one storage transaction,
// so a vote is never counted without consuming the appointment's rating.
func (s *DefaultRatingService) RateAppointment(ctx context.Context, userID, appointmentID string, stars int) (*models.RatingResult, error) {
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidStars
	}

	appt, err := s.ApptRepo.GetByID(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt.UserID != userID {
		return nil, ErrNotOwner
	}
	if appt.Status != models.AppointmentCompleted {
		return nil, ErrNotCompleted
	}
	if appt.IsRated {
		return nil, ErrAlreadyRated
	}

	result, err := s.ProviderRepo.ApplyRating(ctx, appt.ProviderID, appt.ID, stars)
	if err != nil {
		if errors.Is(err, providerRepo.ErrAppointmentAlreadyRated) {
			// Lost the race against another device rating the same appointment.
			return nil, ErrAlreadyRated
		}
		return nil, err
	}

	utils.GetLogger().Info("rating applied",
		zap.String("providerID", appt.ProviderID),
		zap.String("appointmentID", appt.ID),
		zap.Int("stars", stars),
		zap.Float64("rating", result.Rating),
		zap.Int("totalVotes", result.TotalVotes),
	)
	return result, nil
}
