package appointment

import (
	"errors"
	"fmt"

	appointmentRepo "stilrandevu/database/repository/appointment"
	"stilrandevu/models"
)

// ErrNotOwner signals an attempt to act on someone else's appointment.
var ErrNotOwner = errors.New("appointment belongs to another account")

// AppointmentService exposes the customer and provider appointment views.
type AppointmentService interface {
	// ListMine returns the appointments booked by a user.
	ListMine(userID string) ([]models.Appointment, error)
	// ListIncoming returns the appointments addressed to a provider.
	ListIncoming(providerID string) ([]models.Appointment, error)
	// Complete marks a pending appointment as completed so it becomes
	// eligible for rating.
	Complete(providerID, appointmentID string) error
	// Cancel deletes the caller's own appointment.
	Cancel(userID, appointmentID string) error
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo appointmentRepo.AppointmentRepository
}

func (s *DefaultAppointmentService) ListMine(userID string) ([]models.Appointment, error) {
	return s.Repo.GetByUser(userID)
}

func (s *DefaultAppointmentService) ListIncoming(providerID string) ([]models.Appointment, error) {
	return s.Repo.GetByProvider(providerID)
}

func (s *DefaultAppointmentService) Complete(providerID, appointmentID string) error {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt.ProviderID != providerID {
		return ErrNotOwner
	}
	return s.Repo.Complete(appointmentID)
}

func (s *DefaultAppointmentService) Cancel(userID, appointmentID string) error {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt.UserID != userID {
		return ErrNotOwner
	}
	return s.Repo.Delete(appointmentID)
}
