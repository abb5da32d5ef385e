package appointmentRepo

import "stilrandevu/models"

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment record.
	Create(appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// GetByUser retrieves all appointments booked by a user.
	GetByUser(userID string) ([]models.Appointment, error)
	// GetByProvider retrieves all appointments addressed to a provider.
	GetByProvider(providerID string) ([]models.Appointment, error)
	// Complete marks a pending appointment as completed.
	Complete(id string) error
	// Delete removes an appointment record (customer cancellation).
	Delete(id string) error
}
