package booking

import (
	"strings"
	"time"

	"stilrandevu/models"
)

// BuildAppointment validates a completed selection and assembles the
// appointment record. Validation short-circuits on the first failure, in
// order: missing slot, empty service selection, missing user session. The
// returned appointment carries no ID; the caller assigns one before
// persisting.
func BuildAppointment(session *models.BookingSession, provider *models.Provider, now time.Time) (*models.Appointment, error) {
	if !session.HasSlot() {
		return nil, ErrMissingSlot
	}
	if len(session.SelectedServices) == 0 {
		return nil, ErrNoServicesSelected
	}
	if session.UserID == "" {
		return nil, ErrUnauthenticated
	}

	var names []string
	for _, id := range session.SelectedServices {
		if svc, ok := provider.ServiceByID(id); ok {
			names = append(names, svc.Name)
		}
	}

	return &models.Appointment{
		UserID:       session.UserID,
		UserEmail:    session.UserEmail,
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		Date:         session.SelectedDay.DateStr,
		DateLabel:    session.SelectedDay.Label,
		Time:         session.SelectedTime,
		Services:     strings.Join(names, ", "),
		TotalPrice:   session.Total(provider.Services),
		Status:       models.AppointmentPending,
		IsRated:      false,
		CreatedAt:    now,
	}, nil
}
