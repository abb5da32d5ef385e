package booking

import (
	"stilrandevu/models"
)

// SessionView is the booking screen state returned after every session
// mutation: the current selection, the provider's catalogue, the offered
// day/time options and the running price total.
type SessionView struct {
	Session    models.BookingSession `json:"session"`
	Catalogue  []models.Service      `json:"catalogue"`
	Days       []models.DaySlot      `json:"days"`
	Hours      []string              `json:"hours"`
	TotalPrice float64               `json:"totalPrice"`
}

// SessionService manages the stateful booking flow: one session per screen
// visit, discarded on confirm, cancel or expiry.
type SessionService interface {
	InitiateSession(userID, userEmail, providerID string) (*SessionView, error)
	ToggleService(sessionID, serviceID string) (*SessionView, error)
	ChooseSlot(sessionID, date, hour string) (*SessionView, error)
	Confirm(sessionID string) (*models.Appointment, error)
	Cancel(sessionID string) error
}
