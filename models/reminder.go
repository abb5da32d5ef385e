package models

// ReminderPayload is the task payload queued when an appointment is
// confirmed, delivered back to the reminder worker shortly before the
// appointment time.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	ProviderName  string `json:"providerName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
