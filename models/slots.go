package models

import "time"

// DaySlot is one bookable calendar day offered on the booking screen.
// Generated on demand from the current date, never persisted.
type DaySlot struct {
	Date       time.Time `json:"-"`
	DateStr    string    `json:"date"`    // e.g., "2025-10-21"
	Weekday    string    `json:"weekday"` // short weekday name, e.g., "Tue"
	DayOfMonth int       `json:"dayOfMonth"`
	Label      string    `json:"label"` // full formatted date, e.g., "Tue, 21 Oct 2025"
}
