package models

// BookingSession is a user's in-progress booking choice: the provider being
// booked, the set of selected service IDs and the chosen day/time. It lives
// in the session cache for the duration of one booking flow and is discarded
// on confirm, cancel or expiry.
type BookingSession struct {
	SessionID        string   `json:"sessionId"`
	UserID           string   `json:"userId"`
	UserEmail        string   `json:"userEmail"`
	ProviderID       string   `json:"providerId"`
	ProviderName     string   `json:"providerName"`
	SelectedServices []string `json:"selectedServices"`
	SelectedDay      *DaySlot `json:"selectedDay,omitempty"`
	SelectedTime     string   `json:"selectedTime,omitempty"`
}

// ToggleService flips membership of serviceID in the selection set: add if
// absent, remove if present. Toggling the same ID twice restores the
// original selection.
func (s *BookingSession) ToggleService(serviceID string) {
	for i, id := range s.SelectedServices {
		if id == serviceID {
			s.SelectedServices = append(s.SelectedServices[:i], s.SelectedServices[i+1:]...)
			return
		}
	}
	s.SelectedServices = append(s.SelectedServices, serviceID)
}

// HasService reports whether serviceID is currently selected.
func (s *BookingSession) HasService(serviceID string) bool {
	for _, id := range s.SelectedServices {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Total sums the prices of every selected service found in the catalogue.
// Selected IDs missing from the catalogue contribute zero.
func (s *BookingSession) Total(catalogue []Service) float64 {
	total := 0.0
	for _, id := range s.SelectedServices {
		for _, svc := range catalogue {
			if svc.ID == id {
				total += svc.Price
				break
			}
		}
	}
	return total
}

// HasSlot reports whether both a day and a time have been chosen.
func (s *BookingSession) HasSlot() bool {
	return s.SelectedDay != nil && s.SelectedTime != ""
}
