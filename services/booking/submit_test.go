package booking

import (
	"testing"
	"time"

	"stilrandevu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider() *models.Provider {
	return &models.Provider{
		ID:   "prov-1",
		Name: "Berber Ali",
		Services: []models.Service{
			{ID: "cut", Name: "Haircut", Price: 200},
			{ID: "beard", Name: "Beard Trim", Price: 100},
		},
	}
}

func completedSession() *models.BookingSession {
	return &models.BookingSession{
		SessionID:        "sess-1",
		UserID:           "user-1",
		UserEmail:        "ali@example.com",
		ProviderID:       "prov-1",
		ProviderName:     "Berber Ali",
		SelectedServices: []string{"cut", "beard"},
		SelectedDay:      &models.DaySlot{DateStr: "2025-10-21", Label: "Tue, 21 Oct 2025"},
		SelectedTime:     "14:00",
	}
}

func TestBuildAppointment(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

	appt, err := BuildAppointment(completedSession(), testProvider(), now)
	require.NoError(t, err)

	assert.Equal(t, "user-1", appt.UserID)
	assert.Equal(t, "ali@example.com", appt.UserEmail)
	assert.Equal(t, "prov-1", appt.ProviderID)
	assert.Equal(t, "2025-10-21", appt.Date)
	assert.Equal(t, "Tue, 21 Oct 2025", appt.DateLabel)
	assert.Equal(t, "14:00", appt.Time)
	assert.Equal(t, "Haircut, Beard Trim", appt.Services)
	assert.Equal(t, 300.0, appt.TotalPrice)
	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.False(t, appt.IsRated)
	assert.Empty(t, appt.ID)
}

func TestBuildAppointmentMissingSlot(t *testing.T) {
	session := completedSession()
	session.SelectedDay = nil

	_, err := BuildAppointment(session, testProvider(), time.Now())
	assert.Equal(t, ErrMissingSlot, err)
}

func TestBuildAppointmentNoServices(t *testing.T) {
	session := completedSession()
	session.SelectedServices = nil

	_, err := BuildAppointment(session, testProvider(), time.Now())
	assert.Equal(t, ErrNoServicesSelected, err)
}

func TestBuildAppointmentUnauthenticated(t *testing.T) {
	session := completedSession()
	session.UserID = ""

	_, err := BuildAppointment(session, testProvider(), time.Now())
	assert.Equal(t, ErrUnauthenticated, err)
}

// Slot comes first even when every check would fail.
func TestBuildAppointmentValidationOrder(t *testing.T) {
	session := &models.BookingSession{}

	_, err := BuildAppointment(session, testProvider(), time.Now())
	assert.Equal(t, ErrMissingSlot, err)

	session.SelectedDay = &models.DaySlot{DateStr: "2025-10-21"}
	session.SelectedTime = "14:00"
	_, err = BuildAppointment(session, testProvider(), time.Now())
	assert.Equal(t, ErrNoServicesSelected, err)

	session.SelectedServices = []string{"cut"}
	_, err = BuildAppointment(session, testProvider(), time.Now())
	assert.Equal(t, ErrUnauthenticated, err)
}
