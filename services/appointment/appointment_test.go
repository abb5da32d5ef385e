package appointment

import (
	"testing"

	appointmentRepo "stilrandevu/database/repository/appointment"
	"stilrandevu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApptRepo struct {
	appts map[string]*models.Appointment
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appts: make(map[string]*models.Appointment)}
}

func (r *fakeApptRepo) Create(appt *models.Appointment) error {
	cp := *appt
	r.appts[appt.ID] = &cp
	return nil
}

func (r *fakeApptRepo) GetByID(id string) (*models.Appointment, error) {
	appt, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *appt
	return &cp, nil
}

func (r *fakeApptRepo) GetByUser(userID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) GetByProvider(providerID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.ProviderID == providerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) Complete(id string) error {
	if appt, ok := r.appts[id]; ok && appt.Status == models.AppointmentPending {
		appt.Status = models.AppointmentCompleted
	}
	return nil
}

func (r *fakeApptRepo) Delete(id string) error {
	delete(r.appts, id)
	return nil
}

func TestCompleteChecksProviderOwnership(t *testing.T) {
	repo := newFakeApptRepo()
	require.NoError(t, repo.Create(&models.Appointment{
		ID:         "appt-1",
		UserID:     "user-1",
		ProviderID: "prov-1",
		Status:     models.AppointmentPending,
	}))
	svc := &DefaultAppointmentService{Repo: repo}

	err := svc.Complete("someone-else", "appt-1")
	assert.Equal(t, ErrNotOwner, err)

	require.NoError(t, svc.Complete("prov-1", "appt-1"))
	appt, err := repo.GetByID("appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, appt.Status)
}

func TestCancelChecksUserOwnership(t *testing.T) {
	repo := newFakeApptRepo()
	require.NoError(t, repo.Create(&models.Appointment{
		ID:         "appt-1",
		UserID:     "user-1",
		ProviderID: "prov-1",
		Status:     models.AppointmentPending,
	}))
	svc := &DefaultAppointmentService{Repo: repo}

	err := svc.Cancel("someone-else", "appt-1")
	assert.Equal(t, ErrNotOwner, err)

	require.NoError(t, svc.Cancel("user-1", "appt-1"))
	_, err = repo.GetByID("appt-1")
	assert.Error(t, err)
}
