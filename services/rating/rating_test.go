package rating

import (
	"context"
	"fmt"
	"sync"
	"testing"

	appointmentRepo "stilrandevu/database/repository/appointment"
	providerRepo "stilrandevu/database/repository/provider"
	"stilrandevu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeApptRepo keeps appointments in memory.
type fakeApptRepo struct {
	mu    sync.Mutex
	appts map[string]*models.Appointment
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appts: make(map[string]*models.Appointment)}
}

func (r *fakeApptRepo) Create(appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *appt
	r.appts[appt.ID] = &cp
	return nil
}

func (r *fakeApptRepo) GetByID(id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *appt
	return &cp, nil
}

func (r *fakeApptRepo) GetByUser(userID string) ([]models.Appointment, error)         { return nil, nil }
func (r *fakeApptRepo) GetByProvider(providerID string) ([]models.Appointment, error) { return nil, nil }

func (r *fakeApptRepo) Complete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if appt, ok := r.appts[id]; ok {
		appt.Status = models.AppointmentCompleted
	}
	return nil
}

func (r *fakeApptRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.appts, id)
	return nil
}

// fakeProviderRepo applies ratings atomically, mirroring the transactional
// behavior of the Mongo implementation.
type fakeProviderRepo struct {
	mu       sync.Mutex
	provider *models.Provider
	appts    *fakeApptRepo
}

func (r *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *r.provider
	return &cp, nil
}

func (r *fakeProviderRepo) GetAll() ([]models.Provider, error)                   { return nil, nil }
func (r *fakeProviderRepo) SearchByName(query string) ([]models.Provider, error) { return nil, nil }
func (r *fakeProviderRepo) GetByIDs(ids []string) ([]models.Provider, error)     { return nil, nil }
func (r *fakeProviderRepo) Create(provider *models.Provider) error               { return nil }
func (r *fakeProviderRepo) Update(provider *models.Provider) error               { return nil }
func (r *fakeProviderRepo) UpdateSet(id string, updateDoc bson.M) error          { return nil }
func (r *fakeProviderRepo) Delete(id string) error                               { return nil }
func (r *fakeProviderRepo) AddService(providerID string, svc models.Service) error {
	return nil
}
func (r *fakeProviderRepo) RemoveService(providerID, serviceID string) error { return nil }

func (r *fakeProviderRepo) ApplyRating(ctx context.Context, providerID, appointmentID string, stars int) (*models.RatingResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appts.mu.Lock()
	appt, ok := r.appts.appts[appointmentID]
	if !ok || appt.IsRated {
		r.appts.mu.Unlock()
		return nil, providerRepo.ErrAppointmentAlreadyRated
	}
	appt.IsRated = true
	r.appts.mu.Unlock()

	r.provider.Rating, r.provider.TotalVotes = models.NextAggregate(r.provider.Rating, r.provider.TotalVotes, stars)
	return &models.RatingResult{Rating: r.provider.Rating, TotalVotes: r.provider.TotalVotes}, nil
}

func newRatingFixture() (*DefaultRatingService, *fakeApptRepo, *fakeProviderRepo) {
	appts := newFakeApptRepo()
	provRepo := &fakeProviderRepo{
		provider: &models.Provider{ID: "prov-1", Name: "Berber Ali"},
		appts:    appts,
	}
	svc := &DefaultRatingService{ProviderRepo: provRepo, ApptRepo: appts}
	return svc, appts, provRepo
}

func completedAppt(id string) *models.Appointment {
	return &models.Appointment{
		ID:         id,
		UserID:     "user-1",
		ProviderID: "prov-1",
		Status:     models.AppointmentCompleted,
	}
}

func TestRateAppointmentSequential(t *testing.T) {
	svc, appts, _ := newRatingFixture()

	var result *models.RatingResult
	for i, stars := range []int{5, 4, 3} {
		id := fmt.Sprintf("appt-%d", i)
		require.NoError(t, appts.Create(completedAppt(id)))

		var err error
		result, err = svc.RateAppointment(context.Background(), "user-1", id, stars)
		require.NoError(t, err)
	}

	assert.Equal(t, 4.0, result.Rating)
	assert.Equal(t, 3, result.TotalVotes)
}

func TestRateAppointmentConcurrent(t *testing.T) {
	svc, appts, provRepo := newRatingFixture()

	const n = 20
	for i := 0; i < n; i++ {
		require.NoError(t, appts.Create(completedAppt(fmt.Sprintf("appt-%d", i))))
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.RateAppointment(context.Background(), "user-1", fmt.Sprintf("appt-%d", i), 5)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Every vote counted, none lost.
	assert.Equal(t, n, provRepo.provider.TotalVotes)
	assert.Equal(t, 5.0, provRepo.provider.Rating)
}

func TestRateAppointmentInvalidStars(t *testing.T) {
	svc, _, _ := newRatingFixture()

	for _, stars := range []int{0, -1, 6} {
		_, err := svc.RateAppointment(context.Background(), "user-1", "appt-1", stars)
		assert.Equal(t, ErrInvalidStars, err)
	}
}

func TestRateAppointmentNotOwner(t *testing.T) {
	svc, appts, _ := newRatingFixture()
	require.NoError(t, appts.Create(completedAppt("appt-1")))

	_, err := svc.RateAppointment(context.Background(), "someone-else", "appt-1", 5)
	assert.Equal(t, ErrNotOwner, err)
}

func TestRateAppointmentNotCompleted(t *testing.T) {
	svc, appts, _ := newRatingFixture()
	appt := completedAppt("appt-1")
	appt.Status = models.AppointmentPending
	require.NoError(t, appts.Create(appt))

	_, err := svc.RateAppointment(context.Background(), "user-1", "appt-1", 5)
	assert.Equal(t, ErrNotCompleted, err)
}

func TestRateAppointmentAlreadyRated(t *testing.T) {
	svc, appts, _ := newRatingFixture()
	require.NoError(t, appts.Create(completedAppt("appt-1")))

	_, err := svc.RateAppointment(context.Background(), "user-1", "appt-1", 5)
	require.NoError(t, err)

	_, err = svc.RateAppointment(context.Background(), "user-1", "appt-1", 4)
	assert.Equal(t, ErrAlreadyRated, err)
}
