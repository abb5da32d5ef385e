package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stilrandevu/config"
	appointmentRepo "stilrandevu/database/repository/appointment"
	providerRepo "stilrandevu/database/repository/provider"
	"stilrandevu/models"
	"stilrandevu/services/tasks"
	"stilrandevu/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionTTL = 30 * time.Minute

// DefaultSessionService implements SessionService with sessions held in Redis.
type DefaultSessionService struct {
	ProviderRepo providerRepo.ProviderRepository
	ApptRepo     appointmentRepo.AppointmentRepository
	Reminders    tasks.Scheduler
}

// InitiateSession starts a booking flow against one provider and stores the
// empty selection under a fresh session ID.
func (s *DefaultSessionService) InitiateSession(userID, userEmail, providerID string) (*SessionView, error) {
	provider, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		return nil, &RemoteError{Op: "fetch provider", Err: err}
	}

	session := models.BookingSession{
		SessionID:    uuid.New().String(),
		UserID:       userID,
		UserEmail:    userEmail,
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
	}
	if err := s.saveSession(&session); err != nil {
		return nil, err
	}
	return s.view(&session, provider), nil
}

// ToggleService flips membership of serviceID in the session's selection set.
func (s *DefaultSessionService) ToggleService(sessionID, serviceID string) (*SessionView, error) {
	session, provider, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	session.ToggleService(serviceID)
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return s.view(session, provider), nil
}

// ChooseSlot records the selected day and hour. Both must come from the
// offered sets.
func (s *DefaultSessionService) ChooseSlot(sessionID, date, hour string) (*SessionView, error) {
	session, provider, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	var day *models.DaySlot
	for _, d := range GenerateDays(time.Now(), config.AppConfig.BookingDays) {
		if d.DateStr == date {
			day = &d
			break
		}
	}
	if day == nil {
		return nil, &BookingError{Code: "invalidSlot", Message: fmt.Sprintf("date %s is not bookable", date)}
	}

	valid := false
	for _, h := range BookingHours() {
		if h == hour {
			valid = true
			break
		}
	}
	if !valid {
		return nil, &BookingError{Code: "invalidSlot", Message: fmt.Sprintf("time %s is not bookable", hour)}
	}

	session.SelectedDay = day
	session.SelectedTime = hour
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return s.view(session, provider), nil
}

// Confirm validates the selection, persists the appointment and discards the
// session. A confirmed session cannot be replayed: once deleted, retrying the
// same session ID fails instead of creating a duplicate appointment.
func (s *DefaultSessionService) Confirm(sessionID string) (*models.Appointment, error) {
	session, provider, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	appt, err := BuildAppointment(session, provider, time.Now())
	if err != nil {
		return nil, err
	}
	appt.ID = uuid.New().String()

	if err := s.ApptRepo.Create(appt); err != nil {
		return nil, &RemoteError{Op: "create appointment", Err: err}
	}

	ctx := context.Background()
	if err := utils.GetSessionCacheClient().Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to discard booking session", zap.String("sessionID", sessionID), zap.Error(err))
	}

	s.scheduleReminder(appt)
	return appt, nil
}

// Cancel discards an in-progress session.
func (s *DefaultSessionService) Cancel(sessionID string) error {
	ctx := context.Background()
	if err := utils.GetSessionCacheClient().Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return &RemoteError{Op: "discard session", Err: err}
	}
	return nil
}

// scheduleReminder queues a reminder an hour before the appointment. Failure
// here is non-critical: the booking stands either way.
func (s *DefaultSessionService) scheduleReminder(appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	fireAt, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		utils.GetLogger().Warn("failed to parse appointment time for reminder", zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        appt.UserID,
		ProviderName:  appt.ProviderName,
		Date:          appt.Date,
		Time:          appt.Time,
	}
	if err := s.Reminders.ScheduleReminder(payload, fireAt.Add(-time.Hour)); err != nil {
		utils.GetLogger().Warn("failed to schedule appointment reminder", zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

func sessionKey(sessionID string) string {
	return "bookingSession:" + sessionID
}

func (s *DefaultSessionService) saveSession(session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	if err := utils.GetSessionCacheClient().Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return &RemoteError{Op: "store session", Err: err}
	}
	return nil
}

func (s *DefaultSessionService) loadSession(sessionID string) (*models.BookingSession, *models.Provider, error) {
	ctx := context.Background()
	data, err := utils.GetSessionCacheClient().Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	provider, err := s.ProviderRepo.GetByID(session.ProviderID)
	if err != nil {
		return nil, nil, &RemoteError{Op: "fetch provider", Err: err}
	}
	return &session, provider, nil
}

func (s *DefaultSessionService) view(session *models.BookingSession, provider *models.Provider) *SessionView {
	return &SessionView{
		Session:    *session,
		Catalogue:  provider.Services,
		Days:       GenerateDays(time.Now(), config.AppConfig.BookingDays),
		Hours:      BookingHours(),
		TotalPrice: session.Total(provider.Services),
	}
}
