package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"stilrandevu/config"
	"stilrandevu/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "appointment:reminder"

// NewReminderTask builds the queue task fired shortly before an appointment.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// Scheduler enqueues reminder tasks for later delivery.
type Scheduler interface {
	ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// AsynqScheduler implements Scheduler on the shared Redis queue.
type AsynqScheduler struct {
	client *asynq.Client
}

// NewAsynqScheduler creates a Scheduler backed by the configured Redis queue.
func NewAsynqScheduler() *AsynqScheduler {
	return &AsynqScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

func (s *AsynqScheduler) ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
