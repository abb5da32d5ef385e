package notification

import (
	"context"

	"stilrandevu/utils"

	"go.uber.org/zap"
)

// NotificationService delivers user-facing notifications. Push transport is
// an external concern; the default implementation records the notification
// in the log.
type NotificationService interface {
	NotifyUser(ctx context.Context, userID, title, body string, data map[string]string) error
}

// LogNotificationService implements NotificationService by logging.
type LogNotificationService struct{}

func (s *LogNotificationService) NotifyUser(_ context.Context, userID, title, body string, data map[string]string) error {
	utils.GetLogger().Info("notification",
		zap.String("userID", userID),
		zap.String("title", title),
		zap.String("body", body),
		zap.Any("data", data),
	)
	return nil
}
