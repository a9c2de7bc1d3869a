package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/complaint-portal/internal/service"
)

// NotificationWorker binds the notification service to the event stream.
type NotificationWorker struct {
	notifications *service.NotificationService
	logger        *zap.Logger
}

// NewNotificationWorker constructs the worker.
func NewNotificationWorker(notifications *service.NotificationService, logger *zap.Logger) *NotificationWorker {
	return &NotificationWorker{notifications: notifications, logger: logger}
}

// Start subscribes notification handlers to the dispatcher. Events are
// delivered synchronously by the in-memory dispatcher, so there is no
// goroutine to manage.
func (w *NotificationWorker) Start() {
	if w.notifications == nil {
		return
	}
	w.notifications.RegisterHandlers()
	w.logger.Info("notification worker subscribed")
}
