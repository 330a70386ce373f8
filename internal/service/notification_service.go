package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/hospital-portal/internal/events"
)

// NotificationService logs domain events; a real deployment would fan these
// out to email or webhooks.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventHospitalCreated, n.handleEvent)
	n.dispatcher.Subscribe(events.EventAppointmentCreated, n.handleEvent)
	n.dispatcher.Subscribe(events.EventAppointmentStatusChanged, n.handleEvent)
	n.dispatcher.Subscribe(events.EventBillIssued, n.handleEvent)
	n.dispatcher.Subscribe(events.EventBillPaymentInitialized, n.handleEvent)
}

func (n *NotificationService) handleEvent(_ context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("subject_id", event.SubjectID),
		zap.Any("payload", event.Payload))
	return nil
}
