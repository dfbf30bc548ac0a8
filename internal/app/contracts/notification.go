package contracts

import "context"

// NotificationService publishes fire-and-forget SMS and email events to the
// message broker. Delivery happens in the notifier worker.
type NotificationService interface {
	SendSMS(ctx context.Context, eventType, phone, message string) error
	SendEmail(ctx context.Context, eventType, to, subject, body string) error
}
