package notification

import (
	"context"
	"sync"

	"mbote-service/internal/app/contracts"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type notificationService struct {
	Channel     *amqp091.Channel
	SMSQueue    string
	MailerQueue string
	Log         *zap.Logger
}

var (
	notificationServiceInstance contracts.NotificationService
	onceNotificationService     sync.Once
	notificationServiceError    error
)

func NewNotificationService(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, smsQueue, mailerQueue string) (contracts.NotificationService, error) {
	onceNotificationService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			notificationServiceError = err
			return
		}
		for _, queue := range []string{smsQueue, mailerQueue} {
			_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
			if err != nil {
				notificationServiceError = err
				return
			}
		}
		notificationServiceInstance = &notificationService{
			Channel:     channel,
			SMSQueue:    smsQueue,
			MailerQueue: mailerQueue,
			Log:         logger,
		}
	})
	return notificationServiceInstance, notificationServiceError
}

func (s *notificationService) SendSMS(ctx context.Context, eventType, phone, message string) error {
	payload := &requests.SendSMS{
		Type:    eventType,
		Phone:   phone,
		Message: message,
	}
	return s.publish(ctx, s.SMSQueue, payload)
}

func (s *notificationService) SendEmail(ctx context.Context, eventType, to, subject, body string) error {
	payload := &requests.SendEmail{
		Type:    eventType,
		To:      to,
		Subject: subject,
		Body:    body,
	}
	return s.publish(ctx, s.MailerQueue, payload)
}

func (s *notificationService) publish(ctx context.Context, queue string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(payload)
	if err != nil {
		s.Log.Error("notificationService.publish error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	s.Log.Info("notificationService.publish publishing message",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, queue),
	)

	err = s.Channel.PublishWithContext(ctx, "", queue, false, false, message)
	if err != nil {
		s.Log.Error("notificationService.publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublish(err)
	}

	return nil
}
