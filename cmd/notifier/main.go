package main

import (
	"os"
	"os/signal"
	"syscall"

	"mbote-service/internal/app/config"
	"mbote-service/internal/app/drivers/logger"
	"mbote-service/internal/app/drivers/mailer"
	"mbote-service/internal/app/drivers/messaging"
	"mbote-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// The notifier drains the SMS and mailer queues the API publishes to. Email
// goes out over SMTP; SMS delivery is handed to the gateway integration.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.InitLogrus(internalConfig)

	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}
	if err := channel.Qos(1, 0, false); err != nil {
		log.Fatalf("failed to set QoS: %v", err)
	}

	smsQueue := internalConfig.App.RabbitMQSMSQueue
	mailerQueue := internalConfig.App.RabbitMQMailerQueue
	for _, queue := range []string{smsQueue, mailerQueue} {
		if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			log.Fatalf("failed to declare queue %s: %v", queue, err)
		}
	}

	smtpClient := mailer.NewSMTPClient(driverConfig)
	smsGateway := &smsGateway{SenderName: internalConfig.SMS.SenderName, Log: log}

	smsDeliveries, err := channel.Consume(smsQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to consume queue %s: %v", smsQueue, err)
	}
	mailerDeliveries, err := channel.Consume(mailerQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to consume queue %s: %v", mailerQueue, err)
	}

	go consumeSMS(smsDeliveries, smsGateway, log)
	go consumeEmail(mailerDeliveries, smtpClient, log)

	log.Infof("notifier started, consuming %s and %s", smsQueue, mailerQueue)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("notifier shutting down")
	if err := rabbitMQConnection.Close(); err != nil {
		log.Errorf("failed to close RabbitMQ connection: %v", err)
	}
}

func consumeSMS(deliveries <-chan amqp091.Delivery, gateway *smsGateway, log *logrus.Logger) {
	for delivery := range deliveries {
		var payload requests.SendSMS
		if err := json.Unmarshal(delivery.Body, &payload); err != nil {
			log.Errorf("dropping malformed SMS payload: %v", err)
			delivery.Nack(false, false)
			continue
		}
		if err := gateway.Send(&payload); err != nil {
			log.WithFields(logrus.Fields{"type": payload.Type, "phone": payload.Phone}).
				Errorf("failed to send SMS: %v", err)
			delivery.Nack(false, true)
			continue
		}
		delivery.Ack(false)
	}
}

func consumeEmail(deliveries <-chan amqp091.Delivery, client *mailer.SMTPClient, log *logrus.Logger) {
	for delivery := range deliveries {
		var payload requests.SendEmail
		if err := json.Unmarshal(delivery.Body, &payload); err != nil {
			log.Errorf("dropping malformed email payload: %v", err)
			delivery.Nack(false, false)
			continue
		}
		if err := client.Send(payload.To, payload.Subject, payload.Body); err != nil {
			log.WithFields(logrus.Fields{"type": payload.Type, "to": payload.To}).
				Errorf("failed to send email: %v", err)
			delivery.Nack(false, true)
			continue
		}
		log.WithFields(logrus.Fields{"type": payload.Type, "to": payload.To}).Info("email sent")
		delivery.Ack(false)
	}
}

// smsGateway logs outgoing messages. The operator contract with the local
// carriers is still being negotiated, so there is no HTTP integration yet.
type smsGateway struct {
	SenderName string
	Log        *logrus.Logger
}

func (g *smsGateway) Send(payload *requests.SendSMS) error {
	g.Log.WithFields(logrus.Fields{
		"sender": g.SenderName,
		"type":   payload.Type,
		"phone":  payload.Phone,
	}).Infof("SMS dispatched: %s", payload.Message)
	return nil
}
