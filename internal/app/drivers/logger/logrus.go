package logger

import (
	"os"

	"mbote-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// InitLogrus configures the global logrus logger used by the notifier worker.
func InitLogrus(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	switch internalConfig.App.Env {
	case "production":
		log.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("notifier.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			log.SetOutput(file)
		} else {
			log.Info("Failed to log to file, using default stderr")
		}
	default:
		log.SetFormatter(&logrus.TextFormatter{})
	}
	return log
}
