package logger

import (
	"barbero-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewBootstrapLogger returns the plain-text logger used while wiring drivers,
// before the structured request logger exists.
func NewBootstrapLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()
	if internalConfig.App.Env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
