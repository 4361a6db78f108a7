package main

import (
	"barbero-service/internal/app/config"
	"barbero-service/internal/app/drivers/logger"
	"barbero-service/internal/app/drivers/mailer"
	"barbero-service/internal/app/drivers/messaging"
	"barbero-service/internal/app/services/shared/mailqueue"
	sharedMailer "barbero-service/internal/app/services/shared/mailer"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewBootstrapLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootstrapLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	rabbitMQ := messaging.NewRabbitMQ(driverConfig, bootstrapLog)

	queueService, err := mailqueue.NewService(rabbitMQ, log)
	if err != nil {
		bootstrapLog.Fatalf("Failed to set up mail queue: %v", err)
	}

	smtpClient := mailer.NewSMTPClient(driverConfig)
	mailerService := sharedMailer.NewMailerService(smtpClient)

	worker := mailqueue.NewWorker(
		queueService,
		mailerService,
		log,
		internalConfig.App.WorkerMailsPerSecond,
		internalConfig.App.WorkerMaxDeliveryAttempts,
	)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		bootstrapLog.Println("Shutting down mail worker..")
		cancel()
	}()

	if err := worker.Start(ctx); err != nil && err != context.Canceled {
		bootstrapLog.Fatalf("Mail worker stopped: %v", err)
	}

	bootstrapLog.Println("Mail worker exiting")
}
