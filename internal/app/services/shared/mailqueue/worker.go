package mailqueue

import (
	"barbero-service/internal/app/contracts"
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/utils"
	"context"
	"fmt"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Worker drains the cancellation-mail queue and delivers each job over SMTP.
// Failed jobs are re-enqueued until MaxDeliveryAttempts, then dead-lettered;
// the booking/cancellation that produced the job is never affected.
type Worker struct {
	queue    *Service
	mailer   contracts.MailerService
	log      *zap.Logger
	limiter  *rate.Limiter
	maxTries int
}

func NewWorker(queue *Service, mailerService contracts.MailerService, log *zap.Logger, mailsPerSecond, maxDeliveryAttempts int) *Worker {
	if mailsPerSecond <= 0 {
		mailsPerSecond = 1
	}
	if maxDeliveryAttempts <= 0 {
		maxDeliveryAttempts = 1
	}
	return &Worker{
		queue:    queue,
		mailer:   mailerService,
		log:      log,
		limiter:  rate.NewLimiter(rate.Limit(mailsPerSecond), mailsPerSecond),
		maxTries: maxDeliveryAttempts,
	}
}

// Start consumes until ctx is canceled.
func (w *Worker) Start(ctx context.Context) error {
	if err := w.queue.ch.Qos(w.limiter.Burst(), 0, false); err != nil {
		return err
	}

	deliveries, err := w.queue.ch.Consume(
		constvars.CancellationMailQueueName,
		"",    // consumer
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return err
	}

	w.log.Info("Cancellation mail worker started",
		zap.String(constvars.LoggingQueueNameKey, constvars.CancellationMailQueueName),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handleDelivery(ctx, delivery)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	job := new(models.CancellationMailJob)
	if err := json.Unmarshal(delivery.Body, job); err != nil {
		w.log.Error("Cancellation mail worker received malformed job, dropping",
			zap.Error(err),
		)
		delivery.Ack(false)
		return
	}

	if err := w.limiter.Wait(ctx); err != nil {
		delivery.Nack(false, true)
		return
	}

	if err := w.deliver(job); err != nil {
		job.FailedCount++
		w.log.Error("Cancellation mail delivery failed",
			zap.String(constvars.LoggingJobIDKey, job.ID),
			zap.Int("failed_count", job.FailedCount),
			zap.Error(err),
		)
		if job.FailedCount >= w.maxTries {
			if dlqErr := w.queue.EnqueueToDLQ(ctx, job); dlqErr != nil {
				w.log.Error("Failed to dead-letter cancellation mail job",
					zap.String(constvars.LoggingJobIDKey, job.ID),
					zap.Error(dlqErr),
				)
			}
		} else {
			if requeueErr := w.queue.EnqueueCancellationMail(ctx, job); requeueErr != nil {
				w.log.Error("Failed to re-enqueue cancellation mail job",
					zap.String(constvars.LoggingJobIDKey, job.ID),
					zap.Error(requeueErr),
				)
			}
		}
		delivery.Ack(false)
		return
	}

	w.log.Info("Cancellation mail delivered",
		zap.String(constvars.LoggingJobIDKey, job.ID),
	)
	delivery.Ack(false)
}

func (w *Worker) deliver(job *models.CancellationMailJob) error {
	body := fmt.Sprintf(
		constvars.EmailCancellationBodyFormat,
		job.ProviderName,
		job.RequesterName,
		utils.FormatHumanReadable(job.Appointment.Date),
	)
	return w.mailer.SendEmail(job.ProviderEmail, constvars.EmailCancellationSubject, body)
}
