package mailqueue

import (
	"barbero-service/internal/app/contracts"
	"barbero-service/internal/app/models"
	"barbero-service/internal/pkg/constvars"
	"barbero-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes cancellation-mail jobs to a durable queue. Jobs that keep
// failing in the worker end up on the dead-letter queue.
type Service struct {
	ch  *amqp.Channel
	log *zap.Logger
	mu  sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, queueName := range []string{constvars.CancellationMailQueueName, constvars.CancellationMailDLQName} {
		_, err = ch.QueueDeclare(
			queueName,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			return nil, err
		}
	}

	return &Service{ch: ch, log: log}, nil
}

var _ contracts.MailQueueService = (*Service)(nil)

func (s *Service) EnqueueCancellationMail(ctx context.Context, job *models.CancellationMailJob) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("MailQueue.EnqueueCancellationMail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingJobIDKey, job.ID),
	)
	return s.publish(ctx, constvars.CancellationMailQueueName, job)
}

// EnqueueToDLQ parks a job that exhausted its delivery attempts.
func (s *Service) EnqueueToDLQ(ctx context.Context, job *models.CancellationMailJob) error {
	return s.publish(ctx, constvars.CancellationMailDLQName, job)
}

func (s *Service) publish(ctx context.Context, queueName string, job *models.CancellationMailJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}
	return nil
}
