package leadqueue

import (
	"brokerage-service/internal/app/contracts"
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/pkg/constvars"
	"brokerage-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	leadQueueServiceInstance contracts.LeadQueueService
	onceLeadQueueService     sync.Once
)

// Service buffers accepted leads in RabbitMQ until the relay worker
// forwards them to the external form-relay endpoint.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	dlqName   string
	prefetch  int
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewLeadQueueService declares the durable lead queue plus its DLQ, enables
// publisher confirms, and sets QoS.
func NewLeadQueueService(conn *amqp.Connection, log *zap.Logger, queueName string, prefetch int) (contracts.LeadQueueService, error) {
	var initErr error
	onceLeadQueueService.Do(func() {
		ch, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}

		dlqName := queueName + "_dlq"

		_, err = ch.QueueDeclare(
			queueName, // name
			true,      // durable
			false,     // autoDelete
			false,     // exclusive
			false,     // noWait
			nil,       // args
		)
		if err != nil {
			initErr = err
			return
		}

		_, err = ch.QueueDeclare(
			dlqName,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			initErr = err
			return
		}

		if prefetch <= 0 {
			prefetch = 1
		}
		if err := ch.Qos(prefetch, 0, false); err != nil {
			initErr = err
			return
		}

		if err := ch.Confirm(false); err != nil {
			initErr = err
			return
		}

		leadQueueServiceInstance = &Service{
			ch:        ch,
			log:       log,
			queueName: queueName,
			dlqName:   dlqName,
			prefetch:  prefetch,
			confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return leadQueueServiceInstance, nil
}

// Enqueue publishes a lead to the standard queue with persistence and waits
// for the broker confirm.
func (s *Service) Enqueue(ctx context.Context, lead *models.QueuedLead) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("LeadQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLeadIDKey, lead.Lead.ID),
	)
	return s.publish(ctx, s.queueName, lead)
}

// Reenqueue publishes the (possibly modified) lead back to the tail of the
// standard queue.
func (s *Service) Reenqueue(ctx context.Context, lead *models.QueuedLead) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("LeadQueue.Reenqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLeadIDKey, lead.Lead.ID),
	)
	return s.publish(ctx, s.queueName, lead)
}

// EnqueueToDLQ parks a lead that exceeded its retry budget.
func (s *Service) EnqueueToDLQ(ctx context.Context, lead *models.QueuedLead) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("LeadQueue.EnqueueToDLQ called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLeadIDKey, lead.Lead.ID),
	)
	return s.publish(ctx, s.dlqName, lead)
}

// FetchN retrieves up to max leads using basic.get without auto-ack.
func (s *Service) FetchN(ctx context.Context, max int) ([]contracts.QueuedLeadItem, error) {
	n := max
	if n <= 0 {
		n = 1
	}
	items := make([]contracts.QueuedLeadItem, 0, n)

	for i := 0; i < n; i++ {
		d, ok, err := s.ch.Get(s.queueName, false)
		if err != nil {
			return nil, exceptions.ErrQueueFetch(err)
		}
		if !ok {
			break
		}
		var payload models.QueuedLead
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			// Invalid payloads go straight to the DLQ so they cannot
			// poison the relay loop.
			_ = d.Ack(false)
			_ = s.publishRaw(ctx, s.dlqName, d.Body)
			continue
		}
		items = append(items, contracts.QueuedLeadItem{DeliveryTag: d.DeliveryTag, Lead: payload})
	}

	return items, nil
}

// Ack acknowledges a delivery so it is removed from the queue.
func (s *Service) Ack(deliveryTag uint64) error {
	if err := s.ch.Ack(deliveryTag, false); err != nil {
		return exceptions.ErrQueueAck(err)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, queue string, lead *models.QueuedLead) error {
	body, err := json.Marshal(lead)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publishRaw(ctx, queue, body)
}

func (s *Service) publishRaw(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueuePublish(fmt.Errorf("message not confirmed by broker"))
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err())
	}
	return nil
}
