package leads

import (
	"brokerage-service/internal/app/config"
	"brokerage-service/internal/app/contracts"
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/pkg/constvars"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RelayWorker periodically forwards queued leads to the external form-relay
// endpoint with at-least-once semantics.
type RelayWorker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	locker   contracts.LockerService
	queue    contracts.LeadQueueService
	siteName string
	client   *http.Client
	limiter  *rate.Limiter
	stop     chan struct{}
}

func NewRelayWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	queue contracts.LeadQueueService,
	siteName string,
) *RelayWorker {
	timeout := time.Duration(cfg.Relay.HTTPTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rpm := cfg.Relay.RequestsPerMinute
	if rpm <= 0 {
		rpm = 30
	}
	return &RelayWorker{
		log:      log,
		cfg:      cfg,
		locker:   lockerSvc,
		queue:    queue,
		siteName: siteName,
		client:   &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		stop:     make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (w *RelayWorker) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(time.Minute)
	stopped := make(chan struct{})

	fmt.Println("Lead relay worker started")

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case now := <-ticker.C:
				w.runOnce(ctx, now)
			}
		}
	}()

	return func() {
		close(w.stop)
	}
}

func (w *RelayWorker) runOnce(ctx context.Context, now time.Time) {
	w.log.Info("leads.worker.runOnce tick",
		zap.Time("now", now))

	// Best-effort distributed lock so only one instance relays per tick.
	nextMinute := now.Truncate(time.Minute).Add(time.Minute)
	ttl := time.Until(nextMinute) - 1*time.Second
	if ttl < 1*time.Second {
		ttl = 1 * time.Second
	}
	acquired, lockVal, err := w.locker.TryLock(ctx, constvars.RedisKeyRelayLock, ttl)
	if err != nil {
		w.log.Info("worker lock attempt failed",
			zap.Error(err))
		return
	}
	if !acquired {
		w.log.Warn("worker lock not acquired; another instance is running")
		return
	}

	defer func() {
		if err := w.locker.Unlock(ctx, constvars.RedisKeyRelayLock, lockVal); err != nil {
			w.log.Error("worker unlock failed", zap.Error(err))
		}
	}()

	max := w.cfg.Relay.MaxQueue
	if max <= 0 {
		max = 1
	}
	items, err := w.queue.FetchN(ctx, max)
	if err != nil {
		w.log.Info("queue.FetchN error", zap.Error(err))
		return
	}

	w.log.Info("queue.FetchN success", zap.Int("fetched_count", len(items)))

	for _, item := range items {
		if err := w.limiter.Wait(ctx); err != nil {
			w.log.Info("rate limiter interrupted", zap.Error(err))
			return
		}
		w.processItem(ctx, item)
	}
}

func (w *RelayWorker) processItem(ctx context.Context, item contracts.QueuedLeadItem) {
	queued := item.Lead

	values := relayValues(w.cfg.Relay.AccessKey, w.siteName, queued.Lead)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.Relay.URL, strings.NewReader(values.Encode()))
	if err != nil {
		w.log.Info("build relay request failed",
			zap.String(constvars.LoggingLeadIDKey, queued.Lead.ID),
			zap.Error(err))
		w.requeueOnError(ctx, item, queued)
		return
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	w.log.Info("forwarding lead",
		zap.String(constvars.LoggingLeadIDKey, queued.Lead.ID),
		zap.Int("failed_count", queued.FailedCount))

	resp, err := w.client.Do(req)
	if err != nil {
		w.log.Info("relay request failed",
			zap.String(constvars.LoggingLeadIDKey, queued.Lead.ID),
			zap.Error(err))
		w.requeueOnError(ctx, item, queued)
		return
	}
	defer resp.Body.Close()
	_, _ = io.ReadAll(resp.Body) // drain for connection reuse

	w.log.Info("relay response received",
		zap.String(constvars.LoggingLeadIDKey, queued.Lead.ID),
		zap.Int("status_code", resp.StatusCode))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if ackErr := w.queue.Ack(item.DeliveryTag); ackErr != nil {
			w.log.Info("ack failed after success",
				zap.String(constvars.LoggingLeadIDKey, queued.Lead.ID),
				zap.Error(ackErr))
		}
		w.log.Info("lead relayed successfully; removed from queue",
			zap.String(constvars.LoggingLeadIDKey, queued.Lead.ID))
		return
	}

	w.requeueOnError(ctx, item, queued)
}

func (w *RelayWorker) requeueOnError(ctx context.Context, item contracts.QueuedLeadItem, queued models.QueuedLead) {
	queued.FailedCount++
	if queued.FailedCount >= w.cfg.Relay.ThrottleRetry {
		if err := w.queue.EnqueueToDLQ(ctx, &queued); err != nil {
			w.log.Info("enqueue to DLQ failed",
				zap.String(constvars.LoggingLeadIDKey, queued.Lead.ID),
				zap.Error(err))
			return
		}
		_ = w.queue.Ack(item.DeliveryTag)
		w.log.Info("moved lead to DLQ",
			zap.String(constvars.LoggingLeadIDKey, queued.Lead.ID),
			zap.Int("failed_count", queued.FailedCount))
		return
	}
	if err := w.queue.Reenqueue(ctx, &queued); err != nil {
		w.log.Info("reenqueue failed",
			zap.String(constvars.LoggingLeadIDKey, queued.Lead.ID),
			zap.Error(err))
		return
	}
	_ = w.queue.Ack(item.DeliveryTag)
	w.log.Info("retryable failure; incremented failed count and requeued",
		zap.String(constvars.LoggingLeadIDKey, queued.Lead.ID),
		zap.Int("failed_count", queued.FailedCount))
}

// relayValues builds the urlencoded body the form-relay endpoint expects.
func relayValues(accessKey, siteName string, lead models.Lead) url.Values {
	values := url.Values{}
	values.Set("access_key", accessKey)
	values.Set("subject", fmt.Sprintf("New lead — %s: %s", siteName, lead.Name))
	values.Set("from_name", siteName)
	values.Set("name", lead.Name)
	values.Set("contact", lead.Contact)
	values.Set("coverages", strings.Join(lead.Coverages, ","))
	values.Set("note", lead.Note)
	values.Set("page", lead.Page)
	return values
}
