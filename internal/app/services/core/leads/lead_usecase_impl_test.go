package leads

import (
	"brokerage-service/internal/app/contracts"
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/pkg/constvars"
	"brokerage-service/internal/pkg/dto/requests"
	"brokerage-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLeadQueue struct {
	enqueued  []models.QueuedLead
	dlq       []models.QueuedLead
	reQueued  []models.QueuedLead
	acked     []uint64
	fetchable []contracts.QueuedLeadItem
}

func (q *fakeLeadQueue) Enqueue(ctx context.Context, lead *models.QueuedLead) error {
	q.enqueued = append(q.enqueued, *lead)
	return nil
}

func (q *fakeLeadQueue) EnqueueToDLQ(ctx context.Context, lead *models.QueuedLead) error {
	q.dlq = append(q.dlq, *lead)
	return nil
}

func (q *fakeLeadQueue) Reenqueue(ctx context.Context, lead *models.QueuedLead) error {
	q.reQueued = append(q.reQueued, *lead)
	return nil
}

func (q *fakeLeadQueue) FetchN(ctx context.Context, max int) ([]contracts.QueuedLeadItem, error) {
	if len(q.fetchable) > max {
		return q.fetchable[:max], nil
	}
	return q.fetchable, nil
}

func (q *fakeLeadQueue) Ack(deliveryTag uint64) error {
	q.acked = append(q.acked, deliveryTag)
	return nil
}

type frozenClock struct {
	now time.Time
}

func (c frozenClock) Now() time.Time {
	return c.now
}

func TestLeadUsecaseCreateLead(t *testing.T) {
	submittedAt := time.Date(2026, time.February, 3, 15, 4, 5, 0, time.UTC)

	// Package singleton, shared across subtests.
	queue := &fakeLeadQueue{}
	usecase := NewLeadUsecase(zap.NewNop(), queue, frozenClock{now: submittedAt})
	ctx := context.Background()

	t.Run("accepts and enqueues a valid lead", func(t *testing.T) {
		queue.enqueued = nil
		result, err := usecase.CreateLead(ctx, &requests.CreateLead{
			Name:      "  Maria   Lopez ",
			Contact:   " maria@example.com ",
			Coverages: []string{" Auto ", "Home"},
			Note:      "Looking to bundle.",
			Page:      "https://example.com/contact",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.ID)

		require.Len(t, queue.enqueued, 1)
		lead := queue.enqueued[0].Lead
		assert.Equal(t, "Maria Lopez", lead.Name)
		assert.Equal(t, "maria@example.com", lead.Contact)
		assert.Equal(t, []string{"Auto", "Home"}, lead.Coverages)
		assert.Equal(t, submittedAt, lead.SubmittedAt)
		assert.Zero(t, queue.enqueued[0].FailedCount)
	})

	t.Run("honeypot submissions succeed silently without enqueueing", func(t *testing.T) {
		queue.enqueued = nil
		result, err := usecase.CreateLead(ctx, &requests.CreateLead{
			Name:    "Bot",
			Contact: "bot@example.com",
			Company: "Totally Real LLC",
		})
		require.NoError(t, err)
		assert.Empty(t, result.ID)
		assert.Empty(t, queue.enqueued)
	})

	t.Run("rejects a lead without a name", func(t *testing.T) {
		queue.enqueued = nil
		_, err := usecase.CreateLead(ctx, &requests.CreateLead{Contact: "someone@example.com"})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, queue.enqueued)
	})

	t.Run("rejects unknown coverage options", func(t *testing.T) {
		queue.enqueued = nil
		_, err := usecase.CreateLead(ctx, &requests.CreateLead{
			Name:      "Sam",
			Contact:   "sam@example.com",
			Coverages: []string{"Pet Dragons"},
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, queue.enqueued)
	})
}
