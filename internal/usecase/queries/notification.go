package queries

import (
	"context"
	"time"

	"consult-booking/internal/pkg/clock"
)

type NotificationReadStore interface {
	FindDue(ctx context.Context, now time.Time, limit int32) ([]*NotificationJobView, error)
}

// NotificationQueries exposes the outbox so operators can see what is
// waiting for delivery.
type NotificationQueries interface {
	ListDue(ctx context.Context, limit *int) ([]*NotificationJobView, error)
}

type notificationQueriesImpl struct {
	repo  NotificationReadStore
	clock clock.Clock
}

func NewNotificationQueries(repo NotificationReadStore, clk clock.Clock) NotificationQueries {
	return &notificationQueriesImpl{repo: repo, clock: clk}
}

func (q *notificationQueriesImpl) ListDue(ctx context.Context, limit *int) ([]*NotificationJobView, error) {
	n, err := ResolveLimit(limit)
	if err != nil {
		return nil, err
	}
	return q.repo.FindDue(ctx, q.clock.Now(), int32(n))
}
