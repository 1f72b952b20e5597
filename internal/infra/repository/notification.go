package repository

import (
	"context"
	"encoding/json"
	"time"

	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/pkg/pgconv"
)

// Outbox jobs start queued; a separate sender moves them to sent or failed.
const jobStatusQueued = "queued"

var errInvalidJobPayload = errs.New("notification payload is not a JSON document")

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
}

// NotificationRepository appends outbox rows inside the caller's transaction,
// so a job exists exactly when the change that produced it commits.
type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{queries: queries, db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if !json.Valid(payload) {
		return errs.Wrap(errInvalidJobPayload, topic)
	}

	err := r.queries.CreateNotificationJob(ctx, tx, sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt.UTC()),
		Status:  jobStatusQueued,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
