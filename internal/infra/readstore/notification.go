package readstore

import (
	"context"
	"time"

	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
	"consult-booking/internal/usecase/queries"
)

type NotificationReadQueries interface {
	ListDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDueNotificationJobsParams) ([]sqlc.ListDueNotificationJobsRow, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

// FindDue returns queued jobs whose run_at has passed, oldest first.
func (s *NotificationReadStore) FindDue(ctx context.Context, now time.Time, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := s.queries.ListDueNotificationJobs(ctx, s.db, sqlc.ListDueNotificationJobsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due notification jobs", err)
	}

	result := make([]*queries.NotificationJobView, len(rows))
	for i, row := range rows {
		result[i] = &queries.NotificationJobView{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			Attempts:  row.Attempts,
			Status:    row.Status,
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}
