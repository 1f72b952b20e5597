//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"consult-booking/internal/infra"
	"consult-booking/internal/infra/repository"
	sqlc "consult-booking/internal/infra/sqlc/generated"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingJobQueries struct {
	got []sqlc.CreateNotificationJobParams
	err error
}

func (q *recordingJobQueries) CreateNotificationJob(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
	q.got = append(q.got, arg)
	return q.err
}

func TestNotificationRepository_CreateJob(t *testing.T) {
	runAt := time.Date(2026, 3, 1, 18, 0, 0, 0, time.FixedZone("JST", 9*3600))

	t.Run("success: job is queued with its run time in UTC", func(t *testing.T) {
		q := &recordingJobQueries{}
		repo := repository.NewNotificationRepository(q, &mockDBTX{})

		err := repo.CreateJob(context.Background(), &mockDBTX{}, "email", "reservation_created", []byte(`{"reservationId":"r1"}`), runAt)

		require.NoError(t, err)
		require.Len(t, q.got, 1)
		assert.Equal(t, "queued", q.got[0].Status)
		assert.Equal(t, "reservation_created", q.got[0].Topic)
		assert.Equal(t, time.UTC, q.got[0].RunAt.Time.Location())
		assert.True(t, q.got[0].RunAt.Time.Equal(runAt))
	})

	t.Run("error: payload that jsonb would reject never reaches the database", func(t *testing.T) {
		q := &recordingJobQueries{}
		repo := repository.NewNotificationRepository(q, &mockDBTX{})

		err := repo.CreateJob(context.Background(), &mockDBTX{}, "email", "reservation_created", []byte(`{"broken"`), runAt)

		require.Error(t, err)
		assert.Empty(t, q.got)
	})

	t.Run("error: insert failure is a DB failure", func(t *testing.T) {
		q := &recordingJobQueries{err: errors.New("connection reset")}
		repo := repository.NewNotificationRepository(q, &mockDBTX{})

		err := repo.CreateJob(context.Background(), &mockDBTX{}, "email", "invitation_created", []byte(`{}`), runAt)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
