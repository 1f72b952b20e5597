//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestSlot inserts a 30 minute slot starting at startAt.
func CreateTestSlot(t *testing.T, db DBLike, ownerID uuid.UUID, startAt time.Time, capacity int) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	startAt = startAt.UTC().Truncate(time.Microsecond)
	_, err := db.Exec(context.Background(),
		"INSERT INTO slots (id, owner_id, start_at, end_at, capacity) VALUES ($1, $2, $3, $4, $5)",
		slotID, ownerID, startAt, startAt.Add(30*time.Minute), capacity)
	require.NoError(t, err)

	return slotID
}

// CreateTestInvite stores an invite token for (counselorID, email).
func CreateTestInvite(t *testing.T, db DBLike, counselorID uuid.UUID, email string, expiresAt time.Time) string {
	t.Helper()

	token := "inv_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err := db.Exec(context.Background(),
		"INSERT INTO invite_tokens (token, counselor_id, client_email, expires_at) VALUES ($1, $2, $3, $4)",
		token, counselorID, email, expiresAt)
	require.NoError(t, err)

	return token
}

// BookedCount reads the stored counter, bypassing every read model.
func BookedCount(t *testing.T, db DBLike, slotID uuid.UUID) int {
	t.Helper()

	var booked int
	err := db.QueryRow(context.Background(), "SELECT booked FROM slots WHERE id = $1", slotID).Scan(&booked)
	require.NoError(t, err)
	return booked
}

func CountJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

// resetTables lists every table, children first.
var resetTables = []string{
	"notification_jobs",
	"reservation_tokens",
	"invite_tokens",
	"reservations",
	"slots",
}

// ResetDB empties every table between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(resetTables, ", ")+" CASCADE")
	if err != nil {
		return fmt.Errorf("reset tables: %w", err)
	}
	return nil
}
