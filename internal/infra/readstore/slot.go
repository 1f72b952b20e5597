package readstore

import (
	"context"
	"time"

	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"
	"consult-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotViewQueries interface {
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slot, error)
	ListSlotsByOwnerInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSlotsByOwnerInRangeParams) ([]sqlc.Slot, error)
}

type SlotReadStore struct {
	queries SlotViewQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotViewQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row, err := r.queries.GetSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return toSlotView(row), nil
}

// FindByOwnerInRange returns slots starting in [from, to), earliest first.
func (r *SlotReadStore) FindByOwnerInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListSlotsByOwnerInRange(ctx, r.db, sqlc.ListSlotsByOwnerInRangeParams{
		OwnerID:   ownerID,
		StartAt:   pgconv.TimeToPgtype(from),
		StartAt_2: pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}

	result := make([]*queries.SlotView, len(rows))
	for i, row := range rows {
		result[i] = toSlotView(row)
	}
	return result, nil
}

func toSlotView(row sqlc.Slot) *queries.SlotView {
	return &queries.SlotView{
		ID:          row.ID,
		CounselorID: row.OwnerID,
		StartAt:     pgconv.TimeFromPgtype(row.StartAt),
		EndAt:       pgconv.TimeFromPgtype(row.EndAt),
		Capacity:    int(row.Capacity),
		BookedCount: int(row.Booked),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
