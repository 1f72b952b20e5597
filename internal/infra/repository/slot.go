package repository

import (
	"context"

	"consult-booking/internal/domain/slot"
	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotWriteQueries interface {
	ClaimSlotSeat(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ReleaseSlotSeat(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	SlotExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	CreateSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotParams) error
	CreateSlotIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotIfAbsentParams) (int64, error)
	DeleteUnbookedSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteUnbookedSlotParams) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

// Claim takes one seat with a single conditional UPDATE. The affected-row
// count decides the outcome; the existence probe only runs after a miss to
// tell a missing slot from a full one.
func (r *SlotRepository) Claim(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) (slot.ClaimResult, error) {
	affected, err := r.queries.ClaimSlotSeat(ctx, tx, slotID)
	if err != nil {
		return slot.ClaimUnknown, infra.WrapRepoErr("failed to claim slot seat", err)
	}
	if affected == 1 {
		return slot.Claimed, nil
	}

	exists, err := r.queries.SlotExists(ctx, tx, slotID)
	if err != nil {
		return slot.ClaimUnknown, infra.WrapRepoErr("failed to check slot existence", err)
	}
	if !exists {
		return slot.ClaimSlotNotFound, nil
	}
	return slot.ClaimSlotFull, nil
}

func (r *SlotRepository) Release(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) (bool, error) {
	affected, err := r.queries.ReleaseSlotSeat(ctx, tx, slotID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to release slot seat", err)
	}
	return affected == 1, nil
}

func (r *SlotRepository) Create(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error {
	params := sqlc.CreateSlotParams{
		ID:        s.ID(),
		OwnerID:   s.OwnerID(),
		StartAt:   pgconv.TimeToPgtype(s.StartAt()),
		EndAt:     pgconv.TimeToPgtype(s.EndAt()),
		Capacity:  int32(s.Capacity()),
		CreatedAt: pgconv.TimeToPgtype(s.CreatedAt()),
	}
	if err := r.queries.CreateSlot(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

func (r *SlotRepository) CreateBatch(ctx context.Context, tx sqlc.DBTX, slots []*slot.Slot) (int, error) {
	created := 0
	for _, s := range slots {
		params := sqlc.CreateSlotIfAbsentParams{
			ID:        s.ID(),
			OwnerID:   s.OwnerID(),
			StartAt:   pgconv.TimeToPgtype(s.StartAt()),
			EndAt:     pgconv.TimeToPgtype(s.EndAt()),
			Capacity:  int32(s.Capacity()),
			CreatedAt: pgconv.TimeToPgtype(s.CreatedAt()),
		}
		affected, err := r.queries.CreateSlotIfAbsent(ctx, tx, params)
		if err != nil {
			return 0, infra.WrapRepoErr("failed to create slot in batch", err)
		}
		created += int(affected)
	}
	return created, nil
}

func (r *SlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, slotID, ownerID uuid.UUID) (bool, error) {
	affected, err := r.queries.DeleteUnbookedSlot(ctx, tx, sqlc.DeleteUnbookedSlotParams{
		ID:      slotID,
		OwnerID: ownerID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete slot", err)
	}
	return affected == 1, nil
}
