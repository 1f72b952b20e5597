package queries

import (
	"context"
	"time"

	"consult-booking/internal/domain/invitation"
	"consult-booking/internal/domain/slot"
	"consult-booking/internal/infra"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindByOwnerInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*SlotView, error)
}

type SlotQueries interface {
	// ListPublic lists the inviting counselor's slots inside window.
	ListPublic(ctx context.Context, scope invitation.Scope, window slot.Window) ([]*SlotView, error)
	ListForOwner(ctx context.Context, counselorID uuid.UUID, window slot.Window) ([]*SlotView, error)
	GetForOwner(ctx context.Context, counselorID, slotID uuid.UUID) (*SlotView, error)
}

type slotQueriesImpl struct {
	repo SlotReadStore
}

func NewSlotQueries(repo SlotReadStore) SlotQueries {
	return &slotQueriesImpl{repo: repo}
}

func (q *slotQueriesImpl) ListPublic(ctx context.Context, scope invitation.Scope, window slot.Window) ([]*SlotView, error) {
	return q.repo.FindByOwnerInRange(ctx, scope.OwnerID, window.From, window.To)
}

func (q *slotQueriesImpl) ListForOwner(ctx context.Context, counselorID uuid.UUID, window slot.Window) ([]*SlotView, error) {
	return q.repo.FindByOwnerInRange(ctx, counselorID, window.From, window.To)
}

func (q *slotQueriesImpl) GetForOwner(ctx context.Context, counselorID, slotID uuid.UUID) (*SlotView, error) {
	sv, err := q.repo.FindByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrSlotNotFound
		}
		return nil, err
	}
	if sv.CounselorID != counselorID {
		return nil, shared.ErrForbidden
	}
	return sv, nil
}
