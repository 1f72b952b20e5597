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

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservationHistoryFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationHistoryFirstPageParams) ([]sqlc.ListReservationHistoryFirstPageRow, error)
	ListReservationHistoryKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationHistoryKeysetParams) ([]sqlc.ListReservationHistoryKeysetRow, error)
	ListReservationsBySlot(ctx context.Context, db sqlc.DBTX, slotID uuid.UUID) ([]sqlc.Reservation, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return &queries.ReservationView{
		ID:          row.ID,
		SlotID:      row.SlotID,
		Email:       row.Email,
		Name:        row.Name,
		Note:        pgconv.StringPtrFromPgtype(row.Note),
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		CancelledAt: pgconv.TimePtrFromPgtype(row.CancelledAt),
		Slot: &queries.SlotSummary{
			CounselorID: row.OwnerID,
			StartAt:     pgconv.TimeFromPgtype(row.SlotStartAt),
			EndAt:       pgconv.TimeFromPgtype(row.SlotEndAt),
		},
	}, nil
}

func (r *ReservationReadStore) FindHistoryFirstPage(ctx context.Context, filter queries.HistoryFilter, limit int32) ([]*queries.HistoryItem, error) {
	rows, err := r.queries.ListReservationHistoryFirstPage(ctx, r.db, sqlc.ListReservationHistoryFirstPageParams{
		Email:    filter.Email,
		Status:   pgconv.StringPtrToPgtype(filter.Status),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation history first page", err)
	}

	result := make([]*queries.HistoryItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.HistoryItem{
			ID:        row.ID,
			SlotID:    row.SlotID,
			Email:     row.Email,
			Name:      row.Name,
			Status:    row.Status,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			Slot: queries.SlotSummary{
				CounselorID: row.OwnerID,
				StartAt:     pgconv.TimeFromPgtype(row.SlotStartAt),
				EndAt:       pgconv.TimeFromPgtype(row.SlotEndAt),
			},
		}
	}
	return result, nil
}

func (r *ReservationReadStore) FindHistoryKeyset(ctx context.Context, filter queries.HistoryFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.HistoryItem, error) {
	rows, err := r.queries.ListReservationHistoryKeyset(ctx, r.db, sqlc.ListReservationHistoryKeysetParams{
		Email:          filter.Email,
		Status:         pgconv.StringPtrToPgtype(filter.Status),
		AfterCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		AfterID:        lastID,
		RowLimit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation history keyset", err)
	}

	result := make([]*queries.HistoryItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.HistoryItem{
			ID:        row.ID,
			SlotID:    row.SlotID,
			Email:     row.Email,
			Name:      row.Name,
			Status:    row.Status,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			Slot: queries.SlotSummary{
				CounselorID: row.OwnerID,
				StartAt:     pgconv.TimeFromPgtype(row.SlotStartAt),
				EndAt:       pgconv.TimeFromPgtype(row.SlotEndAt),
			},
		}
	}
	return result, nil
}

func (r *ReservationReadStore) FindBySlot(ctx context.Context, slotID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsBySlot(ctx, r.db, slotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by slot", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationView{
			ID:          row.ID,
			SlotID:      row.SlotID,
			Email:       row.Email,
			Name:        row.Name,
			Note:        pgconv.StringPtrFromPgtype(row.Note),
			Status:      row.Status,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
			CancelledAt: pgconv.TimePtrFromPgtype(row.CancelledAt),
		}
	}
	return result, nil
}
