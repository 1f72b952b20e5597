package queries

import (
	"context"
	"time"

	"consult-booking/internal/domain/reservation"
	"consult-booking/internal/infra"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/pkg/tracing"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindHistoryFirstPage(ctx context.Context, filter HistoryFilter, limit int32) ([]*HistoryItem, error)
	FindHistoryKeyset(ctx context.Context, filter HistoryFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*HistoryItem, error)
	FindBySlot(ctx context.Context, slotID uuid.UUID) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetForOwner(ctx context.Context, counselorID, id uuid.UUID) (*ReservationView, error)
	// History pages one client's reservations newest first. cursor is the
	// opaque value returned as NextCursor by the previous page.
	History(ctx context.Context, email string, status *string, cursor *string, limit *int) (*HistoryPage, error)
	ListBySlot(ctx context.Context, counselorID, slotID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo  ReservationReadStore
	slots SlotReadStore
}

func NewReservationQueries(repo ReservationReadStore, slots SlotReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, slots: slots}
}

func (q *reservationQueriesImpl) GetForOwner(ctx context.Context, counselorID, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrReservationNotFound
		}
		return nil, err
	}
	if rv.Slot == nil || rv.Slot.CounselorID != counselorID {
		return nil, shared.ErrForbidden
	}
	return rv, nil
}

func (q *reservationQueriesImpl) History(ctx context.Context, email string, status *string, cursor *string, limit *int) (page *HistoryPage, err error) {
	ctx, span := tracing.Start(ctx, "queries.ReservationHistory",
		attribute.Bool("reservation.cursor", cursor != nil && *cursor != ""),
	)
	defer func() { tracing.End(span, err) }()

	n, err := ResolveLimit(limit)
	if err != nil {
		return nil, err
	}
	filter, err := buildHistoryFilter(email, status)
	if err != nil {
		return nil, err
	}

	var rows []*HistoryItem
	if cursor == nil || *cursor == "" {
		rows, err = q.repo.FindHistoryFirstPage(ctx, filter, int32(n+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(*cursor)
		if derr != nil {
			return nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindHistoryKeyset(ctx, filter, lastCreatedAt, lastID, int32(n+1))
	}
	if err != nil {
		return nil, err
	}

	page = &HistoryPage{Items: rows}
	if len(rows) > n {
		last := rows[n-1]
		next := EncodeAfterCursor(last.CreatedAt, last.ID)
		page.Items = rows[:n]
		page.NextCursor = &next
		page.HasMore = true
	}
	return page, nil
}

func buildHistoryFilter(email string, status *string) (HistoryFilter, error) {
	normalized, err := reservation.NewEmail(email)
	if err != nil {
		return HistoryFilter{}, errs.Validation(err)
	}
	filter := HistoryFilter{Email: normalized.Value()}
	if status != nil && *status != "" {
		st, perr := reservation.ParseStatus(*status)
		if perr != nil {
			return HistoryFilter{}, errs.Validation(perr)
		}
		s := st.String()
		filter.Status = &s
	}
	return filter, nil
}

func (q *reservationQueriesImpl) ListBySlot(ctx context.Context, counselorID, slotID uuid.UUID) ([]*ReservationView, error) {
	sv, err := q.slots.FindByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrSlotNotFound
		}
		return nil, err
	}
	if sv.CounselorID != counselorID {
		return nil, shared.ErrForbidden
	}
	return q.repo.FindBySlot(ctx, slotID)
}
