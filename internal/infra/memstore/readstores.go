package memstore

import (
	"bytes"
	"context"
	"sort"
	"time"

	"consult-booking/internal/infra"
	"consult-booking/internal/usecase/queries"
	"consult-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type SlotReadStore struct{ store *Store }

func NewSlotReadStore(store *Store) *SlotReadStore {
	return &SlotReadStore{store: store}
}

func (r *SlotReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.SlotView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return slotView(row), nil
}

func (r *SlotReadStore) FindByOwnerInRange(_ context.Context, ownerID uuid.UUID, from, to time.Time) ([]*queries.SlotView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*queries.SlotView, 0)
	for _, row := range s.slots {
		if row.ownerID != ownerID || row.startAt.Before(from) || !row.startAt.Before(to) {
			continue
		}
		result = append(result, slotView(row))
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartAt.Equal(result[j].StartAt) {
			return result[i].StartAt.Before(result[j].StartAt)
		}
		return bytes.Compare(result[i].ID[:], result[j].ID[:]) < 0
	})
	return result, nil
}

func slotView(row *slotRow) *queries.SlotView {
	return &queries.SlotView{
		ID:          row.id,
		CounselorID: row.ownerID,
		StartAt:     row.startAt,
		EndAt:       row.endAt,
		Capacity:    row.capacity,
		BookedCount: row.seats.load(),
		CreatedAt:   row.createdAt,
		UpdatedAt:   row.updatedAt,
	}
}

type ReservationReadStore struct{ store *Store }

func NewReservationReadStore(store *Store) *ReservationReadStore {
	return &ReservationReadStore{store: store}
}

func (r *ReservationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	v := reservationView(row)
	if sl, ok := s.slots[row.slotID]; ok {
		v.Slot = &queries.SlotSummary{CounselorID: sl.ownerID, StartAt: sl.startAt, EndAt: sl.endAt}
	}
	return v, nil
}

func (r *ReservationReadStore) FindHistoryFirstPage(_ context.Context, filter queries.HistoryFilter, limit int32) ([]*queries.HistoryItem, error) {
	return r.history(filter, nil, uuid.Nil, limit), nil
}

func (r *ReservationReadStore) FindHistoryKeyset(_ context.Context, filter queries.HistoryFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.HistoryItem, error) {
	return r.history(filter, &lastCreatedAt, lastID, limit), nil
}

// history orders by (createdAt, id) descending and, given a cursor, keeps
// only rows strictly after it in that order.
func (r *ReservationReadStore) history(filter queries.HistoryFilter, afterCreatedAt *time.Time, afterID uuid.UUID, limit int32) []*queries.HistoryItem {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]*reservationRow, 0)
	for _, row := range s.reservations {
		if row.email != filter.Email {
			continue
		}
		if filter.Status != nil && row.status != *filter.Status {
			continue
		}
		if afterCreatedAt != nil && !before(row.createdAt, row.id, *afterCreatedAt, afterID) {
			continue
		}
		rows = append(rows, row)
	}
	sortNewestFirst(rows)
	if int(limit) < len(rows) {
		rows = rows[:limit]
	}

	result := make([]*queries.HistoryItem, len(rows))
	for i, row := range rows {
		item := &queries.HistoryItem{
			ID:        row.id,
			SlotID:    row.slotID,
			Email:     row.email,
			Name:      row.name,
			Status:    row.status,
			CreatedAt: row.createdAt,
		}
		if sl, ok := s.slots[row.slotID]; ok {
			item.Slot = queries.SlotSummary{CounselorID: sl.ownerID, StartAt: sl.startAt, EndAt: sl.endAt}
		}
		result[i] = item
	}
	return result
}

func (r *ReservationReadStore) FindBySlot(_ context.Context, slotID uuid.UUID) ([]*queries.ReservationView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]*reservationRow, 0)
	for _, row := range s.reservations {
		if row.slotID == slotID {
			rows = append(rows, row)
		}
	}
	sortNewestFirst(rows)

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = reservationView(row)
	}
	return result, nil
}

// before reports (t, id) < (at, atID) in row-value order.
func before(t time.Time, id uuid.UUID, at time.Time, atID uuid.UUID) bool {
	if !t.Equal(at) {
		return t.Before(at)
	}
	return bytes.Compare(id[:], atID[:]) < 0
}

func sortNewestFirst(rows []*reservationRow) {
	sort.Slice(rows, func(i, j int) bool {
		return before(rows[j].createdAt, rows[j].id, rows[i].createdAt, rows[i].id)
	})
}

func reservationView(row *reservationRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:          row.id,
		SlotID:      row.slotID,
		Email:       row.email,
		Name:        row.name,
		Note:        row.note,
		Status:      row.status,
		CreatedAt:   row.createdAt,
		UpdatedAt:   row.updatedAt,
		CancelledAt: row.cancelledAt,
	}
}

type InviteTokenReadStore struct{ store *Store }

func NewInviteTokenReadStore(store *Store) *InviteTokenReadStore {
	return &InviteTokenReadStore{store: store}
}

func (r *InviteTokenReadStore) FindByToken(_ context.Context, token string) (*readmodel.InviteTokenRM, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.invites[token]
	if !ok {
		return nil, infra.WrapRepoErr("invite token not found", nil, infra.KindNotFound)
	}
	return &readmodel.InviteTokenRM{
		Token:       row.token,
		CounselorID: row.counselorID,
		ClientEmail: row.clientEmail,
		ExpiresAt:   row.expiresAt,
	}, nil
}

type NotificationReadStore struct{ store *Store }

func NewNotificationReadStore(store *Store) *NotificationReadStore {
	return &NotificationReadStore{store: store}
}

func (r *NotificationReadStore) FindDue(_ context.Context, now time.Time, limit int32) ([]*queries.NotificationJobView, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*queries.NotificationJobView, 0)
	for _, j := range s.jobs {
		if j.status != "queued" || j.runAt.After(now) {
			continue
		}
		result = append(result, &queries.NotificationJobView{
			ID:        j.id,
			Kind:      j.kind,
			Topic:     j.topic,
			Payload:   j.payload,
			RunAt:     j.runAt,
			Attempts:  j.attempts,
			Status:    j.status,
			LastError: j.lastError,
			CreatedAt: j.createdAt,
			UpdatedAt: j.updatedAt,
		})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].RunAt.Before(result[j].RunAt) })
	if int(limit) < len(result) {
		result = result[:limit]
	}
	return result, nil
}
