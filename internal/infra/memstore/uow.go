package memstore

import (
	"context"
	"time"

	"consult-booking/internal/domain/invitation"
	"consult-booking/internal/domain/reservation"
	"consult-booking/internal/domain/slot"
	"consult-booking/internal/infra"
	sqlc "consult-booking/internal/infra/sqlc/generated"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errUniqueViolation     = errs.New("unique constraint violated")
	errForeignKeyViolation = errs.New("foreign key constraint violated")
)

type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) shared.UnitOfWork {
	return &UnitOfWork{store: store}
}

// Within applies fn as one transaction. A failing fn has its writes undone in
// reverse order, so a claim followed by a rejected insert leaves no trace.
func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.txMu.Lock()
	defer u.store.txMu.Unlock()

	tx := &memTx{store: u.store}
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

type memTx struct {
	store *Store
	undo  []func()
}

func (t *memTx) onRollback(fn func()) {
	t.undo = append(t.undo, fn)
}

func (t *memTx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *memTx) DB() sqlc.DBTX                                        { return nil }
func (t *memTx) Slots() shared.SlotRepository                         { return &slotRepo{tx: t} }
func (t *memTx) Reservations() shared.ReservationRepository           { return &reservationRepo{tx: t} }
func (t *memTx) ReservationTokens() shared.ReservationTokenRepository { return &tokenRepo{tx: t} }
func (t *memTx) Invitations() shared.InvitationRepository             { return &invitationRepo{tx: t} }
func (t *memTx) Notifications() shared.NotificationRepository         { return &notificationRepo{tx: t} }
func (t *memTx) Reads() shared.CommandReads                           { return &commandReads{store: t.store} }

type slotRepo struct{ tx *memTx }

func (r *slotRepo) Claim(_ context.Context, _ sqlc.DBTX, slotID uuid.UUID) (slot.ClaimResult, error) {
	s := r.tx.store
	s.mu.RLock()
	row, ok := s.slots[slotID]
	s.mu.RUnlock()
	if !ok {
		return slot.ClaimSlotNotFound, nil
	}
	if !row.seats.claim() {
		return slot.ClaimSlotFull, nil
	}
	r.tx.onRollback(func() { row.seats.release() })
	return slot.Claimed, nil
}

func (r *slotRepo) Release(_ context.Context, _ sqlc.DBTX, slotID uuid.UUID) (bool, error) {
	s := r.tx.store
	s.mu.RLock()
	row, ok := s.slots[slotID]
	s.mu.RUnlock()
	if !ok || !row.seats.release() {
		return false, nil
	}
	r.tx.onRollback(row.seats.unrelease)
	return true, nil
}

func (r *slotRepo) Create(_ context.Context, _ sqlc.DBTX, sl *slot.Slot) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !r.insertLocked(sl) {
		return infra.WrapRepoErr("failed to create slot", errUniqueViolation, infra.KindDuplicateKey)
	}
	return nil
}

func (r *slotRepo) CreateBatch(_ context.Context, _ sqlc.DBTX, slots []*slot.Slot) (int, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	created := 0
	for _, sl := range slots {
		if r.insertLocked(sl) {
			created++
		}
	}
	return created, nil
}

// insertLocked behaves like INSERT ... ON CONFLICT DO NOTHING.
func (r *slotRepo) insertLocked(sl *slot.Slot) bool {
	s := r.tx.store
	row := &slotRow{
		id:        sl.ID(),
		ownerID:   sl.OwnerID(),
		startAt:   sl.StartAt().UTC(),
		endAt:     sl.EndAt().UTC(),
		capacity:  sl.Capacity(),
		seats:     newSeatCounter(sl.Capacity()),
		createdAt: sl.CreatedAt(),
		updatedAt: sl.UpdatedAt(),
	}
	if _, dup := s.slotKeys[row.key()]; dup {
		return false
	}
	if _, dup := s.slots[row.id]; dup {
		return false
	}
	s.slots[row.id] = row
	s.slotKeys[row.key()] = row.id
	r.tx.onRollback(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.slots, row.id)
		delete(s.slotKeys, row.key())
	})
	return true
}

func (r *slotRepo) Delete(_ context.Context, _ sqlc.DBTX, slotID, ownerID uuid.UUID) (bool, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.slots[slotID]
	if !ok || row.ownerID != ownerID || row.seats.load() > 0 {
		return false, nil
	}
	for _, res := range s.reservations {
		if res.slotID == slotID {
			return false, infra.WrapRepoErr("failed to delete slot", errForeignKeyViolation, infra.KindForeignKeyViolated)
		}
	}

	delete(s.slots, slotID)
	delete(s.slotKeys, row.key())
	r.tx.onRollback(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.slots[row.id] = row
		s.slotKeys[row.key()] = row.id
	})
	return true, nil
}

type reservationRepo struct{ tx *memTx }

func (r *reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.slots[res.SlotID()]; !ok {
		return infra.WrapRepoErr("failed to create reservation", errForeignKeyViolation, infra.KindForeignKeyViolated)
	}
	key := activeKey{slotID: res.SlotID(), email: res.Email().Value()}
	if _, dup := s.active[key]; dup {
		return infra.WrapRepoErr("failed to create reservation", errUniqueViolation, infra.KindDuplicateKey)
	}
	if _, dup := s.reservations[res.ID()]; dup {
		return infra.WrapRepoErr("failed to create reservation", errUniqueViolation, infra.KindDuplicateKey)
	}

	s.reservations[res.ID()] = &reservationRow{
		id:        res.ID(),
		slotID:    res.SlotID(),
		email:     res.Email().Value(),
		name:      res.Name().Value(),
		note:      res.Note().Value(),
		status:    reservation.StatusBooked.String(),
		createdAt: res.CreatedAt(),
		updatedAt: res.UpdatedAt(),
	}
	s.active[key] = res.ID()
	r.tx.onRollback(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.reservations, res.ID())
		delete(s.active, key)
	})
	return nil
}

func (r *reservationRepo) Transition(_ context.Context, _ sqlc.DBTX, id uuid.UUID, target reservation.Status, at time.Time) (bool, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.reservations[id]
	if !ok || !reservation.Status(row.status).CanTransitionTo(target) {
		return false, nil
	}

	prev := *row
	at = at.UTC().Truncate(time.Microsecond)
	row.status = target.String()
	row.updatedAt = at
	if target == reservation.StatusCancelled {
		row.cancelledAt = &at
	}
	key := activeKey{slotID: row.slotID, email: row.email}
	delete(s.active, key)

	r.tx.onRollback(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		*row = prev
		s.active[key] = row.id
	})
	return true, nil
}

type tokenRepo struct{ tx *memTx }

func (r *tokenRepo) Create(_ context.Context, _ sqlc.DBTX, reservationID uuid.UUID, token string, expiresAt time.Time) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.tokens[token]; dup {
		return infra.WrapRepoErr("failed to create reservation token", errUniqueViolation, infra.KindDuplicateKey)
	}
	if _, dup := s.tokenByReservation[reservationID]; dup {
		return infra.WrapRepoErr("failed to create reservation token", errUniqueViolation, infra.KindDuplicateKey)
	}

	s.tokens[token] = &tokenRow{reservationID: reservationID, token: token, expiresAt: expiresAt.UTC()}
	s.tokenByReservation[reservationID] = token
	r.tx.onRollback(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.tokens, token)
		delete(s.tokenByReservation, reservationID)
	})
	return nil
}

type invitationRepo struct{ tx *memTx }

func (r *invitationRepo) Replace(_ context.Context, _ sqlc.DBTX, inv *invitation.Invitation) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := clientKey{counselorID: inv.CounselorID(), email: inv.ClientEmail().Value()}
	var replaced *inviteRow
	if old, ok := s.inviteByClient[key]; ok {
		replaced = s.invites[old]
		delete(s.invites, old)
	}
	if _, dup := s.invites[inv.Token()]; dup {
		return infra.WrapRepoErr("failed to create invite token", errUniqueViolation, infra.KindDuplicateKey)
	}

	row := &inviteRow{
		token:       inv.Token(),
		counselorID: inv.CounselorID(),
		clientEmail: inv.ClientEmail().Value(),
		expiresAt:   inv.ExpiresAt(),
		createdAt:   inv.CreatedAt(),
	}
	s.invites[row.token] = row
	s.inviteByClient[key] = row.token
	r.tx.onRollback(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.invites, row.token)
		delete(s.inviteByClient, key)
		if replaced != nil {
			s.invites[replaced.token] = replaced
			s.inviteByClient[key] = replaced.token
		}
	})
	return nil
}

type notificationRepo struct{ tx *memTx }

func (r *notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	s.jobs = append(s.jobs, &jobRow{
		id:        uuid.New(),
		kind:      kind,
		topic:     topic,
		payload:   append([]byte(nil), payload...),
		runAt:     runAt.UTC(),
		status:    "queued",
		createdAt: now,
		updatedAt: now,
	})
	n := len(s.jobs) - 1
	r.tx.onRollback(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.jobs = s.jobs[:n]
	})
	return nil
}

type commandReads struct{ store *Store }

func (r *commandReads) SlotByID(_ context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return &shared.SlotSnapshot{
		ID:        row.id,
		OwnerID:   row.ownerID,
		StartAt:   row.startAt,
		EndAt:     row.endAt,
		Capacity:  row.capacity,
		Booked:    row.seats.load(),
		CreatedAt: row.createdAt,
		UpdatedAt: row.updatedAt,
	}, nil
}

func (r *commandReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return &shared.ReservationSnapshot{
		ID:          row.id,
		SlotID:      row.slotID,
		Email:       row.email,
		Name:        row.name,
		Note:        row.note,
		Status:      row.status,
		CreatedAt:   row.createdAt,
		UpdatedAt:   row.updatedAt,
		CancelledAt: row.cancelledAt,
	}, nil
}

func (r *commandReads) ReservationTokenByToken(_ context.Context, token string) (*shared.ReservationTokenSnapshot, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.tokens[token]
	if !ok {
		return nil, infra.WrapRepoErr("reservation token not found", nil, infra.KindNotFound)
	}
	return &shared.ReservationTokenSnapshot{
		ReservationID: row.reservationID,
		Token:         row.token,
		ExpiresAt:     row.expiresAt,
	}, nil
}
