package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type slotKey struct {
	ownerID uuid.UUID
	startAt int64
	endAt   int64
}

type activeKey struct {
	slotID uuid.UUID
	email  string
}

type clientKey struct {
	counselorID uuid.UUID
	email       string
}

type slotRow struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	startAt   time.Time
	endAt     time.Time
	capacity  int
	seats     *seatCounter
	createdAt time.Time
	updatedAt time.Time
}

func (r *slotRow) key() slotKey {
	return slotKey{ownerID: r.ownerID, startAt: r.startAt.UnixMicro(), endAt: r.endAt.UnixMicro()}
}

type reservationRow struct {
	id          uuid.UUID
	slotID      uuid.UUID
	email       string
	name        string
	note        *string
	status      string
	createdAt   time.Time
	updatedAt   time.Time
	cancelledAt *time.Time
}

type tokenRow struct {
	reservationID uuid.UUID
	token         string
	expiresAt     time.Time
}

type inviteRow struct {
	token       string
	counselorID uuid.UUID
	clientEmail string
	expiresAt   time.Time
	createdAt   time.Time
}

type jobRow struct {
	id        uuid.UUID
	kind      string
	topic     string
	payload   []byte
	runAt     time.Time
	status    string
	attempts  int32
	lastError *string
	createdAt time.Time
	updatedAt time.Time
}

// Store is an in-process stand-in for the relational store. Write
// transactions are serialized by txMu; mu guards the maps for concurrent
// readers. Seat counters are guarded by their own per-slot lock.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	slots              map[uuid.UUID]*slotRow
	slotKeys           map[slotKey]uuid.UUID
	reservations       map[uuid.UUID]*reservationRow
	active             map[activeKey]uuid.UUID
	tokens             map[string]*tokenRow
	tokenByReservation map[uuid.UUID]string
	invites            map[string]*inviteRow
	inviteByClient     map[clientKey]string
	jobs               []*jobRow
}

func New() *Store {
	return &Store{
		slots:              make(map[uuid.UUID]*slotRow),
		slotKeys:           make(map[slotKey]uuid.UUID),
		reservations:       make(map[uuid.UUID]*reservationRow),
		active:             make(map[activeKey]uuid.UUID),
		tokens:             make(map[string]*tokenRow),
		tokenByReservation: make(map[uuid.UUID]string),
		invites:            make(map[string]*inviteRow),
		inviteByClient:     make(map[clientKey]string),
	}
}

// BookedCount reports a slot's booked counter.
func (s *Store) BookedCount(slotID uuid.UUID) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.slots[slotID]
	if !ok {
		return 0, false
	}
	return row.seats.load(), true
}

// JobCount reports how many outbox jobs carry topic.
func (s *Store) JobCount(topic string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, j := range s.jobs {
		if j.topic == topic {
			n++
		}
	}
	return n
}

// ReservationCount reports how many reservation rows exist for slotID.
func (s *Store) ReservationCount(slotID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.reservations {
		if r.slotID == slotID {
			n++
		}
	}
	return n
}
