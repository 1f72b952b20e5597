package memstore

import (
	"sync"
	"sync/atomic"
)

// seatCounter is the in-memory capacity ledger for one slot. booked only
// moves through claim, release and unrelease, each a single compare-and-swap
// taken under the slot's own lock.
type seatCounter struct {
	mu       sync.Mutex
	capacity int64
	booked   atomic.Int64
}

func newSeatCounter(capacity int) *seatCounter {
	return &seatCounter{capacity: int64(capacity)}
}

func (c *seatCounter) claim() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.booked.Load()
	if cur >= c.capacity {
		return false
	}
	return c.booked.CompareAndSwap(cur, cur+1)
}

// release is floored at zero.
func (c *seatCounter) release() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.booked.Load()
	if cur <= 0 {
		return false
	}
	return c.booked.CompareAndSwap(cur, cur-1)
}

// unrelease takes back a seat a rolled back transaction released. It is not
// capped by capacity: the seat was held before the release.
func (c *seatCounter) unrelease() {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.booked.Load()
	c.booked.CompareAndSwap(cur, cur+1)
}

func (c *seatCounter) load() int {
	return int(c.booked.Load())
}
