//go:build unit

package memstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatCounter(t *testing.T) {
	t.Run("success: claims stop at capacity", func(t *testing.T) {
		c := newSeatCounter(2)
		assert.True(t, c.claim())
		assert.True(t, c.claim())
		assert.False(t, c.claim())
		assert.Equal(t, 2, c.load())
	})

	t.Run("success: release is floored at zero", func(t *testing.T) {
		c := newSeatCounter(1)
		assert.False(t, c.release())
		assert.Equal(t, 0, c.load())

		assert.True(t, c.claim())
		assert.True(t, c.release())
		assert.False(t, c.release())
		assert.Equal(t, 0, c.load())
	})

	t.Run("success: concurrent claims never exceed capacity", func(t *testing.T) {
		const capacity = 5
		const workers = 64

		c := newSeatCounter(capacity)
		var wg sync.WaitGroup
		var mu sync.Mutex
		won := 0
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if c.claim() {
					mu.Lock()
					won++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, capacity, won)
		assert.Equal(t, capacity, c.load())
	})

	t.Run("success: unrelease restores a full slot", func(t *testing.T) {
		c := newSeatCounter(1)
		assert.True(t, c.claim())
		assert.True(t, c.release())
		c.unrelease()
		assert.Equal(t, 1, c.load())
		assert.False(t, c.claim())
	})

	t.Run("success: claims racing releases never exceed capacity", func(t *testing.T) {
		const capacity = 3
		const workers = 64
		const rounds = 50

		c := newSeatCounter(capacity)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for r := 0; r < rounds; r++ {
					if !c.claim() {
						continue
					}
					assert.LessOrEqual(t, c.load(), capacity)
					// the holder's own seat keeps booked above zero
					assert.True(t, c.release())
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 0, c.load())
	})
}
