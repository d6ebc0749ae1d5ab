package txid

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextReceiptNoFormat(t *testing.T) {
	g := NewGenerator("B001")
	now := time.Date(2026, 8, 31, 10, 30, 0, 0, time.Local)

	assert.Equal(t, "B001-260831-00001", g.NextReceiptNo(now))
	assert.Equal(t, "B001-260831-00002", g.NextReceiptNo(now))
}

func TestNextReceiptNoResetsAtMidnight(t *testing.T) {
	g := NewGenerator("B001")
	day1 := time.Date(2026, 8, 31, 23, 59, 0, 0, time.Local)
	day2 := time.Date(2026, 9, 1, 0, 1, 0, 0, time.Local)

	assert.Equal(t, "B001-260831-00001", g.NextReceiptNo(day1))
	assert.Equal(t, "B001-260901-00001", g.NextReceiptNo(day2))
}

func TestNextHeldIDDisambiguatesSameSecond(t *testing.T) {
	g := NewGenerator("B001")
	now := time.Date(2026, 8, 31, 14, 5, 9, 0, time.Local)

	first := g.NextHeldID(now)
	second := g.NextHeldID(now)

	assert.Equal(t, "HELD-20260831-140509-001", first)
	assert.Equal(t, "HELD-20260831-140509-002", second)
}

func TestNextReturnNoMonotonicWithinMillisecond(t *testing.T) {
	g := NewGenerator("B001")
	now := time.Now()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := g.NextReturnNo(now)
		assert.False(t, seen[id], "duplicate return id %s", id)
		seen[id] = true
	}
}

func TestNextReceiptNoConcurrentUnique(t *testing.T) {
	g := NewGenerator("B001")
	now := time.Now()

	const n = 200
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- g.NextReceiptNo(now)
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate receipt no %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
