// Package txid generates the human-readable identifiers used on receipts:
// branch-date-sequence numbers for sales, time-based ids for held and return
// transactions. All generators are monotonic within a branch/day so ids never
// collide per store.
package txid

import (
	"fmt"
	"sync"
	"time"
)

// Generator issues receipt numbers of the form BRANCH-YYMMDD-NNNNN. The
// sequence resets at local midnight and is serialized by the generator's own
// mutex.
type Generator struct {
	mu     sync.Mutex
	branch string
	day    string
	seq    int

	heldDay string
	heldSeq int

	lastReturnMs int64
}

// NewGenerator creates a generator for the given branch code.
func NewGenerator(branch string) *Generator {
	return &Generator{branch: branch}
}

// NextReceiptNo returns the next receipt number for the given time.
func (g *Generator) NextReceiptNo(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	day := now.Format("060102")
	if day != g.day {
		g.day = day
		g.seq = 0
	}
	g.seq++
	return fmt.Sprintf("%s-%s-%05d", g.branch, day, g.seq)
}

// NextHeldID returns a held-transaction id of the form
// HELD-YYYYMMDD-HHMMSS-NNN. The trailing sequence disambiguates holds placed
// within the same second.
func (g *Generator) NextHeldID(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	day := now.Format("20060102")
	if day != g.heldDay {
		g.heldDay = day
		g.heldSeq = 0
	}
	g.heldSeq++
	return fmt.Sprintf("HELD-%s-%s-%03d", day, now.Format("150405"), g.heldSeq)
}

// NextReturnNo returns a return-transaction id of the form RET<epoch-ms>,
// bumped past the previous value when two returns land in the same
// millisecond.
func (g *Generator) NextReturnNo(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= g.lastReturnMs {
		ms = g.lastReturnMs + 1
	}
	g.lastReturnMs = ms
	return fmt.Sprintf("RET%d", ms)
}
