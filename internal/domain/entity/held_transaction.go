package entity

import "time"

// HeldTransaction is a frozen transaction snapshot suspended for later
// resumption. It is owned exclusively by the hold/recall registry: created on
// hold, removed on recall or delete, never mutated in place. Held snapshots
// are terminal-session state, not durable records.
type HeldTransaction struct {
	ID       string              `json:"id"`
	Snapshot TransactionSnapshot `json:"snapshot"`
	Note     string              `json:"note,omitempty"`
	HeldAt   time.Time           `json:"held_at"`
}

// Clone returns a deep copy so a caller can never reach into the registry's
// stored record.
func (h HeldTransaction) Clone() HeldTransaction {
	out := h
	out.Snapshot = h.Snapshot.Clone()
	return out
}
