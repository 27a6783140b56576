// Package ledger holds the in-memory view of all accepted bookings.
//
// The ledger is append-only for the lifetime of the process; the event
// sheet is the system of record across restarts. All availability
// computations run against a snapshot, while submissions go through
// Reserve so that the re-check and the append form one critical
// section per ledger (check-then-act race, see Reserve).
package ledger

import (
	"sync"

	"github.com/freshup-events/erlebnisbuchung/internal/domain"
)

// Ledger is the shared collection of accepted bookings
type Ledger struct {
	mu      sync.RWMutex
	entries []domain.Booking
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{}
}

// Snapshot returns a copy of the current entries, in insertion order.
// Staleness is acceptable for rendering slot lists; submissions always
// re-validate via Reserve.
func (l *Ledger) Snapshot() []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Booking, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the current number of entries
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Reserve appends the booking if check accepts the current entries.
// check runs under the ledger lock, so two concurrent submissions can
// never both observe a free slot and both write. The check receives
// the live entries slice and must not retain or mutate it.
func (l *Ledger) Reserve(b domain.Booking, check func(entries []domain.Booking) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := check(l.entries); err != nil {
		return err
	}

	l.entries = append(l.entries, b)
	return nil
}

// Replace swaps the whole ledger content, used when re-seeding from
// the sheet. Bookings accepted locally but not yet visible in the
// sheet are dropped; the sheet wins as system of record.
func (l *Ledger) Replace(entries []domain.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = make([]domain.Booking, len(entries))
	copy(l.entries, entries)
}
