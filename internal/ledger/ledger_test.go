package ledger

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshup-events/erlebnisbuchung/internal/domain"
)

var errFull = errors.New("slot full")

func TestSnapshotIsACopy(t *testing.T) {
	l := New()
	require.NoError(t, l.Reserve(domain.Booking{OfferingID: "audi-q6", Date: "17.05.2025", Time: "10:00"},
		func([]domain.Booking) error { return nil }))

	snap := l.Snapshot()
	require.Len(t, snap, 1)

	snap[0].OfferingID = "mutated"
	assert.Equal(t, "audi-q6", l.Snapshot()[0].OfferingID)
}

func TestReserveRejectedByCheck(t *testing.T) {
	l := New()

	err := l.Reserve(domain.Booking{OfferingID: "audi-q6"}, func([]domain.Booking) error {
		return errFull
	})

	assert.ErrorIs(t, err, errFull)
	assert.Equal(t, 0, l.Len())
}

func TestReplace(t *testing.T) {
	l := New()
	require.NoError(t, l.Reserve(domain.Booking{OfferingID: "a"}, func([]domain.Booking) error { return nil }))

	l.Replace([]domain.Booking{
		{OfferingID: "b"},
		{OfferingID: "c"},
	})

	snap := l.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "b", snap[0].OfferingID)
}

// Concurrent submissions must never overshoot the capacity the check
// enforces: the re-check and the append form one critical section.
func TestReserveIsAtomicUnderConcurrency(t *testing.T) {
	const capacity = 4
	const attempts = 50

	l := New()
	booking := domain.Booking{
		OfferingID: "tandemflug-helikopter",
		Date:       "17.05.2025",
		Time:       "09:00",
		Count:      1,
	}

	check := func(entries []domain.Booking) error {
		total := 0
		for _, e := range entries {
			if e.Matches(booking.OfferingID, booking.Date, booking.Time) {
				total += e.EffectiveCount()
			}
		}
		if total >= capacity {
			return errFull
		}
		return nil
	}

	var wg sync.WaitGroup
	accepted := make(chan struct{}, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := l.Reserve(booking, check); err == nil {
				accepted <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(accepted)

	assert.Equal(t, capacity, len(accepted))
	assert.Equal(t, capacity, l.Len())
}
