package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ramikhoury/lounge/internal/models"
	"github.com/ramikhoury/lounge/internal/storage"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()

	st, err := storage.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	s := New(st)
	require.NoError(t, s.Load())

	clock := &fakeClock{current: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	s.now = clock.Now
	return s, clock
}

// newTestStoreOn builds a store over existing storage, for reload tests.
func newTestStoreOn(t *testing.T, st *storage.Storage, clock *fakeClock) *Store {
	t.Helper()

	s := New(st)
	require.NoError(t, s.Load())
	s.now = clock.Now
	return s
}

func addTestCustomer(t *testing.T, s *Store, name, phone string) models.Customer {
	t.Helper()

	customer, err := s.AddCustomer(name, phone)
	require.NoError(t, err)
	return customer
}

func TestNewIDsAreUniqueAndIncreasing(t *testing.T) {
	s, _ := newTestStore(t)

	// The clock is frozen, so every creation lands on the same
	// millisecond and only the watermark keeps ids apart.
	a := addTestCustomer(t, s, "Ahmad", "0944111111")
	b := addTestCustomer(t, s, "Basel", "0944222222")
	c := addTestCustomer(t, s, "Carla", "0944333333")

	require.Less(t, a.ID, b.ID)
	require.Less(t, b.ID, c.ID)
}

func TestLoadRestoresState(t *testing.T) {
	st, err := storage.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	clock := &fakeClock{current: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}

	s := newTestStoreOn(t, st, clock)
	customer := addTestCustomer(t, s, "Ahmad", "0944111111")
	_, err = s.StartSession(StartSessionRequest{
		CustomerID:   customer.ID,
		Minutes:      30,
		PricePerHour: 5000,
	})
	require.NoError(t, err)

	reloaded := newTestStoreOn(t, st, clock)
	require.Len(t, reloaded.Customers(), 1)
	require.Len(t, reloaded.Sessions(), 1)
	require.Len(t, reloaded.ActiveTimers(), 1)
	require.Equal(t, customer, reloaded.Customers()[0])
}
