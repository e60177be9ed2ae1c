package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Equal(t, Stats{}, s.Stats())

	ahmad := addTestCustomer(t, s, "Ahmad", "0944111111")
	basel := addTestCustomer(t, s, "Basel", "0955222222")

	paid, err := s.StartSession(StartSessionRequest{CustomerID: ahmad.ID, Minutes: 60, PricePerHour: 5000, IsPaid: true})
	require.NoError(t, err)
	unpaid, err := s.StartSession(StartSessionRequest{CustomerID: basel.ID, Minutes: 30, PricePerHour: 4000})
	require.NoError(t, err)

	_, err = s.PauseTimer(unpaid.ID)
	require.NoError(t, err)

	st := s.Stats()
	assert.Equal(t, 2, st.TotalCustomers)
	assert.Equal(t, 2, st.TotalSessions)
	// Only paid sessions count as revenue, only running timers as active.
	assert.Equal(t, float64(5000), st.TotalRevenue)
	assert.Equal(t, 1, st.ActiveSessions)

	_, err = s.TogglePayment(unpaid.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(7000), s.Stats().TotalRevenue)

	_, err = s.TogglePayment(paid.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(2000), s.Stats().TotalRevenue)
}

func TestCustomerStats(t *testing.T) {
	s, _ := newTestStore(t)
	ahmad := addTestCustomer(t, s, "Ahmad", "0944111111")
	basel := addTestCustomer(t, s, "Basel", "0955222222")

	_, err := s.GrantCredit(ahmad.ID, 50)
	require.NoError(t, err)

	_, err = s.StartSession(StartSessionRequest{CustomerID: ahmad.ID, Minutes: 60, PricePerHour: 5000, IsPaid: true})
	require.NoError(t, err)
	_, err = s.StartSession(StartSessionRequest{CustomerID: ahmad.ID, Minutes: 30, UseCredit: true})
	require.NoError(t, err)
	_, err = s.StartSession(StartSessionRequest{CustomerID: basel.ID, Minutes: 15, PricePerHour: 4000})
	require.NoError(t, err)

	cs, err := s.CustomerStats(ahmad.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(90), cs.TotalMinutes)
	assert.Equal(t, float64(5000), cs.TotalSpent)
	assert.Equal(t, 2, cs.SessionCount)
	assert.Equal(t, int64(20), cs.Credit)

	_, err = s.CustomerStats(ahmad.ID + basel.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
