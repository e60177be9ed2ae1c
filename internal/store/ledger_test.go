package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSessionForMoney(t *testing.T) {
	s, _ := newTestStore(t)
	customer := addTestCustomer(t, s, "Ahmad", "0944111111")

	session, err := s.StartSession(StartSessionRequest{
		CustomerID:   customer.ID,
		Minutes:      90,
		PricePerHour: 6000,
		Notes:        "console 3",
	})
	require.NoError(t, err)

	assert.Equal(t, customer.ID, session.CustomerID)
	assert.Equal(t, float64(90*60), session.Duration)
	assert.Equal(t, float64(6000), session.Price)
	assert.Equal(t, float64(9000), session.Total)
	assert.Equal(t, int64(0), session.UsedCredit)
	assert.False(t, session.IsPaid)
	assert.Equal(t, "console 3", session.Notes)

	// Starting a session also starts its countdown.
	timer, ok := s.TimerFor(session.ID)
	require.True(t, ok)
	assert.Equal(t, customer.ID, timer.CustomerID)
	assert.Equal(t, float64(90*60), timer.Duration)
	assert.False(t, timer.Paused)
}

func TestStartSessionFromCredit(t *testing.T) {
	s, _ := newTestStore(t)
	customer := addTestCustomer(t, s, "Ahmad", "0944111111")
	_, err := s.GrantCredit(customer.ID, 30)
	require.NoError(t, err)

	session, err := s.StartSession(StartSessionRequest{
		CustomerID:   customer.ID,
		Minutes:      20,
		PricePerHour: 5000, // ignored for credit sessions
		UseCredit:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20), session.UsedCredit)
	assert.Equal(t, float64(0), session.Price)
	assert.Equal(t, float64(0), session.Total)

	updated, err := s.FindCustomer(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), updated.Credit)
}

func TestStartSessionValidation(t *testing.T) {
	s, _ := newTestStore(t)
	customer := addTestCustomer(t, s, "Ahmad", "0944111111")

	var verr *ValidationError

	_, err := s.StartSession(StartSessionRequest{CustomerID: customer.ID + 1, Minutes: 30, PricePerHour: 5000})
	assert.ErrorAs(t, err, &verr)

	_, err = s.StartSession(StartSessionRequest{CustomerID: customer.ID, Minutes: 0, PricePerHour: 5000})
	assert.ErrorAs(t, err, &verr)

	_, err = s.StartSession(StartSessionRequest{CustomerID: customer.ID, Minutes: 30, PricePerHour: -1})
	assert.ErrorAs(t, err, &verr)

	// No credit balance to draw from.
	_, err = s.StartSession(StartSessionRequest{CustomerID: customer.ID, Minutes: 30, UseCredit: true})
	assert.ErrorAs(t, err, &verr)

	// Sub-minute credit sessions round down to zero minutes.
	_, err = s.GrantCredit(customer.ID, 10)
	require.NoError(t, err)
	_, err = s.StartSession(StartSessionRequest{CustomerID: customer.ID, Minutes: 0.5, UseCredit: true})
	assert.ErrorAs(t, err, &verr)

	assert.Empty(t, s.Sessions())
	assert.Empty(t, s.ActiveTimers())
}

func TestTogglePayment(t *testing.T) {
	s, _ := newTestStore(t)
	customer := addTestCustomer(t, s, "Ahmad", "0944111111")
	session, err := s.StartSession(StartSessionRequest{CustomerID: customer.ID, Minutes: 60, PricePerHour: 5000})
	require.NoError(t, err)

	toggled, err := s.TogglePayment(session.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsPaid)

	toggled, err = s.TogglePayment(session.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsPaid)

	_, err = s.TogglePayment(session.ID + 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSessionRefundsCredit(t *testing.T) {
	s, _ := newTestStore(t)
	customer := addTestCustomer(t, s, "Ahmad", "0944111111")
	_, err := s.GrantCredit(customer.ID, 30)
	require.NoError(t, err)

	session, err := s.StartSession(StartSessionRequest{CustomerID: customer.ID, Minutes: 20, UseCredit: true})
	require.NoError(t, err)

	refunded, err := s.DeleteSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), refunded)

	updated, err := s.FindCustomer(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), updated.Credit)

	assert.Empty(t, s.Sessions())
	assert.Empty(t, s.ActiveTimers())

	_, err = s.DeleteSession(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSessionWithoutOwnerSkipsRefund(t *testing.T) {
	s, _ := newTestStore(t)

	// A session whose customer no longer exists can only come in through
	// an import.
	doc := []byte(`{
		"customers": [],
		"sessions": [{
			"id": 100,
			"customerId": 999,
			"date": "2026-08-30T10:00:00Z",
			"duration": 1200,
			"price": 0,
			"total": 0,
			"notes": "",
			"usedCredit": 20,
			"isPaid": false
		}],
		"activeTimers": {}
	}`)
	require.NoError(t, s.Import(doc))

	refunded, err := s.DeleteSession(100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), refunded)
	assert.Empty(t, s.Sessions())
}

func TestSaveRemainingAsCredit(t *testing.T) {
	s, clock := newTestStore(t)
	customer := addTestCustomer(t, s, "Ahmad", "0944111111")
	session, err := s.StartSession(StartSessionRequest{CustomerID: customer.ID, Minutes: 30, PricePerHour: 5000})
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)

	minutes, err := s.SaveRemainingAsCredit(session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), minutes)

	updated, err := s.FindCustomer(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), updated.Credit)

	// The countdown is gone but the session record stays.
	_, ok := s.TimerFor(session.ID)
	assert.False(t, ok)
	_, err = s.FindSession(session.ID)
	assert.NoError(t, err)
}

func TestSaveRemainingAsCreditNeedsAWholeMinute(t *testing.T) {
	s, clock := newTestStore(t)
	customer := addTestCustomer(t, s, "Ahmad", "0944111111")
	session, err := s.StartSession(StartSessionRequest{CustomerID: customer.ID, Minutes: 1, PricePerHour: 5000})
	require.NoError(t, err)

	clock.Advance(30 * time.Second)

	_, err = s.SaveRemainingAsCredit(session.ID)
	assert.ErrorIs(t, err, ErrNoTimeRemaining)

	// Nothing was banked and the timer keeps running.
	updated, err := s.FindCustomer(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Credit)
	_, ok := s.TimerFor(session.ID)
	assert.True(t, ok)

	_, err = s.SaveRemainingAsCredit(session.ID + 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionsByDay(t *testing.T) {
	s, clock := newTestStore(t)
	customer := addTestCustomer(t, s, "Ahmad", "0944111111")
	other := addTestCustomer(t, s, "Basel", "0955222222")

	first, err := s.StartSession(StartSessionRequest{CustomerID: customer.ID, Minutes: 30, PricePerHour: 5000})
	require.NoError(t, err)
	clock.Advance(2 * time.Hour)
	second, err := s.StartSession(StartSessionRequest{CustomerID: customer.ID, Minutes: 45, PricePerHour: 5000})
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	third, err := s.StartSession(StartSessionRequest{CustomerID: customer.ID, Minutes: 60, PricePerHour: 5000})
	require.NoError(t, err)

	_, err = s.StartSession(StartSessionRequest{CustomerID: other.ID, Minutes: 15, PricePerHour: 5000})
	require.NoError(t, err)

	days := s.SessionsByDay(customer.ID)
	require.Len(t, days, 2)

	assert.Equal(t, "2026-09-02", days[0].Date)
	require.Len(t, days[0].Sessions, 1)
	assert.Equal(t, third.ID, days[0].Sessions[0].ID)

	assert.Equal(t, "2026-09-01", days[1].Date)
	require.Len(t, days[1].Sessions, 2)
	assert.Equal(t, second.ID, days[1].Sessions[0].ID)
	assert.Equal(t, first.ID, days[1].Sessions[1].ID)

	assert.Empty(t, s.SessionsByDay(customer.ID+other.ID))
}
