package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHasThreeTopLevelKeys(t *testing.T) {
	s, _ := newTestStore(t)

	data, err := s.Export()
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "customers")
	assert.Contains(t, doc, "sessions")
	assert.Contains(t, doc, "activeTimers")
}

func TestExportImportRoundTrip(t *testing.T) {
	s, clock := newTestStore(t)
	customer := addTestCustomer(t, s, "Ahmad", "0944111111")
	_, err := s.GrantCredit(customer.ID, 45)
	require.NoError(t, err)
	session, err := s.StartSession(StartSessionRequest{CustomerID: customer.ID, Minutes: 30, UseCredit: true})
	require.NoError(t, err)
	clock.Advance(5 * time.Minute)
	_, err = s.PauseTimer(session.ID)
	require.NoError(t, err)

	customers := s.Customers()
	sessions := s.Sessions()
	timers := s.ActiveTimers()

	data, err := s.Export()
	require.NoError(t, err)

	// Wipe everything, then restore from the export.
	require.NoError(t, s.ClearAll())
	require.Empty(t, s.Customers())

	require.NoError(t, s.Import(data))
	assert.Equal(t, customers, s.Customers())
	assert.Equal(t, sessions, s.Sessions())
	assert.Equal(t, timers, s.ActiveTimers())
}

func TestImportRejectsGarbage(t *testing.T) {
	s, _ := newTestStore(t)
	addTestCustomer(t, s, "Ahmad", "0944111111")

	var ferr *FormatError
	err := s.Import([]byte("{not json"))
	require.ErrorAs(t, err, &ferr)

	// The failed import left state alone.
	assert.Len(t, s.Customers(), 1)
}

func TestImportRejectsMissingKeys(t *testing.T) {
	s, _ := newTestStore(t)
	addTestCustomer(t, s, "Ahmad", "0944111111")

	var ferr *FormatError

	err := s.Import([]byte(`{"customers": [], "activeTimers": {}}`))
	require.ErrorAs(t, err, &ferr)

	err = s.Import([]byte(`{"sessions": [], "activeTimers": {}}`))
	require.ErrorAs(t, err, &ferr)

	err = s.Import([]byte(`{"customers": [], "sessions": []}`))
	require.ErrorAs(t, err, &ferr)

	assert.Len(t, s.Customers(), 1)
}

func TestImportEmptyCollectionsIsValid(t *testing.T) {
	s, _ := newTestStore(t)
	addTestCustomer(t, s, "Ahmad", "0944111111")

	err := s.Import([]byte(`{"customers": [], "sessions": [], "activeTimers": {}}`))
	require.NoError(t, err)
	assert.Empty(t, s.Customers())
	assert.Empty(t, s.Sessions())
	assert.Empty(t, s.ActiveTimers())
}

func TestClearAllSurvivesReload(t *testing.T) {
	s, clock := newTestStore(t)
	customer := addTestCustomer(t, s, "Ahmad", "0944111111")
	startTestSession(t, s, customer.ID, 30)

	require.NoError(t, s.ClearAll())

	reloaded := newTestStoreOn(t, s.storage, clock)
	assert.Empty(t, reloaded.Customers())
	assert.Empty(t, reloaded.Sessions())
	assert.Empty(t, reloaded.ActiveTimers())
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "lounge_data_2026-09-01.json", ExportFilename(now))
}
