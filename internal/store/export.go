package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ramikhoury/lounge/internal/models"
	"github.com/ramikhoury/lounge/internal/storage"
)

// exportDocument is the single JSON document the desk exchanges with
// the outside world. Pointer fields let import tell a missing key apart
// from an empty collection.
type exportDocument struct {
	Customers    *[]models.Customer      `json:"customers"`
	Sessions     *[]models.Session       `json:"sessions"`
	ActiveTimers *map[int64]models.Timer `json:"activeTimers"`
}

// Export encodes all state as one pretty-printed JSON document with the
// three top-level keys customers, sessions and activeTimers.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := make([]models.Customer, len(s.customers))
	copy(customers, s.customers)
	sessions := make([]models.Session, len(s.sessions))
	copy(sessions, s.sessions)
	timers := make(map[int64]models.Timer, len(s.timers))
	for id, t := range s.timers {
		timers[id] = t
	}

	doc := exportDocument{
		Customers:    &customers,
		Sessions:     &sessions,
		ActiveTimers: &timers,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportFilename is the conventional name for an export taken now,
// e.g. lounge_data_2026-09-01.json.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("lounge_data_%s.json", now.Format("2006-01-02"))
}

// Import replaces all state with the given document and persists. A
// payload that is not valid JSON or misses any of the three top-level
// keys is rejected as a FormatError with nothing applied.
func (s *Store) Import(data []byte) error {
	var doc exportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return &FormatError{Reason: "not a valid JSON document"}
	}
	if doc.Customers == nil || doc.Sessions == nil || doc.ActiveTimers == nil {
		return &FormatError{Reason: "document must contain customers, sessions and activeTimers"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = *doc.Customers
	s.sessions = *doc.Sessions
	s.timers = *doc.ActiveTimers
	if s.timers == nil {
		s.timers = make(map[int64]models.Timer)
	}
	s.resetIDWatermarkLocked()
	return s.persist()
}

// ClearAll erases the persisted keys and resets in-memory state to
// empty collections.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{storage.KeyCustomers, storage.KeySessions, storage.KeyTimers} {
		if err := s.storage.Delete(key); err != nil {
			return err
		}
	}
	s.customers = []models.Customer{}
	s.sessions = []models.Session{}
	s.timers = make(map[int64]models.Timer)
	s.lastID = 0
	return nil
}
