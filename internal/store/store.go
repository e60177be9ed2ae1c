package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/ramikhoury/lounge/internal/models"
	"github.com/ramikhoury/lounge/internal/storage"
)

// Store is the single source of truth for customers, sessions and
// active timers. All reads and mutations go through it; every mutating
// operation validates first, applies, then snapshots all three
// collections to storage.
//
// One mutex guards everything: the expiry sweeper runs on its own
// goroutine, so unlike the browser original this port cannot rely on a
// single thread of control.
type Store struct {
	mu      sync.Mutex
	storage *storage.Storage

	customers []models.Customer
	sessions  []models.Session
	timers    map[int64]models.Timer

	now    func() time.Time
	lastID int64
}

// New creates an empty store bound to the given storage. Call Load to
// pull persisted state before use.
func New(st *storage.Storage) *Store {
	return &Store{
		storage: st,
		timers:  make(map[int64]models.Timer),
		now:     time.Now,
	}
}

// Load replaces in-memory state with the persisted snapshots.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := []models.Customer{}
	sessions := []models.Session{}
	timers := map[int64]models.Timer{}

	if err := s.storage.Load(storage.KeyCustomers, &customers); err != nil {
		return err
	}
	if err := s.storage.Load(storage.KeySessions, &sessions); err != nil {
		return err
	}
	if err := s.storage.Load(storage.KeyTimers, &timers); err != nil {
		return err
	}

	s.customers = customers
	s.sessions = sessions
	s.timers = timers
	s.resetIDWatermarkLocked()
	return nil
}

// persist snapshots all three collections. State stays applied in
// memory even when a save fails; the next successful mutation
// re-snapshots everything, so a transient storage failure heals itself.
func (s *Store) persist() error {
	if err := s.storage.Save(storage.KeyCustomers, s.customers); err != nil {
		return fmt.Errorf("persist customers: %w", err)
	}
	if err := s.storage.Save(storage.KeySessions, s.sessions); err != nil {
		return fmt.Errorf("persist sessions: %w", err)
	}
	if err := s.storage.Save(storage.KeyTimers, s.timers); err != nil {
		return fmt.Errorf("persist timers: %w", err)
	}
	return nil
}

// newID hands out epoch-millisecond ids like the original tool, bumped
// past the high-water mark so ids stay unique and strictly increasing
// even when two records are created within the same millisecond.
func (s *Store) newID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) resetIDWatermarkLocked() {
	s.lastID = 0
	for _, c := range s.customers {
		if c.ID > s.lastID {
			s.lastID = c.ID
		}
	}
	for _, sess := range s.sessions {
		if sess.ID > s.lastID {
			s.lastID = sess.ID
		}
	}
}

func (s *Store) customerIndexLocked(id int64) int {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) sessionIndexLocked(id int64) int {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// Customers returns a copy of the customer list in insertion order.
func (s *Store) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Sessions returns a copy of all session records in insertion order.
func (s *Store) Sessions() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// ActiveTimers returns a copy of the timer map keyed by session id.
func (s *Store) ActiveTimers() map[int64]models.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]models.Timer, len(s.timers))
	for id, t := range s.timers {
		out[id] = t
	}
	return out
}
