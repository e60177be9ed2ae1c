package store

import (
	"fmt"
	"math"
	"sort"

	"github.com/ramikhoury/lounge/internal/models"
)

// StartSessionRequest holds the data needed to open a play session.
type StartSessionRequest struct {
	CustomerID   int64
	Minutes      float64 // may be fractional for money-funded sessions
	PricePerHour float64
	UseCredit    bool
	Notes        string
	IsPaid       bool
}

// StartSession creates a session for a customer and immediately starts
// its countdown timer.
//
// Credit-funded sessions redeem whole prepaid minutes: the price is
// forced to zero and floor(minutes) is debited from the customer's
// balance. Money-funded sessions cost duration/3600 * hourly price.
func (s *Store) StartSession(req StartSessionRequest) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.customerIndexLocked(req.CustomerID)
	if idx < 0 {
		return models.Session{}, validationf("customer #%d does not exist", req.CustomerID)
	}
	if req.Minutes <= 0 {
		return models.Session{}, validationf("session length must be positive")
	}
	if req.PricePerHour < 0 {
		return models.Session{}, validationf("hourly price cannot be negative")
	}

	price := req.PricePerHour
	var usedCredit int64
	if req.UseCredit {
		usedCredit = int64(math.Floor(req.Minutes))
		if usedCredit <= 0 {
			return models.Session{}, validationf("credit sessions need at least one whole minute")
		}
		if usedCredit > s.customers[idx].Credit {
			return models.Session{}, validationf(
				"customer #%d has %d credit minutes, %d requested",
				req.CustomerID, s.customers[idx].Credit, usedCredit)
		}
		price = 0
	}

	session := models.Session{
		ID:         s.newID(),
		CustomerID: req.CustomerID,
		Date:       s.now(),
		Duration:   req.Minutes * 60,
		Price:      price,
		Total:      req.Minutes / 60 * price,
		Notes:      req.Notes,
		UsedCredit: usedCredit,
		IsPaid:     req.IsPaid,
	}

	if usedCredit > 0 {
		s.customers[idx].Credit -= usedCredit
		if s.customers[idx].Credit < 0 {
			s.customers[idx].Credit = 0
		}
	}

	s.sessions = append(s.sessions, session)
	s.startTimerLocked(session.ID, session.CustomerID, session.Duration)
	return session, s.persist()
}

// TogglePayment flips a session's paid flag.
func (s *Store) TogglePayment(sessionID int64) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sessionIndexLocked(sessionID)
	if idx < 0 {
		return models.Session{}, fmt.Errorf("session #%d: %w", sessionID, ErrNotFound)
	}
	s.sessions[idx].IsPaid = !s.sessions[idx].IsPaid
	return s.sessions[idx], s.persist()
}

// DeleteSession removes a session and its timer. Credit-funded minutes
// flow back to the owning customer; when the owner is already gone the
// refund is silently skipped. Returns the refunded minutes.
func (s *Store) DeleteSession(sessionID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sessionIndexLocked(sessionID)
	if idx < 0 {
		return 0, fmt.Errorf("session #%d: %w", sessionID, ErrNotFound)
	}
	session := s.sessions[idx]

	var refunded int64
	if session.UsedCredit > 0 {
		if ci := s.customerIndexLocked(session.CustomerID); ci >= 0 {
			s.customers[ci].Credit += session.UsedCredit
			refunded = session.UsedCredit
		}
	}

	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)
	delete(s.timers, sessionID)
	return refunded, s.persist()
}

// FindSession returns the session with the given id.
func (s *Store) FindSession(sessionID int64) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sessionIndexLocked(sessionID)
	if idx < 0 {
		return models.Session{}, fmt.Errorf("session #%d: %w", sessionID, ErrNotFound)
	}
	return s.sessions[idx], nil
}

// SaveRemainingAsCredit banks the whole minutes left on a session's
// timer onto the owning customer and removes the timer. The session
// record itself is untouched; it simply has no countdown anymore.
func (s *Store) SaveRemainingAsCredit(sessionID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[sessionID]
	if !ok {
		return 0, fmt.Errorf("timer for session #%d: %w", sessionID, ErrNotFound)
	}
	minutes := int64(math.Floor(s.remainingLocked(t) / 60))
	if minutes <= 0 {
		return 0, ErrNoTimeRemaining
	}

	ci := s.customerIndexLocked(t.CustomerID)
	if ci < 0 {
		// Cascading deletes remove a customer's timers with them, so a
		// dangling owner means corrupted data. Refuse rather than lose
		// the minutes.
		return 0, fmt.Errorf("customer #%d: %w", t.CustomerID, ErrNotFound)
	}

	s.customers[ci].Credit += minutes
	delete(s.timers, sessionID)
	return minutes, s.persist()
}

// DaySessions groups one calendar day's sessions for display.
type DaySessions struct {
	Date     string // YYYY-MM-DD
	Sessions []models.Session
}

// SessionsByDay returns a customer's sessions grouped by calendar day,
// newest day first and newest session first within each day.
func (s *Store) SessionsByDay(customerID int64) []DaySessions {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sessions []models.Session
	for _, sess := range s.sessions {
		if sess.CustomerID == customerID {
			sessions = append(sessions, sess)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})

	var days []DaySessions
	byDate := map[string]int{}
	for _, sess := range sessions {
		day := sess.Date.Format("2006-01-02")
		if i, ok := byDate[day]; ok {
			days[i].Sessions = append(days[i].Sessions, sess)
			continue
		}
		byDate[day] = len(days)
		days = append(days, DaySessions{Date: day, Sessions: []models.Session{sess}})
	}
	return days
}
