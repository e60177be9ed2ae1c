package store

import "fmt"

// Stats is the shop-wide roll-up shown on the dashboard. All values are
// recomputed on demand; the source collections are small enough that
// caching would buy nothing.
type Stats struct {
	TotalCustomers int
	TotalSessions  int
	TotalRevenue   float64 // sum of totals over paid sessions
	ActiveSessions int     // running (unpaused) timers
}

// Stats derives the shop-wide counters from current state.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		TotalCustomers: len(s.customers),
		TotalSessions:  len(s.sessions),
	}
	for _, sess := range s.sessions {
		if sess.IsPaid {
			st.TotalRevenue += sess.Total
		}
	}
	for _, t := range s.timers {
		if !t.Paused {
			st.ActiveSessions++
		}
	}
	return st
}

// CustomerStats is the per-customer roll-up shown in the sessions view.
type CustomerStats struct {
	TotalMinutes float64
	TotalSpent   float64
	SessionCount int
	Credit       int64
}

// CustomerStats derives one customer's totals across all their
// sessions.
func (s *Store) CustomerStats(customerID int64) (CustomerStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.customerIndexLocked(customerID)
	if idx < 0 {
		return CustomerStats{}, fmt.Errorf("customer #%d: %w", customerID, ErrNotFound)
	}

	cs := CustomerStats{Credit: s.customers[idx].Credit}
	for _, sess := range s.sessions {
		if sess.CustomerID != customerID {
			continue
		}
		cs.TotalMinutes += sess.Minutes()
		cs.TotalSpent += sess.Total
		cs.SessionCount++
	}
	return cs, nil
}
