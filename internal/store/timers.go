package store

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/ramikhoury/lounge/internal/models"
)

// startTimerLocked registers a running countdown for a session. Caller
// holds the lock and persists.
func (s *Store) startTimerLocked(sessionID, customerID int64, durationSeconds float64) {
	s.timers[sessionID] = models.Timer{
		CustomerID:    customerID,
		Duration:      durationSeconds,
		StartTime:     s.now().Unix(),
		RemainingTime: durationSeconds,
		Paused:        false,
	}
}

// StartTimer starts a countdown for a session that has none. Sessions
// started through StartSession get their timer automatically; this
// exists for restarting a countdown on an existing session.
func (s *Store) StartTimer(sessionID, customerID int64, durationSeconds float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timers[sessionID]; ok {
		return validationf("session #%d already has a timer", sessionID)
	}
	s.startTimerLocked(sessionID, customerID, durationSeconds)
	return s.persist()
}

// PauseTimer freezes a running countdown, snapshotting the remaining
// seconds. Pausing an absent or already-paused timer changes nothing;
// the returned bool reports whether a transition happened.
func (s *Store) PauseTimer(sessionID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[sessionID]
	if !ok || t.Paused {
		return false, nil
	}
	t.RemainingTime = s.remainingLocked(t)
	t.Paused = true
	s.timers[sessionID] = t
	return true, s.persist()
}

// ResumeTimer continues a paused countdown from its frozen remainder.
// The start time is rewritten to now minus the already-consumed part so
// the elapsed-time math carries on seamlessly.
func (s *Store) ResumeTimer(sessionID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[sessionID]
	if !ok || !t.Paused {
		return false, nil
	}
	t.StartTime = s.now().Unix() - int64(t.Duration-t.RemainingTime)
	t.Paused = false
	s.timers[sessionID] = t
	return true, s.persist()
}

// StopTimer discards a countdown without touching the session record or
// the customer's credit.
func (s *Store) StopTimer(sessionID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timers[sessionID]; !ok {
		return false, nil
	}
	delete(s.timers, sessionID)
	return true, s.persist()
}

// remainingLocked computes the seconds left on a timer: the frozen
// snapshot while paused, otherwise duration minus elapsed, floored at
// zero.
func (s *Store) remainingLocked(t models.Timer) float64 {
	if t.Paused {
		return t.RemainingTime
	}
	elapsed := float64(s.now().Unix() - t.StartTime)
	return math.Max(0, t.Duration-elapsed)
}

// RemainingSeconds reports the live remaining time for a session's
// timer. The bool is false when no timer exists.
func (s *Store) RemainingSeconds(sessionID int64) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[sessionID]
	if !ok {
		return 0, false
	}
	return s.remainingLocked(t), true
}

// TimerFor returns the timer record attached to a session, if any.
func (s *Store) TimerFor(sessionID int64) (models.Timer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[sessionID]
	return t, ok
}

// CustomerTimer finds a customer's timer. The workflow keeps at most
// one per customer; if the convention was bypassed this returns an
// arbitrary one of them.
func (s *Store) CustomerTimer(customerID int64) (int64, models.Timer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sessionID, t := range s.timers {
		if t.CustomerID == customerID {
			return sessionID, t, true
		}
	}
	return 0, models.Timer{}, false
}

// SweepExpired removes running timers whose remaining time has reached
// zero and returns how many expired. Paused timers do not tick down and
// are exempt. Nothing is persisted when no timer expired.
func (s *Store) SweepExpired() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for sessionID, t := range s.timers {
		if t.Paused {
			continue
		}
		if s.remainingLocked(t) <= 0 {
			delete(s.timers, sessionID)
			expired++
		}
	}
	if expired == 0 {
		return 0, nil
	}
	return expired, s.persist()
}

// RunSweeper drives the expiry sweep on a fixed cadence until ctx is
// done. Expiry is observed up to one interval late; that staleness is
// an accepted bound, not a bug.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.SweepExpired()
			if err != nil {
				log.Warn("expiry sweep could not persist", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("timers expired", zap.Int("count", n))
			}
		}
	}
}
