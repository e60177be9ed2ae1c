package models

// Timer is the live countdown attached to a session. A timer record
// exists only while the countdown is running or paused; stopping,
// banking or natural expiry removes it.
//
// StartTime is a unix timestamp in seconds. While paused, RemainingTime
// holds the frozen remainder; while running it is just the snapshot
// taken at start and the live value is recomputed from StartTime.
type Timer struct {
	CustomerID    int64   `json:"customerId"`
	Duration      float64 `json:"duration"` // seconds
	StartTime     int64   `json:"startTime"`
	RemainingTime float64 `json:"remainingTime"` // seconds, meaningful while paused
	Paused        bool    `json:"paused"`
}
