package models

import "time"

// Session is one timed play session booked for a customer.
//
// Duration is stored in seconds and may carry a fractional component:
// the desk accepts fractional-minute bookings on purpose. UsedCredit is
// the whole prepaid minutes redeemed against this session; it is always
// zero for money-funded sessions.
type Session struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	Date       time.Time `json:"date"`
	Duration   float64   `json:"duration"` // seconds
	Price      float64   `json:"price"`    // hourly rate, zero when credit-funded
	Total      float64   `json:"total"`    // duration/3600 * price
	Notes      string    `json:"notes"`
	UsedCredit int64     `json:"usedCredit"` // minutes funded by credit
	IsPaid     bool      `json:"isPaid"`
}

// Minutes returns the booked length in minutes.
func (s Session) Minutes() float64 {
	return s.Duration / 60
}
