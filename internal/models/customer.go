package models

// Customer is a registered lounge member
type Customer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	JoinDate string `json:"joinDate"` // calendar date of registration, YYYY-MM-DD
	Credit   int64  `json:"credit"`   // prepaid, unredeemed minutes
}
