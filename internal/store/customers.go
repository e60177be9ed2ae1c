package store

import (
	"fmt"
	"strings"

	"github.com/ramikhoury/lounge/internal/models"
)

// AddCustomer registers a new customer with zero credit and today's
// join date.
func (s *Store) AddCustomer(name, phone string) (models.Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return models.Customer{}, validationf("customer name is required")
	}
	if phone == "" {
		return models.Customer{}, validationf("customer phone is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer := models.Customer{
		ID:       s.newID(),
		Name:     name,
		Phone:    phone,
		JoinDate: s.now().Format("2006-01-02"),
		Credit:   0,
	}
	s.customers = append(s.customers, customer)
	return customer, s.persist()
}

// EditCustomer updates a customer's name and phone in place.
func (s *Store) EditCustomer(id int64, name, phone string) (models.Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return models.Customer{}, validationf("customer name is required")
	}
	if phone == "" {
		return models.Customer{}, validationf("customer phone is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.customerIndexLocked(id)
	if idx < 0 {
		return models.Customer{}, fmt.Errorf("customer #%d: %w", id, ErrNotFound)
	}
	s.customers[idx].Name = name
	s.customers[idx].Phone = phone
	return s.customers[idx], s.persist()
}

// DeleteCustomer removes the customer along with every session they
// own and any timer still referencing them.
func (s *Store) DeleteCustomer(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.customerIndexLocked(id)
	if idx < 0 {
		return fmt.Errorf("customer #%d: %w", id, ErrNotFound)
	}
	s.customers = append(s.customers[:idx], s.customers[idx+1:]...)

	kept := s.sessions[:0]
	for _, sess := range s.sessions {
		if sess.CustomerID != id {
			kept = append(kept, sess)
		}
	}
	s.sessions = kept

	for sessionID, t := range s.timers {
		if t.CustomerID == id {
			delete(s.timers, sessionID)
		}
	}
	return s.persist()
}

// GrantCredit adjusts a customer's prepaid minute balance by delta,
// which may be negative. The balance never drops below zero.
func (s *Store) GrantCredit(id int64, delta int64) (models.Customer, error) {
	if delta == 0 {
		return models.Customer{}, validationf("credit adjustment cannot be zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.customerIndexLocked(id)
	if idx < 0 {
		return models.Customer{}, fmt.Errorf("customer #%d: %w", id, ErrNotFound)
	}
	s.customers[idx].Credit += delta
	if s.customers[idx].Credit < 0 {
		s.customers[idx].Credit = 0
	}
	return s.customers[idx], s.persist()
}

// FindCustomer returns the customer with the given id.
func (s *Store) FindCustomer(id int64) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.customerIndexLocked(id)
	if idx < 0 {
		return models.Customer{}, fmt.Errorf("customer #%d: %w", id, ErrNotFound)
	}
	return s.customers[idx], nil
}

// SearchCustomers returns customers whose name or phone contains the
// term, case-insensitively. An empty term matches everyone. Results
// keep insertion order.
func (s *Store) SearchCustomers(term string) []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]models.Customer, len(s.customers))
		copy(out, s.customers)
		return out
	}

	var out []models.Customer
	for _, c := range s.customers {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Phone), term) {
			out = append(out, c)
		}
	}
	return out
}
