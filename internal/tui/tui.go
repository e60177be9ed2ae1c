package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramikhoury/lounge/internal/config"
	"github.com/ramikhoury/lounge/internal/models"
	"github.com/ramikhoury/lounge/internal/store"
)

// RunCountdown opens the full-screen countdown view for a session.
func RunCountdown(st *store.Store, cfg config.Config, session models.Session, customer models.Customer) error {
	model := NewCountdownModel(st, cfg, session, customer)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Report what happened after the alt screen closes.
	if m, ok := finalModel.(CountdownModel); ok {
		switch {
		case m.banked > 0:
			fmt.Printf("🏦 Banked %d minutes as credit for %s\n", m.banked, customer.Name)
		case m.stopped:
			fmt.Printf("⏹️  Stopped the countdown for session #%d\n", session.ID)
		case m.expired:
			fmt.Printf("⌛ Time is up for %s\n", customer.Name)
		case m.leaving:
			fmt.Printf("💡 Countdown keeps running for %s.\n", customer.Name)
			fmt.Printf("   Use 'lounge watch' to keep an eye on it, or 'lounge stop %d' to end it.\n", session.ID)
		}
	}

	return nil
}

// RunDashboard opens the live customer dashboard.
func RunDashboard(st *store.Store, cfg config.Config) error {
	model := NewDashboardModel(st, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
