package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ramikhoury/lounge/internal/config"
	"github.com/ramikhoury/lounge/internal/models"
	"github.com/ramikhoury/lounge/internal/store"
)

// DashboardModel is the live front-desk view: searchable customer list
// with running countdowns and timer controls on the selected row.
type DashboardModel struct {
	width  int
	height int

	store *store.Store
	cfg   config.Config

	customers []models.Customer
	selected  int

	search    textinput.Model
	searching bool

	// One-line feedback after a key action
	status string
}

// dashboardTickMsg drives the per-second repaint
type dashboardTickMsg struct{}

// NewDashboardModel creates the dashboard model.
func NewDashboardModel(st *store.Store, cfg config.Config) DashboardModel {
	search := textinput.New()
	search.Placeholder = "name or phone"
	search.CharLimit = 64
	search.Width = 30

	m := DashboardModel{
		store:  st,
		cfg:    cfg,
		search: search,
	}
	m.refresh()
	return m
}

// refresh re-reads the customer list through the current search term.
func (m *DashboardModel) refresh() {
	m.customers = m.store.SearchCustomers(m.search.Value())
	if m.selected >= len(m.customers) {
		m.selected = len(m.customers) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// Init starts the repaint ticker.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return dashboardTickMsg{}
	})
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardTickMsg:
		// The sweeper goroutine expires timers; this just repaints.
		m.refresh()
		return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return dashboardTickMsg{}
		})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.search.Value() != "" {
				m.search.SetValue("")
				m.refresh()
				return m, nil
			}
			return m, tea.Quit

		case "/":
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "j":
			if m.selected < len(m.customers)-1 {
				m.selected++
			}
			return m, nil

		case "p":
			return m.withSelectedTimer("pause", func(sessionID int64) (bool, error) {
				return m.store.PauseTimer(sessionID)
			}), nil

		case "r":
			return m.withSelectedTimer("resume", func(sessionID int64) (bool, error) {
				return m.store.ResumeTimer(sessionID)
			}), nil

		case "s":
			return m.withSelectedTimer("stop", func(sessionID int64) (bool, error) {
				return m.store.StopTimer(sessionID)
			}), nil

		case "b":
			return m.bankSelected(), nil
		}
	}

	return m, nil
}

// handleSearchKeys routes keys while the search box has focus
func (m DashboardModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		if msg.String() == "esc" {
			m.search.SetValue("")
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

// withSelectedTimer runs a timer action against the selected customer's
// countdown and records one line of feedback.
func (m DashboardModel) withSelectedTimer(verb string, fn func(sessionID int64) (bool, error)) DashboardModel {
	if len(m.customers) == 0 {
		return m
	}
	customer := m.customers[m.selected]

	sessionID, _, ok := m.store.CustomerTimer(customer.ID)
	if !ok {
		m.status = fmt.Sprintf("%s has no countdown to %s", customer.Name, verb)
		return m
	}

	changed, err := fn(sessionID)
	switch {
	case err != nil:
		m.status = err.Error()
	case !changed:
		m.status = fmt.Sprintf("nothing to %s for %s", verb, customer.Name)
	default:
		m.status = fmt.Sprintf("%s: %s", verb, customer.Name)
	}
	m.refresh()
	return m
}

// bankSelected saves the selected customer's remaining time as credit.
func (m DashboardModel) bankSelected() DashboardModel {
	if len(m.customers) == 0 {
		return m
	}
	customer := m.customers[m.selected]

	sessionID, _, ok := m.store.CustomerTimer(customer.ID)
	if !ok {
		m.status = fmt.Sprintf("%s has no countdown to bank", customer.Name)
		return m
	}

	minutes, err := m.store.SaveRemainingAsCredit(sessionID)
	if err != nil {
		m.status = err.Error()
		return m
	}
	m.status = fmt.Sprintf("banked %d min for %s", minutes, customer.Name)
	m.refresh()
	return m
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderStatsBar())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderCustomerRows())

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Width(m.width)
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderStatsBar renders the shop totals header
func (m DashboardModel) renderStatsBar() string {
	stats := m.store.Stats()

	text := fmt.Sprintf(" LOUNGE · %d customers · %d sessions · %s %s revenue · %d active ",
		stats.TotalCustomers,
		stats.TotalSessions,
		humanize.CommafWithDigits(stats.TotalRevenue, 0),
		m.cfg.Currency,
		stats.ActiveSessions)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Width(m.width).
		Render(text)
}

// renderSearchBar renders the filter line
func (m DashboardModel) renderSearchBar() string {
	label := "search (/): "
	if m.searching {
		label = "search: "
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	return labelStyle.Render(label) + m.search.View()
}

// renderCustomerRows renders the scrollable customer list
func (m DashboardModel) renderCustomerRows() string {
	if len(m.customers) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("  no customers to show")
	}

	// Rows that fit between header(1) search(2) status(1) help(2)
	visible := m.height - 7
	if visible < 3 {
		visible = 3
	}
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := start + visible
	if end > len(m.customers) {
		end = len(m.customers)
	}

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorCardBackground)).
		Bold(true)
	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))
	runningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	pausedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)).
		Bold(true)

	var rows []string
	for i := start; i < end; i++ {
		customer := m.customers[i]

		timerCol := "          "
		if sessionID, t, ok := m.store.CustomerTimer(customer.ID); ok {
			remaining, _ := m.store.RemainingSeconds(sessionID)
			total := int(remaining)
			display := fmt.Sprintf("%02d:%02d", total/60, total%60)
			if t.Paused {
				timerCol = pausedStyle.Render(fmt.Sprintf("⏸ %s   ", display))
			} else {
				timerCol = runningStyle.Render(fmt.Sprintf("▶ %s   ", display))
			}
		}

		name := customer.Name
		if len(name) > 24 {
			name = name[:21] + "..."
		}

		row := fmt.Sprintf(" %-24s %-14s %4d min  %s", name, customer.Phone, customer.Credit, timerCol)
		if i == m.selected {
			rows = append(rows, selectedStyle.Width(m.width).Render("▸"+row[1:]))
		} else {
			rows = append(rows, normalStyle.Render(row))
		}
	}

	return strings.Join(rows, "\n")
}

// renderHelpBar renders the help bar at the bottom
func (m DashboardModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Width(m.width)

	return helpStyle.Render("↑/↓ select · / search · p pause · r resume · s stop · b bank · q quit")
}
