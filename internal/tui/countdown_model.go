package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ramikhoury/lounge/internal/config"
	"github.com/ramikhoury/lounge/internal/models"
	"github.com/ramikhoury/lounge/internal/store"
)

// CountdownModel is the full-screen countdown for one play session.
type CountdownModel struct {
	width  int
	height int

	store    *store.Store
	cfg      config.Config
	session  models.Session
	customer models.Customer

	// Timer state, refreshed from the store every tick
	remaining float64
	paused    bool

	// Outcome flags read back after the program quits
	banked  int64
	stopped bool
	expired bool
	leaving bool

	notice string
}

// countdownTickMsg is sent every second to refresh the clock
type countdownTickMsg struct{}

// NewCountdownModel creates the countdown model for a freshly started
// session.
func NewCountdownModel(st *store.Store, cfg config.Config, session models.Session, customer models.Customer) CountdownModel {
	m := CountdownModel{
		store:    st,
		cfg:      cfg,
		session:  session,
		customer: customer,
	}
	m.remaining, _ = st.RemainingSeconds(session.ID)
	return m
}

// Init starts the per-second refresh.
func (m CountdownModel) Init() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg{}
	})
}

// Update handles messages
func (m CountdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countdownTickMsg:
		t, ok := m.store.TimerFor(m.session.ID)
		if !ok {
			// Swept (or stopped elsewhere) while we were watching.
			m.expired = true
			return m, tea.Quit
		}
		m.paused = t.Paused
		m.remaining, _ = m.store.RemainingSeconds(m.session.ID)

		return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return countdownTickMsg{}
		})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "p", " ":
			if m.paused {
				if changed, _ := m.store.ResumeTimer(m.session.ID); changed {
					m.paused = false
					m.notice = ""
				}
			} else {
				if changed, _ := m.store.PauseTimer(m.session.ID); changed {
					m.paused = true
				}
			}
			m.remaining, _ = m.store.RemainingSeconds(m.session.ID)
			return m, nil

		case "b":
			minutes, err := m.store.SaveRemainingAsCredit(m.session.ID)
			if errors.Is(err, store.ErrNoTimeRemaining) {
				m.notice = "Less than a minute left - nothing to bank"
				return m, nil
			}
			if err != nil {
				m.notice = err.Error()
				return m, nil
			}
			m.banked = minutes
			return m, tea.Quit

		case "s":
			if changed, _ := m.store.StopTimer(m.session.ID); changed {
				m.stopped = true
			}
			return m, tea.Quit

		case "esc", "q":
			// Leave the countdown running in the background
			m.leaving = true
			return m, tea.Quit

		case "ctrl+c":
			m.leaving = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the countdown screen
func (m CountdownModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	var components []string

	headerText := "⏳  PLAY SESSION  ⏳"
	headerColor := ColorAccentBright
	if m.paused {
		headerText = "⏸  PAUSED  ⏸"
		headerColor = ColorWarning
	}
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(headerColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render(headerText))

	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, nameStyle.Render(m.customer.Name))

	idStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, idStyle.Render(fmt.Sprintf("session #%d", m.session.ID)))

	clockColor := ColorAccentBright
	if m.paused {
		clockColor = ColorWarning
	}
	components = append(components, m.renderBigClock(clockColor))

	var detail string
	if m.session.UsedCredit > 0 {
		detail = fmt.Sprintf("Started %s · %d min from credit",
			m.session.Date.Format("15:04:05"), m.session.UsedCredit)
	} else {
		detail = fmt.Sprintf("Started %s · %.0f %s/h",
			m.session.Date.Format("15:04:05"), m.session.Price, m.cfg.Currency)
	}
	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, detailStyle.Render(detail))

	if m.notice != "" {
		noticeStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Align(lipgloss.Center).
			Width(m.width)
		components = append(components, noticeStyle.Render(m.notice))
	}

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Align(lipgloss.Center, lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panelStyle.Render(content),
		helpBar,
	)
}

// renderBigClock renders the remaining time as ASCII art digits
func (m CountdownModel) renderBigClock(color string) string {
	total := int(m.remaining)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var timeStr string
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	} else {
		timeStr = fmt.Sprintf("%02d:%02d", minutes, seconds)
	}

	var lines [5]strings.Builder
	for _, char := range timeStr {
		art, ok := clockDigits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)

	var rendered []string
	for i := 0; i < 5; i++ {
		line := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width).
			Render(clockStyle.Render(lines[i].String()))
		rendered = append(rendered, line)
	}
	return strings.Join(rendered, "\n")
}

// clockDigits is the 5x5 ASCII art used by the big clock.
var clockDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderHelpBar renders the help bar at the bottom
func (m CountdownModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	pauseLabel := "p pause"
	if m.paused {
		pauseLabel = "p resume"
	}
	helpText := fmt.Sprintf("%s · b bank as credit · s stop · esc/q leave running", pauseLabel)

	return helpStyle.Render(helpText)
}
