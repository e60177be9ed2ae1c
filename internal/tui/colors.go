package tui

// Color constants for the lounge TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#10222B" // Dark teal
	ColorBorder         = "#35505C" // Grey-teal

	// Text Colors
	ColorPrimaryText   = "#E8F0F2" // Primary text (labels, names, titles)
	ColorSecondaryText = "#A9BEC4" // Secondary text - subtle teal-tinted grey
	ColorDisabledText  = "#66777E" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#0D9488" // Accent elements, active borders
	ColorAccentBright = "#5EEAD4" // Highlights, running timers

	// State Colors
	ColorError   = "#EF4444" // Errors, unpaid
	ColorSuccess = "#22C55E" // Success, paid
	ColorWarning = "#F59E0B" // Paused timers
)
