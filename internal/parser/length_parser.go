package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	bareNumberRegex = regexp.MustCompile(`^(\d+(?:\.\d+)?)$`)
	minutesRegex    = regexp.MustCompile(`^(\d+(?:\.\d+)?)m$`)
	hoursRegex      = regexp.MustCompile(`^(\d+(?:\.\d+)?)h$`)
	hoursMinsRegex  = regexp.MustCompile(`^(\d+)h(\d+)m$`)
)

// ParseSessionLength converts a session length string into minutes.
//
// Supported formats:
// - "45" or "7.5" (bare minutes)
// - "90m" (minutes)
// - "1.5h" (hours)
// - "1h30m" (hours and minutes)
//
// Fractional minutes are accepted; the desk books them as-is.
func ParseSessionLength(input string) (float64, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("session length is empty")
	}

	if matches := bareNumberRegex.FindStringSubmatch(input); matches != nil {
		return parsePositive(matches[1], input)
	}
	if matches := minutesRegex.FindStringSubmatch(input); matches != nil {
		return parsePositive(matches[1], input)
	}
	if matches := hoursRegex.FindStringSubmatch(input); matches != nil {
		hours, err := parsePositive(matches[1], input)
		if err != nil {
			return 0, err
		}
		return hours * 60, nil
	}
	if matches := hoursMinsRegex.FindStringSubmatch(input); matches != nil {
		hours, _ := strconv.ParseFloat(matches[1], 64)
		mins, _ := strconv.ParseFloat(matches[2], 64)
		total := hours*60 + mins
		if total <= 0 {
			return 0, fmt.Errorf("session length must be positive, got '%s'", input)
		}
		return total, nil
	}

	return 0, fmt.Errorf("invalid session length '%s' (use formats like: 45, 90m, 1.5h, 1h30m)", input)
}

func parsePositive(number, input string) (float64, error) {
	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid session length '%s'", input)
	}
	if value <= 0 {
		return 0, fmt.Errorf("session length must be positive, got '%s'", input)
	}
	return value, nil
}

// FormatMinutes renders a minute count for display, dropping a trailing
// ".0" for whole values.
func FormatMinutes(minutes float64) string {
	if minutes == float64(int64(minutes)) {
		return fmt.Sprintf("%d min", int64(minutes))
	}
	return fmt.Sprintf("%.1f min", minutes)
}
