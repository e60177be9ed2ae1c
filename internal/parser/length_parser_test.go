package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSessionLength(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"45", 45, false},
		{"7.5", 7.5, false},
		{"90m", 90, false},
		{"2.5m", 2.5, false},
		{"1h", 60, false},
		{"1.5h", 90, false},
		{"1h30m", 90, false},
		{"2h05m", 125, false},
		{" 45 ", 45, false},
		{"1H30M", 90, false},
		{"", 0, true},
		{"0", 0, true},
		{"0m", 0, true},
		{"0h0m", 0, true},
		{"-30", 0, true},
		{"abc", 0, true},
		{"1.5h30m", 0, true},
		{"30 m", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSessionLength(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45 min", FormatMinutes(45))
	assert.Equal(t, "90 min", FormatMinutes(90.0))
	assert.Equal(t, "7.5 min", FormatMinutes(7.5))
}
