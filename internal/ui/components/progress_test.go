package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBarView(t *testing.T) {
	tests := []struct {
		name   string
		score  float64
		filled int
	}{
		{"empty", 0, 0},
		{"half", 50, 10},
		{"full", 100, 20},
		{"over", 140, 20},
		{"negative", -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewProgressBar("", 0, tt.score, 20).View()
			assert.Equal(t, tt.filled, strings.Count(view, "█"))
			assert.Equal(t, 20-tt.filled, strings.Count(view, "░"))
		})
	}
}

func TestProgressBarLabel(t *testing.T) {
	view := NewProgressBar("Linear equations in one variable", 12, 72.3, 10).View()
	assert.Contains(t, view, "Linear eq...")
	assert.Contains(t, view, "72.3")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}
