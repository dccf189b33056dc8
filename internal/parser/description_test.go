package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		category string
		want     string
	}{
		{"strips symbol amount", "$25 groceries run", "", "groceries run"},
		{"strips worded amount", "25 dollars groceries run", "", "groceries run"},
		{"strips suffix amount", "12€ wine tasting", "", "wine tasting"},
		{"strips bare numbers", "lunch 18 downtown", "", "lunch downtown"},
		{"drops filler words", "i spent money on the lunch", "", "money lunch"},
		{"category fallback", "i paid 50", "Bills & Fees", "Bills & Fees transaction"},
		{"generic fallback", "i paid 50", "", "Voice transaction"},
		{"short remainder falls back", "$5 ok", "", "Voice transaction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanDescription(strings.ToLower(tt.text), tt.category)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanDescription_NeverBlank(t *testing.T) {
	inputs := []string{"", "   ", "50", "$1 a", "i on at the"}
	for _, input := range inputs {
		got := cleanDescription(input, "")
		assert.NotEmpty(t, got, "input %q", input)
		assert.NotEmpty(t, strings.TrimSpace(got), "input %q", input)
	}
}
