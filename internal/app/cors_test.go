package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	patterns := []string{"tools.meritlives.com", "*.meritlives.dev", "localhost:*"}

	tests := []struct {
		origin string
		want   bool
	}{
		{"https://tools.meritlives.com", true},
		{"https://app.meritlives.dev", true},
		{"http://localhost:5173", true},
		{"tools.meritlives.com", true},
		{"https://evil.com", false},
		{"https://meritlives.com.evil.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.Equal(t, tt.want, originAllowed(patterns, tt.origin))
		})
	}
}
