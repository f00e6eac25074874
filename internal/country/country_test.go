package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"FR", "France"},
		{"US", "United States"},
		{"GB", "United Kingdom"},
		{"JP", "Japan"},
		// Display overrides instead of official ISO names.
		{"KR", "South Korea"},
		{"RU", "Russia"},
		{"VN", "Vietnam"},
		{"IR", "Iran"},
		{"TW", "Taiwan"},
		// Unknown codes pass through unchanged.
		{"XX", "XX"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.code), tt.code)
	}
}
