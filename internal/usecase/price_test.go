package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		text string
		want *float64
	}{
		{"₹12,345.50", floatPtr(12345.50)},
		{"₹ 999", floatPtr(999)},
		{"Now ₹1,23,999 only", floatPtr(123999)},
		{"₹0", floatPtr(0)},
		{"₹499 was ₹799", floatPtr(499)},
		{"N/A", nil},
		{"", nil},
		{"unknown", nil},
		{"12,345", nil},
		{"₹" + strings.Repeat("9", 400), nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ParsePrice(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 0.0001)
		})
	}
}

func TestFormatRupees(t *testing.T) {
	assert.Equal(t, "₹12,345.00", FormatRupees(12345))
	assert.Equal(t, "₹999.50", FormatRupees(999.5))
	assert.Equal(t, "₹1,234,567.89", FormatRupees(1234567.89))
}

func floatPtr(v float64) *float64 {
	return &v
}
