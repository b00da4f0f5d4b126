package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUSD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{999.5, "$999.50"},
		{50000, "$50,000.00"},
		{125000, "$125,000.00"},
		{1234567.891, "$1,234,567.89"},
		{-42, "-$42.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, USD(tt.amount), "amount %v", tt.amount)
	}
}
