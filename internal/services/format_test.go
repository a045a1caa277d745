package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatWon(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{45000, "45,000"},
		{1234567, "1,234,567"},
		{-9500, "-9,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatWon(tt.in))
	}
}
