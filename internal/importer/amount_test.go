package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"-588,74", "-588.74"},
		{"10,00", "10.00"},
		{"12.5", "12.50"},
		{"1,234", "1234.00"},
		{"1,5", "1.50"},
		{"1.234.567,89", "1234567.89"},
		{"1,234,567", "1234567.00"},
		{"1.234.567", "1234567.00"},
		{"€ 42,10", "42.10"},
		{"-12.00 EUR", "-12.00"},
		{"(7,25)", "-7.25"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "EUR", "1,2,3x"} {
		_, err := parseAmount(in)
		assert.Error(t, err, in)
	}
}
