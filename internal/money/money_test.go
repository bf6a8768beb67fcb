package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Amount
	}{
		{"₹180.00", 18000},
		{"180.00", 18000},
		{"180", 18000},
		{"180.5", 18050},
		{"  ₹60.00 ", 6000},
		{"0.05", 5},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "₹", "abc", "12x.00"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "₹180.00", Amount(18000).String())
	assert.Equal(t, "₹0.05", Amount(5).String())
	assert.Equal(t, "₹378.00", Amount(37800).String())
}

func TestApplyBasisPoints(t *testing.T) {
	// 5% GST on ₹360.00 is exactly ₹18.00.
	assert.Equal(t, Amount(1800), Amount(36000).ApplyBasisPoints(500))
	// Half-up rounding: 5% of ₹0.10 = 0.5 paise -> 1 paisa.
	assert.Equal(t, Amount(1), Amount(10).ApplyBasisPoints(500))
}
