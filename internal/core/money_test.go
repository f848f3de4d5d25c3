package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in  decimal.Decimal
		out string
	}{
		{decimal.NewFromFloat(1234.5), "€ 1,234.50"},
		{decimal.Zero, "€ 0.00"},
		{decimal.NewFromInt(999), "€ 999.00"},
		{decimal.NewFromInt(1000), "€ 1,000.00"},
		{decimal.NewFromFloat(1234567.891), "€ 1,234,567.89"},
		{decimal.NewFromFloat(0.005), "€ 0.01"}, // half away from zero
		{decimal.NewFromFloat(-1234.5), "€ -1,234.50"},
		{decimal.NewFromInt(100000), "€ 100,000.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, FormatAmount(tc.in), "input %s", tc.in)
	}
}

func TestParseLenient(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"12.5", "12.5"},
		{" 3abc", "3"},
		{"abc", "0"},
		{"", "0"},
		{"-2", "-2"},
		{"+4", "4"},
		{".5", "0.5"},
		{"12.", "12"},
		{"1e3", "1000"},
		{"2.5E1", "25"},
		{"12,5", "12"}, // comma is not a decimal separator for parseFloat
		{"0", "0"},
		{"1e2000000000", "0"},
		{"-1e400", "0"},
		{"1e-2000000000", "0"},
		{"1e300", "1e300"},
	}
	for _, tc := range cases {
		got := ParseLenient(tc.in)
		assert.True(t, decimal.RequireFromString(tc.out).Equal(got), "%q: expected %s, got %s", tc.in, tc.out, got)
	}
}

func TestParseLenientHugeExponentIsCheap(t *testing.T) {
	start := time.Now()
	amounts := ComputeLine(ParseLenient("1e308"), ParseLenient("1e308"), ParseLenient("21"))
	text := FormatAmount(amounts.Total)

	assert.Less(t, time.Since(start), time.Second)
	assert.Less(t, len(text), 1024)
	assert.Equal(t, "€ 0.00", FormatAmount(ParseLenient("1e5000000")))
}
