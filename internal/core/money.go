// Package core provides amount formatting, input coercion and invoice line math.
//
// This file contains the currency formatter used for every amount shown on
// the invoice form and the lenient number parsing applied to form input.
package core

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix precedes every formatted amount.
const CurrencyPrefix = "€ "

// leadingNumber matches the numeric prefix a browser's parseFloat would accept.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)

// FormatAmount formats an amount as a euro string with two decimals and a
// comma every three integer digits.
//
// The grouping is a fixed pattern and does not depend on the platform locale.
//
// Examples:
//
//	FormatAmount(decimal.NewFromFloat(1234.5)) -> "€ 1,234.50"
//	FormatAmount(decimal.Zero)                 -> "€ 0.00"
//	FormatAmount(decimal.NewFromInt(-1234567)) -> "€ -1,234,567.00"
func FormatAmount(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	grouped := groupThousands(intPart)
	if neg {
		grouped = "-" + grouped
	}
	return CurrencyPrefix + grouped + "." + fracPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseLenient coerces form input to a decimal the way the invoice form
// always has: the longest numeric prefix is used and anything without one
// (empty, absent, text) becomes zero. The prefix is read as a float64, so
// exponents stay within float range; overflow becomes zero. It never fails.
//
// Examples:
//
//	ParseLenient("12.5")   -> 12.5
//	ParseLenient(" 3abc")  -> 3
//	ParseLenient("abc")    -> 0
//	ParseLenient("")       -> 0
//	ParseLenient("1e2000") -> 0
func ParseLenient(s string) decimal.Decimal {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return decimal.Zero
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
