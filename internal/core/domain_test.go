package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeLine(t *testing.T) {
	l := ComputeLine(d("3"), d("19.99"), d("21"))
	assert.True(t, d("59.97").Equal(l.Net), "net=%s", l.Net)
	assert.True(t, d("12.5937").Equal(l.Tax), "tax=%s", l.Tax)
	assert.True(t, d("72.5637").Equal(l.Total), "total=%s", l.Total)

	zero := ComputeLine(decimal.Zero, d("10"), d("9"))
	assert.True(t, zero.Total.IsZero())
}

func TestSumLines(t *testing.T) {
	lines := []LineAmounts{
		ComputeLine(d("2"), d("50"), d("21")),
		ComputeLine(d("1"), d("100"), d("9")),
		ComputeLine(d("4"), d("2.5"), d("0")),
	}
	tot := SumLines(lines)
	assert.True(t, d("210").Equal(tot.Subtotal), "subtotal=%s", tot.Subtotal)
	assert.True(t, d("30").Equal(tot.TaxTotal), "tax=%s", tot.TaxTotal)
	assert.True(t, d("240").Equal(tot.GrandTotal), "grand=%s", tot.GrandTotal)

	empty := SumLines(nil)
	assert.True(t, empty.GrandTotal.IsZero())
}

func TestTotalsInvariant(t *testing.T) {
	inputs := [][3]string{{"1.5", "3.33", "21"}, {"7", "0.1", "9"}, {"0", "99", "21"}, {"2", "-5", "21"}}
	var lines []LineAmounts
	sub, tax := decimal.Zero, decimal.Zero
	for _, in := range inputs {
		q, p, pct := d(in[0]), d(in[1]), d(in[2])
		lines = append(lines, ComputeLine(q, p, pct))
		net := q.Mul(p)
		sub = sub.Add(net)
		tax = tax.Add(net.Mul(pct).Div(decimal.NewFromInt(100)))
	}
	tot := SumLines(lines)
	assert.True(t, sub.Equal(tot.Subtotal))
	assert.True(t, tax.Equal(tot.TaxTotal))
	assert.True(t, tot.Subtotal.Add(tot.TaxTotal).Equal(tot.GrandTotal))
}

func TestTaxRates(t *testing.T) {
	assert.Len(t, TaxRates, 3)
	assert.True(t, DefaultTaxRate.Equal(TaxRates[0].Percentage))
	assert.Len(t, MonthLabels, MonthsPerYear)
	assert.Equal(t, "Mrt", MonthLabels[2])
}
