package core

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type (
	// LineAmounts holds the derived amounts of a single invoice line.
	LineAmounts struct {
		Net   decimal.Decimal // quantity × unit price
		Tax   decimal.Decimal // net × tax percentage / 100
		Total decimal.Decimal // net + tax
	}

	// Totals is the aggregate over all lines of an invoice.
	Totals struct {
		Subtotal   decimal.Decimal
		TaxTotal   decimal.Decimal
		GrandTotal decimal.Decimal
	}

	// TaxRate is a selectable VAT percentage.
	TaxRate struct {
		Percentage decimal.Decimal
		Label      string
	}
)

// TaxRates lists the Dutch VAT rates offered on an invoice line.
var TaxRates = []TaxRate{
	{Percentage: decimal.NewFromInt(21), Label: "Hoog tarief (21%)"},
	{Percentage: decimal.NewFromInt(9), Label: "Laag tarief (9%)"},
	{Percentage: decimal.Zero, Label: "Vrijgesteld (0%)"},
}

// DefaultTaxRate is preselected on new lines.
var DefaultTaxRate = decimal.NewFromInt(21)

// ComputeLine derives net, tax and total for one line.
func ComputeLine(quantity, unitPrice, taxPct decimal.Decimal) LineAmounts {
	net := quantity.Mul(unitPrice)
	tax := net.Mul(taxPct).Div(hundred)
	return LineAmounts{
		Net:   net,
		Tax:   tax,
		Total: net.Add(tax),
	}
}

// Add accumulates a line into the totals.
func (t Totals) Add(l LineAmounts) Totals {
	t.Subtotal = t.Subtotal.Add(l.Net)
	t.TaxTotal = t.TaxTotal.Add(l.Tax)
	t.GrandTotal = t.Subtotal.Add(t.TaxTotal)
	return t
}

// SumLines recomputes the totals over all lines from scratch.
func SumLines(lines []LineAmounts) Totals {
	var t Totals
	for _, l := range lines {
		t = t.Add(l)
	}
	return t
}
