package dashboard

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"boekhouding/internal/core"
)

// TickLabel formats an axis value the way the chart ticks show it:
// "€ " followed by the number with Dutch grouping, at most three decimals.
// Unlike core.FormatAmount the grouping follows the nl-NL locale.
func TickLabel(v float64) string {
	return core.CurrencyPrefix + message.NewPrinter(language.Dutch).Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// TableRow is one month of a chart in text form.
type TableRow struct {
	Month string
	A, B  string
}

// Table renders a chart's two datasets as month rows, for the text fallback under the canvas.
func Table(c Config) []TableRow {
	rows := make([]TableRow, 0, len(c.Data.Labels))
	for i, label := range c.Data.Labels {
		row := TableRow{Month: label}
		if len(c.Data.Datasets) > 0 && i < len(c.Data.Datasets[0].Data) {
			row.A = TickLabel(c.Data.Datasets[0].Data[i])
		}
		if len(c.Data.Datasets) > 1 && i < len(c.Data.Datasets[1].Data) {
			row.B = TickLabel(c.Data.Datasets[1].Data[i])
		}
		rows = append(rows, row)
	}
	return rows
}
