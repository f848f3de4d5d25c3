package http

import (
	"fmt"
	"html/template"

	"github.com/samber/lo"

	"boekhouding/internal/core"
	"boekhouding/internal/dashboard"
	"boekhouding/internal/invoice"
)

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type fieldView struct {
	ID      string
	Name    string
	Class   string
	Value   string
	Numeric bool
	Options []optionView
}

type rowView struct {
	Index     int
	ID        string
	Fields    []fieldView
	HasTotal  bool
	TotalID   string
	TotalText string
	OOB       bool
}

type outputView struct {
	ID    string
	Label string
	Text  string
	OOB   bool
}

var outputLabels = map[string]string{
	invoice.SubtotalID:   "Subtotaal",
	invoice.TaxTotalID:   "BTW",
	invoice.GrandTotalID: "Totaal",
}

type totalsView struct {
	Outputs []outputView
}

type invoicePageView struct {
	Rows        []rowView
	Totals      totalsView
	ContainerID string
	TemplateID  string
}

type chartView struct {
	Anchor string
	Title  string
	Config template.JS
	Error  string
	Table  []dashboard.TableRow
	Heads  [2]string
}

// lineTotalID is the element id of a row's .regel-totaal.
func lineTotalID(index int) string {
	return fmt.Sprintf("regel-%d-totaal", index)
}

func newRowView(r *invoice.Row) rowView {
	v := rowView{
		Index:     r.Index,
		ID:        fmt.Sprintf("regel-%d", r.Index),
		HasTotal:  r.HasTotal,
		TotalID:   lineTotalID(r.Index),
		TotalText: r.TotalText,
	}
	v.Fields = lo.Map(r.Fields, func(f invoice.Field, _ int) fieldView {
		fv := fieldView{
			ID:      invoice.FieldID(r.Index, f.Role),
			Name:    f.Name,
			Class:   f.Role.Class(),
			Value:   f.Value,
			Numeric: f.Role.Recalculates(),
		}
		if f.Role == invoice.RoleTax {
			fv.Options = taxOptions(f.Value)
		}
		return fv
	})
	return v
}

// taxOptions lists the VAT rates with the current value selected. An
// unknown value is kept as an extra option so the submission round trips.
func taxOptions(current string) []optionView {
	cur := core.ParseLenient(current)
	found := false
	opts := lo.Map(core.TaxRates, func(rate core.TaxRate, _ int) optionView {
		sel := !found && current != "" && rate.Percentage.Equal(cur)
		found = found || sel
		return optionView{Value: rate.Percentage.String(), Label: rate.Label, Selected: sel}
	})
	if !found && current != "" {
		opts = append(opts, optionView{Value: current, Label: current + "%", Selected: true})
	}
	return opts
}

// lineTotalsView renders only the total displays of the rows, for
// out-of-band updates after a recalculation.
func lineTotalsView(f *invoice.Form) []rowView {
	return lo.FilterMap(f.Rows(), func(r *invoice.Row, _ int) (rowView, bool) {
		return rowView{TotalID: lineTotalID(r.Index), TotalText: r.TotalText, OOB: true}, r.HasTotal
	})
}

func newTotalsView(f *invoice.Form, oob bool) totalsView {
	var v totalsView
	for _, id := range []string{invoice.SubtotalID, invoice.TaxTotalID, invoice.GrandTotalID} {
		if text, ok := f.Output(id); ok {
			v.Outputs = append(v.Outputs, outputView{ID: id, Label: outputLabels[id], Text: text, OOB: oob})
		}
	}
	return v
}

// totalsFromSubmission renders totals computed from a submitted form alone.
func totalsFromSubmission(t core.Totals) totalsView {
	return totalsView{Outputs: []outputView{
		{ID: invoice.SubtotalID, Text: core.FormatAmount(t.Subtotal), OOB: true},
		{ID: invoice.TaxTotalID, Text: core.FormatAmount(t.TaxTotal), OOB: true},
		{ID: invoice.GrandTotalID, Text: core.FormatAmount(t.GrandTotal), OOB: true},
	}}
}

func newInvoicePageView(f *invoice.Form) invoicePageView {
	return invoicePageView{
		Rows:        lo.Map(f.Rows(), func(r *invoice.Row, _ int) rowView { return newRowView(r) }),
		Totals:      newTotalsView(f, false),
		ContainerID: invoice.ContainerID,
		TemplateID:  invoice.TemplateID,
	}
}

func newChartView(c dashboard.Chart) chartView {
	v := chartView{Anchor: c.Anchor, Title: c.Title}
	if c.Err != nil {
		v.Error = "Grafiek kon niet worden geladen."
		return v
	}
	raw, err := c.Config.JSON()
	if err != nil {
		v.Error = "Grafiek kon niet worden weergegeven."
		return v
	}
	v.Config = template.JS(raw)
	v.Table = dashboard.Table(c.Config)
	for i, ds := range c.Config.Data.Datasets {
		if i < len(v.Heads) {
			v.Heads[i] = ds.Label
		}
	}
	return v
}
