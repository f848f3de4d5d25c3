// Package page wires the invoice form and the dashboard charts to a page
// and runs the page-load pass.
package page

import (
	"context"

	"github.com/samber/lo"

	"boekhouding/internal/dashboard"
	"boekhouding/internal/invoice"
)

// Element sets of the two page layouts.
var (
	DashboardElements = []string{dashboard.RevenueAnchor, dashboard.CashflowAnchor}
	InvoiceElements   = []string{
		invoice.ContainerID,
		invoice.TemplateID,
		invoice.SubtotalID,
		invoice.TaxTotalID,
		invoice.GrandTotalID,
	}
)

// Page is one rendered page and the elements it contains.
type Page struct {
	elements map[string]bool
	Form     *invoice.Form
	Charts   []dashboard.Chart
}

// New creates a page containing the given element ids. The invoice form is
// built from whichever invoice elements are present; a page with a
// container starts with one line at index 0.
func New(ids ...string) *Page {
	p := &Page{elements: make(map[string]bool, len(ids))}
	for _, id := range ids {
		p.elements[id] = true
	}
	p.Form = p.buildForm()
	return p
}

// NewDashboard creates the dashboard page.
func NewDashboard() *Page {
	return New(DashboardElements...)
}

// NewInvoice creates the invoice entry page.
func NewInvoice() *Page {
	return New(InvoiceElements...)
}

// Has reports whether the page contains the element.
func (p *Page) Has(id string) bool {
	return p.elements[id]
}

func (p *Page) buildForm() *invoice.Form {
	if lo.EveryBy(InvoiceElements, p.Has) {
		return invoice.NewInvoiceForm()
	}
	tpl := invoice.DefaultTemplate()
	opts := []invoice.Option{invoice.WithSequence(invoice.NewSequence(1))}
	if p.Has(invoice.ContainerID) {
		opts = append(opts, invoice.WithContainer(), invoice.WithRows(tpl.Clone(0)))
	}
	if p.Has(invoice.TemplateID) {
		opts = append(opts, invoice.WithTemplate(tpl))
	}
	for _, id := range []string{invoice.SubtotalID, invoice.TaxTotalID, invoice.GrandTotalID} {
		if p.Has(id) {
			opts = append(opts, invoice.WithOutputs(id))
		}
	}
	return invoice.New(opts...)
}

// Ready is the page-load pass. A page with the revenue anchor counts as a
// dashboard and loads both charts (the loader skips a missing cashflow
// anchor). The totals are recalculated once on every page.
func (p *Page) Ready(ctx context.Context, loader *dashboard.Loader) {
	if p.Has(dashboard.RevenueAnchor) && loader != nil {
		p.Charts = loader.Load(ctx, p)
	}
	p.Form.Recalculate()
}
