package invoice

import (
	"boekhouding/internal/core"

	"github.com/shopspring/decimal"
)

// Form is the invoice-line part of a page: its rows, the container and
// template used to add rows, and the aggregate outputs.
//
// Any of container, template and outputs may be missing from a page; the
// operations that need them then do nothing.
type Form struct {
	hasContainer bool
	template     *Template
	seq          *Sequence
	rows         []*Row
	outputs      map[string]string
}

// Option configures a Form.
type Option func(*Form)

// WithContainer marks the page as having the #factuur-regels container.
func WithContainer() Option {
	return func(f *Form) { f.hasContainer = true }
}

// WithTemplate provides the #regel-template markup.
func WithTemplate(t Template) Option {
	return func(f *Form) { f.template = &t }
}

// WithSequence sets the index generator used for added rows.
func WithSequence(s *Sequence) Option {
	return func(f *Form) { f.seq = s }
}

// WithOutputs declares which aggregate outputs exist on the page.
func WithOutputs(ids ...string) Option {
	return func(f *Form) {
		for _, id := range ids {
			f.outputs[id] = ""
		}
	}
}

// WithRows places rows on the page before any interaction.
func WithRows(rows ...*Row) Option {
	return func(f *Form) { f.rows = append(f.rows, rows...) }
}

// New builds a form from options. Without WithSequence the first added row gets index 1.
func New(opts ...Option) *Form {
	f := &Form{outputs: make(map[string]string)}
	for _, opt := range opts {
		opt(f)
	}
	if f.seq == nil {
		f.seq = NewSequence(1)
	}
	return f
}

// NewInvoiceForm builds the complete sales invoice form: container,
// default template, all three outputs and the initial row at index 0.
func NewInvoiceForm() *Form {
	tpl := DefaultTemplate()
	return New(
		WithContainer(),
		WithTemplate(tpl),
		WithSequence(NewSequence(1)),
		WithOutputs(SubtotalID, TaxTotalID, GrandTotalID),
		WithRows(tpl.Clone(0)),
	)
}

// Rows returns the current rows in page order.
func (f *Form) Rows() []*Row {
	out := make([]*Row, len(f.rows))
	copy(out, f.rows)
	return out
}

// Len returns the number of rows on the page.
func (f *Form) Len() int {
	return len(f.rows)
}

// Row finds a row by its index.
func (f *Form) Row(index int) (*Row, bool) {
	if i := f.position(index); i >= 0 {
		return f.rows[i], true
	}
	return nil, false
}

// Output returns the text of an aggregate output, if the page has it.
func (f *Form) Output(id string) (string, bool) {
	text, ok := f.outputs[id]
	return text, ok
}

// Recalculate recomputes every line total and the aggregate outputs from
// the current input values. Missing displays are skipped.
func (f *Form) Recalculate() core.Totals {
	var totals core.Totals
	for _, row := range f.rows {
		amounts := row.Amounts()
		if row.HasTotal {
			row.TotalText = core.FormatAmount(amounts.Total)
		}
		totals = totals.Add(amounts)
	}
	f.setOutput(SubtotalID, totals.Subtotal)
	f.setOutput(TaxTotalID, totals.TaxTotal)
	f.setOutput(GrandTotalID, totals.Subtotal.Add(totals.TaxTotal))
	return totals
}

// Totals sums the current rows without touching any display.
func (f *Form) Totals() core.Totals {
	lines := make([]core.LineAmounts, len(f.rows))
	for i, row := range f.rows {
		lines[i] = row.Amounts()
	}
	return core.SumLines(lines)
}

func (f *Form) setOutput(id string, amount decimal.Decimal) {
	if _, ok := f.outputs[id]; ok {
		f.outputs[id] = core.FormatAmount(amount)
	}
}

// AddRow clones the template into a new row with the next index, appends
// it and recalculates. Without a container or template it does nothing.
func (f *Form) AddRow() (*Row, bool) {
	if !f.hasContainer || f.template == nil {
		return nil, false
	}
	row := f.template.Clone(f.seq.Next())
	f.rows = append(f.rows, row)
	f.Recalculate()
	return row, true
}

// RemoveRow removes the row with the given index and recalculates. The last
// remaining row cannot be removed; that and unknown indices are no-ops.
func (f *Form) RemoveRow(index int) bool {
	i := f.position(index)
	if i < 0 || len(f.rows) <= 1 {
		return false
	}
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	f.Recalculate()
	return true
}

func (f *Form) position(index int) int {
	for i, r := range f.rows {
		if r.Index == index {
			return i
		}
	}
	return -1
}
