package invoice

import (
	"boekhouding/internal/core"
)

// Field is one input of a row.
type Field struct {
	Role  Role
	Name  string
	Value string
}

// Row is one invoice line on the page.
type Row struct {
	Index  int
	Fields []Field

	// HasTotal is false for markup without a .regel-totaal element.
	HasTotal  bool
	TotalText string
}

// Value returns the current text of the row's input with the given role.
func (r *Row) Value(role Role) (string, bool) {
	for _, f := range r.Fields {
		if f.Role == role {
			return f.Value, true
		}
	}
	return "", false
}

// SetValue replaces the text of an input; it reports false when the row has no such input.
func (r *Row) SetValue(role Role, value string) bool {
	for i := range r.Fields {
		if r.Fields[i].Role == role {
			r.Fields[i].Value = value
			return true
		}
	}
	return false
}

// Amounts coerces the row's inputs and derives its amounts. Absent or
// non-numeric inputs count as zero.
func (r *Row) Amounts() core.LineAmounts {
	qty, _ := r.Value(RoleQuantity)
	price, _ := r.Value(RolePrice)
	pct, _ := r.Value(RoleTax)
	return core.ComputeLine(core.ParseLenient(qty), core.ParseLenient(price), core.ParseLenient(pct))
}

// Template is the reusable row markup new lines are cloned from.
type Template struct {
	Fields   []Field
	HasTotal bool
}

// DefaultTemplate mirrors the sales invoice row: description, quantity 1,
// empty unit price, 21% VAT and a line total display.
func DefaultTemplate() Template {
	return Template{
		Fields: []Field{
			{Role: RoleDescription, Name: RoleDescription.FieldName()},
			{Role: RoleQuantity, Name: RoleQuantity.FieldName(), Value: "1"},
			{Role: RolePrice, Name: RolePrice.FieldName()},
			{Role: RoleTax, Name: RoleTax.FieldName(), Value: core.DefaultTaxRate.String()},
		},
		HasTotal: true,
	}
}

// Clone copies the template into a new row. Field names are copied as they
// are; the array-style names already group the rows on submit.
func (t Template) Clone(index int) *Row {
	fields := make([]Field, len(t.Fields))
	copy(fields, t.Fields)
	return &Row{
		Index:    index,
		Fields:   fields,
		HasTotal: t.HasTotal,
	}
}
