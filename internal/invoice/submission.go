package invoice

import (
	"net/url"

	"boekhouding/internal/core"
)

// LineInput is one line as submitted by the browser.
type LineInput struct {
	Description string
	Quantity    string
	Price       string
	TaxPct      string
}

// Amounts coerces the submitted values like Row.Amounts.
func (l LineInput) Amounts() core.LineAmounts {
	return core.ComputeLine(core.ParseLenient(l.Quantity), core.ParseLenient(l.Price), core.ParseLenient(l.TaxPct))
}

// ParseSubmission groups the array-style fields of a submitted form by
// position: the n-th value of every field belongs to the n-th line.
func ParseSubmission(values url.Values) []LineInput {
	cols := map[Role][]string{}
	n := 0
	for _, role := range Roles {
		v := values[role.FieldName()]
		cols[role] = v
		if len(v) > n {
			n = len(v)
		}
	}
	at := func(role Role, i int) string {
		if i < len(cols[role]) {
			return cols[role][i]
		}
		return ""
	}
	lines := make([]LineInput, n)
	for i := range lines {
		lines[i] = LineInput{
			Description: at(RoleDescription, i),
			Quantity:    at(RoleQuantity, i),
			Price:       at(RolePrice, i),
			TaxPct:      at(RoleTax, i),
		}
	}
	return lines
}

// ApplySubmission copies submitted values into the rows in page order.
// Lines beyond the current rows are ignored.
func (f *Form) ApplySubmission(values url.Values) {
	for i, in := range ParseSubmission(values) {
		if i >= len(f.rows) {
			break
		}
		row := f.rows[i]
		for role, v := range map[Role]string{
			RoleDescription: in.Description,
			RoleQuantity:    in.Quantity,
			RolePrice:       in.Price,
			RoleTax:         in.TaxPct,
		} {
			if _, present := values[role.FieldName()]; present {
				row.SetValue(role, v)
			}
		}
	}
}

// SubmissionTotals sums a submitted form without touching any page state.
func SubmissionTotals(values url.Values) core.Totals {
	var totals core.Totals
	for _, l := range ParseSubmission(values) {
		totals = totals.Add(l.Amounts())
	}
	return totals
}
