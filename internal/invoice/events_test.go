package invoice

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchFiltersByRole(t *testing.T) {
	f := NewInvoiceForm()
	f.Recalculate()

	cases := []struct {
		role  Role
		value string
		recal bool
	}{
		{RolePrice, "100", true},
		{RoleQuantity, "2", true},
		{RoleTax, "9", true},
		{RoleDescription, "Consultancy", false},
	}
	for _, tc := range cases {
		got := f.Dispatch(InputEvent{Row: 0, Role: tc.role, Value: tc.value})
		assert.Equal(t, tc.recal, got, "role %s", tc.role)
		v, _ := f.Rows()[0].Value(tc.role)
		assert.Equal(t, tc.value, v)
	}
	text, _ := f.Output(GrandTotalID)
	assert.Equal(t, "€ 218.00", text)
}

func TestDispatchDescriptionDoesNotRecalculate(t *testing.T) {
	f := NewInvoiceForm()
	row := f.Rows()[0]
	row.SetValue(RolePrice, "50")
	// no recalculation yet: displays still empty
	assert.False(t, f.Dispatch(InputEvent{Row: 0, Role: RoleDescription, Value: "x"}))
	text, _ := f.Output(GrandTotalID)
	assert.Empty(t, text)
}

func TestDispatchUnknownTarget(t *testing.T) {
	f := NewInvoiceForm()
	assert.False(t, f.Dispatch(InputEvent{Row: 7, Role: RolePrice, Value: "1"}))

	bare := New(WithRows(&Row{Index: 0}))
	assert.False(t, bare.Dispatch(InputEvent{Row: 0, Role: RolePrice, Value: "1"}))
}

func TestFieldID(t *testing.T) {
	id := FieldID(12, RoleTax)
	assert.Equal(t, "regel-12-btw", id)

	index, role, ok := ParseFieldID(id)
	require.True(t, ok)
	assert.Equal(t, 12, index)
	assert.Equal(t, RoleTax, role)

	for _, bad := range []string{"", "regel-", "regel-x-btw", "regel-1-korting", "subtotaal", "regel--1-btw"} {
		_, _, ok := ParseFieldID(bad)
		assert.False(t, ok, bad)
	}
}

func TestRoleClassAndRecalculates(t *testing.T) {
	assert.Equal(t, "regel-aantal", RoleQuantity.Class())
	assert.Equal(t, "regel-prijs", RolePrice.Class())
	assert.Equal(t, "regel-btw", RoleTax.Class())
	assert.False(t, RoleDescription.Recalculates())
	assert.True(t, RolePrice.Recalculates())
}

func TestParseSubmission(t *testing.T) {
	values := url.Values{
		"omschrijving[]":      {"Uren", "Reiskosten"},
		"aantal[]":            {"8", "1"},
		"prijs_per_stuk[]":    {"75", "42.50"},
		"btw_percentage[]":    {"21"},
		"grootboekrekening[]": {"8000", "8000"},
	}
	lines := ParseSubmission(values)
	require.Len(t, lines, 2)
	assert.Equal(t, LineInput{Description: "Uren", Quantity: "8", Price: "75", TaxPct: "21"}, lines[0])
	assert.Equal(t, LineInput{Description: "Reiskosten", Quantity: "1", Price: "42.50", TaxPct: ""}, lines[1])

	totals := SubmissionTotals(values)
	assert.True(t, decimal.RequireFromString("642.50").Equal(totals.Subtotal))
	assert.True(t, decimal.RequireFromString("126").Equal(totals.TaxTotal))

	assert.Empty(t, ParseSubmission(url.Values{}))
}

func TestApplySubmission(t *testing.T) {
	f := NewInvoiceForm()
	second, _ := f.AddRow()

	f.ApplySubmission(url.Values{
		"aantal[]":         {"2", "3", "4"},
		"prijs_per_stuk[]": {"10", "20", "30"},
	})
	first := f.Rows()[0]
	q, _ := first.Value(RoleQuantity)
	p, _ := second.Value(RolePrice)
	assert.Equal(t, "2", q)
	assert.Equal(t, "20", p)

	// fields not submitted keep their value
	pct, _ := first.Value(RoleTax)
	assert.Equal(t, "21", pct)
	assert.Equal(t, 2, f.Len())
}
