// Package invoice models the dynamic invoice-line form: the rows on the
// page, the template new rows are cloned from, the aggregate outputs and the
// recalculation that keeps them in sync.
//
// The model stands in for the browser document. All values are read fresh
// from it on every pass; nothing is cached between recalculations.
package invoice

import (
	"fmt"
	"strconv"
	"strings"
)

// Element identifiers and classes shared with the page markup.
const (
	ContainerID    = "factuur-regels"
	TemplateID     = "regel-template"
	RowClass       = "factuur-regel"
	LineTotalClass = "regel-totaal"
	SubtotalID     = "subtotaal"
	TaxTotalID     = "btw-totaal"
	GrandTotalID   = "totaal"
)

// Role identifies what an input does within an invoice line.
type Role string

const (
	RoleDescription Role = "omschrijving"
	RoleQuantity    Role = "aantal"
	RolePrice       Role = "prijs"
	RoleTax         Role = "btw"
)

// Roles lists the line inputs in display order.
var Roles = []Role{RoleDescription, RoleQuantity, RolePrice, RoleTax}

var fieldNames = map[Role]string{
	RoleDescription: "omschrijving[]",
	RoleQuantity:    "aantal[]",
	RolePrice:       "prijs_per_stuk[]",
	RoleTax:         "btw_percentage[]",
}

// Class returns the CSS class carried by inputs of this role.
func (r Role) Class() string {
	return "regel-" + string(r)
}

// FieldName returns the array-style form name shared by this input on every row.
func (r Role) FieldName() string {
	return fieldNames[r]
}

// Recalculates reports whether input on this role changes the totals.
func (r Role) Recalculates() bool {
	switch r {
	case RoleQuantity, RolePrice, RoleTax:
		return true
	default:
		return false
	}
}

// ParseRole maps a role name to a Role.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// FieldID returns the element id of a row input, e.g. "regel-3-aantal".
func FieldID(index int, role Role) string {
	return fmt.Sprintf("regel-%d-%s", index, role)
}

// ParseFieldID is the inverse of FieldID.
func ParseFieldID(id string) (index int, role Role, ok bool) {
	rest, found := strings.CutPrefix(id, "regel-")
	if !found {
		return 0, "", false
	}
	idx, name, found := strings.Cut(rest, "-")
	if !found {
		return 0, "", false
	}
	index, err := strconv.Atoi(idx)
	if err != nil || index < 0 {
		return 0, "", false
	}
	role, ok = ParseRole(name)
	if !ok {
		return 0, "", false
	}
	return index, role, true
}
