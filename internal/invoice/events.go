package invoice

// InputEvent is an input on one of the row fields.
type InputEvent struct {
	Row   int
	Role  Role
	Value string
}

// Dispatch is the single input listener of the container. It writes the
// value into the target input and recalculates when the target is a
// quantity, price or tax field. It reports whether a recalculation ran.
func (f *Form) Dispatch(ev InputEvent) bool {
	row, ok := f.Row(ev.Row)
	if !ok {
		return false
	}
	if !row.SetValue(ev.Role, ev.Value) {
		return false
	}
	if !ev.Role.Recalculates() {
		return false
	}
	f.Recalculate()
	return true
}
