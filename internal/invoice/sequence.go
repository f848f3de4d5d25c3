package invoice

// Sequence hands out row indices. It only moves forward: indices are never
// reset or reused, also after rows are removed.
//
// A Sequence belongs to one page session and is not safe for concurrent use.
type Sequence struct {
	next int
}

// NewSequence returns a sequence whose first index is start.
func NewSequence(start int) *Sequence {
	return &Sequence{next: start}
}

// Next returns the next index and advances the sequence.
func (s *Sequence) Next() int {
	n := s.next
	s.next++
	return n
}
