package random

// Sequence is a scripted [Source] that replays a fixed list of draws.
// Each call to IntN consumes the next value and reduces it modulo n, wrapping
// around to the start when the script is exhausted. An empty script always
// draws 0 but still counts each draw.
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a source that replays values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) IntN(n int) int {
	if len(s.values) == 0 {
		s.next++
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Draws reports how many times IntN has been called.
func (s *Sequence) Draws() int { return s.next }
