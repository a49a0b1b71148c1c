package textkit

import "math/rand/v2"

// Source is the randomness a generator consumes. Injected so callers can pin
// a seed and get byte-identical output.
type Source interface {
	IntN(n int) int
}

// NewSource returns a seeded PCG-backed source.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// Pick selects one item uniformly. Empty input is ErrEmptyTemplateSet.
func Pick(src Source, items []string) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyTemplateSet
	}
	return items[src.IntN(len(items))], nil
}

// PickFrom looks up key in t and selects one entry uniformly.
func PickFrom(src Source, t Table, key string) (string, error) {
	items, err := t.Entries(key)
	if err != nil {
		return "", err
	}
	return Pick(src, items)
}

// SeqSource replays a fixed index sequence, wrapping around. Test helper.
type SeqSource struct {
	Seq []int
	pos int
}

func (s *SeqSource) IntN(n int) int {
	if n <= 0 {
		panic("textkit: IntN called with n <= 0")
	}
	if len(s.Seq) == 0 {
		return 0
	}
	v := s.Seq[s.pos%len(s.Seq)] % n
	s.pos++
	return v
}
