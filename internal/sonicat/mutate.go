package sonicat

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// alphabet is the set of standard nucleotides. Symbols outside of it
// (ambiguity codes, lowercase bases) survive a deletion outcome untouched.
var alphabet = [4]byte{'A', 'C', 'G', 'T'}

// the four per-base outcomes, in the order their weights are configured
const (
	fateSubstitution = iota
	fateInsertion
	fateDeletion
	fateIdentity
)

// Mutator decides the fate of one nucleotide at a time: keep it, replace
// it, or drop it. Every decision is independent of every other, so the
// only state a Mutator carries is its weights and its random source.
type Mutator struct {
	fate distuv.Categorical
	rng  *rand.Rand
}

// NewMutator builds a Mutator from per-base substitution, insertion and
// deletion rates. The remaining probability mass, 1-s-i-d, is the chance a
// base is kept as-is; rates that leave it negative fail with ErrRateConfig
// before any base is processed. A nil src is seeded from the clock.
func NewMutator(s, i, d float64, src rand.Source) (*Mutator, error) {
	if s < 0 || i < 0 || d < 0 {
		return nil, fmt.Errorf("%w: rates must be >= 0, have s=%v i=%v d=%v", ErrRateConfig, s, i, d)
	}

	identity := 1 - s - i - d
	if identity < 0 {
		return nil, fmt.Errorf("%w: rates sum to %v, must be <= 1", ErrRateConfig, s+i+d)
	}

	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	return &Mutator{
		fate: distuv.NewCategorical([]float64{s, i, d, identity}, src),
		rng:  rand.New(src),
	}, nil
}

// Mutate draws a fate for one base and returns the base to write in its
// place. The bool reports whether anything should be written at all: an
// insertion outcome drops the source base outright. The original tool
// removed the base on insertion without appending a novel one and callers
// depend on its output, so the drop-on-insertion behavior is kept.
func (m *Mutator) Mutate(b byte) (byte, bool) {
	switch int(m.fate.Rand()) {
	case fateSubstitution:
		// drawing the same base again is a valid self-substitution
		return alphabet[m.rng.Intn(len(alphabet))], true
	case fateInsertion:
		return 0, false
	case fateDeletion:
		for x, nt := range alphabet {
			if nt != b {
				continue
			}

			// one of the other three bases
			n := m.rng.Intn(len(alphabet) - 1)
			if n >= x {
				n++
			}
			return alphabet[n], true
		}
		return b, true
	}

	return b, true
}

// MutateSeq applies Mutate to every base of seq in order and returns the
// surviving bases. seq itself is left unmodified.
func (m *Mutator) MutateSeq(seq []byte) []byte {
	out := make([]byte, 0, 2*len(seq))
	for _, b := range seq {
		if nt, ok := m.Mutate(b); ok {
			out = append(out, nt)
		}
	}

	return out
}
