package sonicat

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sonicator shears long sequences into short, fully overlapping fragments
// and replicates each fragment to a randomly drawn sequencing depth.
type Sonicator struct {
	depth  distuv.Poisson
	length int

	// count names emitted fragments. It lives as long as the Sonicator so
	// fragment ids stay unique across all input sequences of a run.
	count int
}

// NewSonicator builds a Sonicator emitting fragments of the given length,
// each replicated a Poisson(depth)-distributed number of times. A depth or
// length of zero or less fails with ErrDepthConfig. A nil src is seeded
// from the clock.
func NewSonicator(depth float64, length int, src rand.Source) (*Sonicator, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("%w: average depth must be > 0, have %v", ErrDepthConfig, depth)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: read length must be > 0, have %d", ErrDepthConfig, length)
	}

	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	return &Sonicator{
		depth:  distuv.Poisson{Lambda: depth, Src: src},
		length: length,
	}, nil
}

// windows returns every contiguous slice of seq with the given length, one
// per start offset, left to right. A sequence shorter than length has no
// windows. The returned slices alias seq.
func windows(seq []byte, length int) [][]byte {
	if len(seq) < length {
		return nil
	}

	ws := make([][]byte, 0, len(seq)-length+1)
	for i := 0; i+length <= len(seq); i++ {
		ws = append(ws, seq[i:i+length])
	}

	return ws
}

// Shear slides a fixed-length window across seq and, for each window,
// passes a Poisson-drawn number of copies to emit. Copies of one window are
// emitted consecutively and named seq_<n>, with n increasing by one per
// copy. A window may be emitted zero times. The first error from emit stops
// the shear.
func (s *Sonicator) Shear(seq []byte, emit func(id string, frag []byte) error) error {
	for _, w := range windows(seq, s.length) {
		v := int(s.depth.Rand())
		for j := 0; j < v; j++ {
			s.count++
			if err := emit(fmt.Sprintf("seq_%d", s.count), w); err != nil {
				return err
			}
		}
	}

	return nil
}
