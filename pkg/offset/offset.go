// 4 Oct 2026

// Package offset draws random byte offsets in a file of known size.
// The generator belongs to the Picker, not to the process, so two
// pickers with the same seed give the same offsets.
package offset

import (
	"fmt"
	"math/rand"
)

// Picker hands out offsets uniformly distributed over [0, size].
// size itself is a legal answer. Reading there gives end of file,
// which callers treat like any other bad spot.
type Picker struct {
	rnd  *rand.Rand
	size int64
}

// New returns a picker for a file of size bytes.
func New(size, seed int64) (*Picker, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative file size %d", size)
	}
	return &Picker{rnd: rand.New(rand.NewSource(seed)), size: size}, nil
}

// Next returns the next offset. Int63n is unbiased, unlike scaling a
// float.
func (p *Picker) Next() int64 { return p.rnd.Int63n(p.size + 1) }

// Size
func (p *Picker) Size() int64 { return p.size }
