// brokenio is a wrapper around an io.ReadCloser which misbehaves on
// request. It is for testing code that reads sequence files.
// Typical use: You get a file pointer or some other reader and write
// reader = brokenio.NewReader(reader) to wrap the old reader.
// Everything then functions as before, except
//   - after SetFailAfter(n), the reader hands out n bytes and then
//     fails with ErrBroken on every call.
//   - after SetProbGarbage(p), each byte is replaced by the garbage
//     byte with probability p. The random numbers come from a seed,
//     so a given seed always breaks the same bytes.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is returned once the reader has been told to fail.
var ErrBroken = errors.New("brokenio: deliberate read failure")

// A BrknRdrClsr is modelled on the various Readers in the standard
// library, but with variables controlling misbehaviour.
// If verbose is true, print out the amount of data when the file is closed.
type BrknRdrClsr struct {
	rdrOrig   io.ReadCloser // Wrapped reader
	failAfter int64         // fail after this many bytes, < 0 never
	probGarb  float32       // probability of swapping a byte for garbage
	garbage   byte
	rnd       *rand.Rand
	nCalled   int
	nByte     int64
	nGarb     int
	verbose   bool
}

// NewReader returns a new Reader - a wrapper around the old one
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdrOrig:   rIn,
		failAfter: -1,
		garbage:   '1',
		rnd:       rand.New(rand.NewSource(1)),
	}
}

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetFailAfter makes reads fail once n bytes have gone through.
// A negative n switches it off.
func (r *BrknRdrClsr) SetFailAfter(n int64) { r.failAfter = n }

// SetProbGarbage sets the probability of any byte being replaced by
// garbage. It must be between zero and 1. We do not check.
func (r *BrknRdrClsr) SetProbGarbage(prob float32) { r.probGarb = prob }

// SetGarbage sets the byte used for trashing and reseeds the random
// number generator.
func (r *BrknRdrClsr) SetGarbage(c byte, seed int64) {
	r.garbage = c
	r.rnd = rand.New(rand.NewSource(seed))
}

// NGarbage says how many bytes have been trashed so far.
func (r *BrknRdrClsr) NGarbage() int { return r.nGarb }

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if int64(len(p)) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += int64(n)
	if r.probGarb > 0 {
		for i := range p[:n] {
			if r.rnd.Float32() < r.probGarb {
				p[i] = r.garbage
				r.nGarb++
			}
		}
	}
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdrOrig.Close()
}
