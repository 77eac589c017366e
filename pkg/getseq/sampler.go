// 5 Oct 2026

package getseq

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/andrew-torda/kmerenc/pkg/offset"
	"github.com/andrew-torda/kmerenc/pkg/window"
)

// ErrTooManyTries comes back if an attempt cap was set and reached.
var ErrTooManyTries = errors.New("too many rejected offsets")

// Source is what we sample from. mapfile.File is one, so are
// bytes.Reader and strings.Reader.
type Source interface {
	io.ReadSeeker
	io.ByteReader
}

// Sampler draws sequences of nWords consecutive words from random
// offsets in a source of known size.
// A try goes
//   seek to offset -> read word 1 .. word n -> done
// and any invalid byte or end of file on the way means the whole try is
// thrown away. Nothing is remembered from one try to the next, so the
// same spot may well be drawn again.
type Sampler struct {
	src    Source
	picker *offset.Picker
	asm    *window.Assembler
	words  [][]byte
	nTry   int // total tries
	nRej   int // rejected tries
}

// NewSampler owns a freshly seeded picker. size must be the size of src.
func NewSampler(src Source, size int64, asm *window.Assembler, nWords int, seed int64) (*Sampler, error) {
	if nWords < 1 {
		return nil, fmt.Errorf("words per sequence %d, must be at least 1", nWords)
	}
	picker, err := offset.New(size, seed)
	if err != nil {
		return nil, err
	}
	s := &Sampler{
		src:    src,
		picker: picker,
		asm:    asm,
		words:  asm.NewWords(nWords),
	}
	return s, nil
}

// try makes one attempt at the given offset. ok is false if the
// stretch was no good. err is only set for real failures.
func (s *Sampler) try(off int64) (ok bool, err error) {
	s.nTry++
	if _, err = s.src.Seek(off, io.SeekStart); err != nil {
		return false, fmt.Errorf("seek to %d: %w", off, err)
	}
	n, err := s.asm.Fill(s.src, s.words)
	if err == nil {
		return true, nil
	}
	if !window.Rejected(err) {
		return false, err
	}
	s.nRej++
	log.Debugf("offset %d rejected after %d words: %v", off, n, err)
	return false, nil
}

// Next returns the next good sequence. It draws offsets until one
// works. If maxTries is more than zero, it gives up after that many
// consecutive rejections. Without a cap, input with no stretch of
// valid text long enough means Next never returns.
// The returned words are overwritten by the next call.
func (s *Sampler) Next(maxTries int) ([][]byte, error) {
	for i := 0; maxTries <= 0 || i < maxTries; i++ {
		off := s.picker.Next()
		if ok, err := s.try(off); err != nil {
			return nil, err
		} else if ok {
			return s.words, nil
		}
	}
	return nil, fmt.Errorf("%w: %d in a row", ErrTooManyTries, maxTries)
}

// Stats returns how many tries have been made and how many rejected.
func (s *Sampler) Stats() (tries, rejected int) { return s.nTry, s.nRej }
