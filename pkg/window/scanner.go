// 3 Oct 2026

package window

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andrew-torda/kmerenc/pkg/alphabet"
	"github.com/andrew-torda/kmerenc/pkg/encode"
)

// Token is what a Scanner found.
type Token uint8

const (
	Word    Token = iota // a complete word, get it from Bytes()
	Newline              // a newline in the input
)

// Scanner reads a stream once from start to end and splits it into
// non-overlapping words. A newline throws away any partial word and
// is reported as a token of its own. At the end of input, a partial
// word is dropped without complaint. An invalid byte stops the scanner
// for good.
// The usage pattern is the same as bufio.Scanner.
type Scanner struct {
	rdr    io.ByteReader
	alpha  *alphabet.Alphabet
	word   []byte
	n      int // digits in word so far
	tok    Token
	err    error
	offset int64
}

// NewScanner wraps rdr in a bufio.Reader unless it can already read
// single bytes. Words of length l must fit the alphabet's base.
func NewScanner(rdr io.Reader, a *alphabet.Alphabet, l int) (*Scanner, error) {
	if err := encode.CheckLen(l, a.Base()); err != nil {
		return nil, err
	}
	br, ok := rdr.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(rdr)
	}
	return &Scanner{rdr: br, alpha: a, word: make([]byte, l)}, nil
}

// Scan advances to the next word or newline. It returns false at the
// end of input or on an error. Check Err() to see which.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for {
		c, err := s.rdr.ReadByte()
		if err != nil {
			if err != io.EOF {
				s.err = fmt.Errorf("reading at offset %d: %w", s.offset, err)
			}
			return false
		}
		s.offset++
		code := s.alpha.Lookup(c)
		switch code.Class {
		case alphabet.Invalid:
			s.err = &InvalidCharError{Char: c, Offset: s.offset - 1}
			return false
		case alphabet.Separator:
			s.n = 0
			s.tok = Newline
			return true
		}
		s.word[s.n] = code.Digit
		s.n++
		if s.n == len(s.word) {
			s.n = 0
			s.tok = Word
			return true
		}
	}
}

// Token says what the last successful Scan found.
func (s *Scanner) Token() Token { return s.tok }

// Bytes returns the digits of the last word. The slice is overwritten
// by the next call to Scan.
func (s *Scanner) Bytes() []byte { return s.word }

// Err returns nil after a clean end of input.
func (s *Scanner) Err() error { return s.err }
