// 3 Oct 2026

// Package window assembles fixed length words of digits from a stream
// of bytes. Newlines are invisible. They do not count as positions.
// Anything not in the alphabet stops assembly.
//
// There are two ways in.
//  1. An Assembler fills a fixed number of consecutive words from
//     wherever a reader happens to be. This is for random access. If it
//     cannot fill all the words, the caller throws the lot away.
//  2. A Scanner runs through a whole stream once, handing back words
//     and newlines as they arrive.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/andrew-torda/kmerenc/pkg/alphabet"
	"github.com/andrew-torda/kmerenc/pkg/encode"
)

// ErrShort means input ended before the words were complete.
var ErrShort = errors.New("input ended before window was complete")

// InvalidCharError reports a byte which is not in the alphabet.
// Offset counts bytes from where reading started.
type InvalidCharError struct {
	Char   byte
	Offset int64
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character encountered: %q at offset %d", e.Char, e.Offset)
}

// Rejected is true for the errors which only say that this stretch of
// input was no good, as opposed to a failure to read.
func Rejected(err error) bool {
	var ic *InvalidCharError
	return errors.Is(err, ErrShort) || errors.As(err, &ic)
}

// Assembler fills words of length wordLen.
type Assembler struct {
	alpha   *alphabet.Alphabet
	wordLen int
}

// NewAssembler checks that words of length l can later be encoded in
// the alphabet's base.
func NewAssembler(a *alphabet.Alphabet, l int) (*Assembler, error) {
	if err := encode.CheckLen(l, a.Base()); err != nil {
		return nil, err
	}
	return &Assembler{alpha: a, wordLen: l}, nil
}

// NewWords allocates n words, each of the right length, in one lump.
func (a *Assembler) NewWords(n int) [][]byte {
	back := make([]byte, n*a.wordLen)
	words := make([][]byte, n)
	for i := range words {
		words[i] = back[i*a.wordLen : (i+1)*a.wordLen : (i+1)*a.wordLen]
	}
	return words
}

// Fill reads from r and puts digits into words, first to last. Each word
// must have the assembler's word length. It returns the number of complete words.
// On success that is len(words) and err is nil. If an invalid byte or
// end of input comes first, err is an *InvalidCharError or ErrShort and
// the contents of the incomplete word are junk. Any other read error
// is returned wrapped.
// At most len(words) * word length symbols are read, plus newlines.
func (a *Assembler) Fill(r io.ByteReader, words [][]byte) (int, error) {
	var offset int64
	for iw, w := range words {
		for i := 0; i < len(w); {
			c, err := r.ReadByte()
			if err != nil {
				if err == io.EOF {
					return iw, ErrShort
				}
				return iw, fmt.Errorf("filling window: %w", err)
			}
			offset++
			code := a.alpha.Lookup(c)
			switch code.Class {
			case alphabet.Separator:
				continue
			case alphabet.Invalid:
				return iw, &InvalidCharError{Char: c, Offset: offset - 1}
			}
			w[i] = code.Digit
			i++
		}
	}
	return len(words), nil
}
