// 2 Oct 2026

// Package alphabet maps bytes from flat nucleotide files to the digits
// used by the positional encodings.
// Every byte value falls in one of three classes. Letters of the
// alphabet are symbols with a digit. A newline is a separator. It is
// skipped, not counted and has no digit. Everything else is invalid.
// Lookups go through a fixed 256 entry table, so there is nothing that
// can be indexed out of range. End of file is never a byte. Readers
// report it as an error and callers treat it like an invalid byte.
package alphabet

import (
	"fmt"
)

// Class says what a byte is to us.
type Class uint8

const (
	Invalid   Class = iota // not part of the alphabet, not a separator
	Separator              // newline
	Symbol                 // a letter with a digit value
)

// NL is the only separator.
const NL byte = '\n'

// Code is the result of looking up one byte.
type Code struct {
	Class Class
	Digit uint8 // only meaningful if Class == Symbol
}

// Alphabet is an immutable byte -> Code table. The digit of a letter
// is its position in letters.
type Alphabet struct {
	name    string
	letters []byte // lower case, in digit order
	table   [256]Code
}

// newAlphabet builds the table. Upper and lower case of each letter get
// the same digit.
func newAlphabet(name, letters string) *Alphabet {
	a := &Alphabet{name: name, letters: []byte(letters)}
	a.table[NL] = Code{Class: Separator}
	for i, c := range a.letters {
		a.table[c] = Code{Class: Symbol, Digit: uint8(i)}
		if c >= 'a' && c <= 'z' {
			a.table[c-'a'+'A'] = Code{Class: Symbol, Digit: uint8(i)}
		}
	}
	return a
}

// DNA4 has a, c, g, t with digits 0..3 and is used by the random sampler.
// DNA5 adds the ambiguity code n with digit 4 and is used by the
// streaming encoder.
var (
	DNA4 = newAlphabet("dna4", "acgt")
	DNA5 = newAlphabet("dna5", "acgtn")
)

// Lookup returns the class and digit of c.
func (a *Alphabet) Lookup(c byte) Code { return a.table[c] }

// Valid is true for symbols and the separator.
func (a *Alphabet) Valid(c byte) bool { return a.table[c].Class != Invalid }

// Base is the numeral base of encodings over this alphabet.
func (a *Alphabet) Base() int { return len(a.letters) }

// Letter returns the lower case letter for digit d.
func (a *Alphabet) Letter(d uint8) (byte, error) {
	if int(d) >= len(a.letters) {
		return 0, fmt.Errorf("digit %d not in %s", d, a.name)
	}
	return a.letters[d], nil
}

// String
func (a *Alphabet) String() string { return a.name }
