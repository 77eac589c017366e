// 2 Oct 2026

// Package encode turns words of digits into integers in a positional
// numeral system and back again. The first digit of a word is the most
// significant, so for base 4
//     value = d[0]*4^(L-1) + ... + d[L-2]*4 + d[L-1]
// Values always lie in [0, base^L). We work with uint64, so L may not
// exceed MaxLen(base).
package encode

import (
	"fmt"
	"math/bits"
)

// MaxLen returns the longest word length whose encodings all fit
// in a uint64. 32 for base 4, 27 for base 5.
func MaxLen(base int) int {
	if base < 2 {
		return 0
	}
	n := 0
	p := uint64(1)
	for {
		hi, lo := bits.Mul64(p, uint64(base))
		if hi > 1 || (hi == 1 && lo != 0) {
			return n
		}
		n++
		if hi == 1 { // exactly 2^64, the largest value is 2^64 - 1
			return n
		}
		p = lo
	}
}

// CheckLen returns an error if words of length l cannot be encoded
// in the given base.
func CheckLen(l, base int) error {
	if l < 1 {
		return fmt.Errorf("word length %d, must be at least 1", l)
	}
	if mx := MaxLen(base); l > mx {
		return fmt.Errorf("word length %d too long for base %d, max is %d", l, base, mx)
	}
	return nil
}

// Encode returns the value of digits in the given base. Weights are
// accumulated from the right hand end. Every digit must be less than
// base. This is not checked.
func Encode(digits []byte, base int) uint64 {
	var enc uint64
	b := uint64(1)
	for i := len(digits) - 1; i >= 0; i-- {
		enc += b * uint64(digits[i])
		b *= uint64(base)
	}
	return enc
}

// Decode is the inverse of Encode. It writes l digits into dst, which
// is grown if necessary, and returns it.
func Decode(enc uint64, base, l int, dst []byte) []byte {
	if cap(dst) < l {
		dst = make([]byte, l)
	}
	dst = dst[:l]
	b := uint64(base)
	for i := l - 1; i >= 0; i-- {
		dst[i] = byte(enc % b)
		enc /= b
	}
	return dst
}
