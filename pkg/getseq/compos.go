// 6 Oct 2026

package getseq

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/kmerenc/pkg/alphabet"
)

// Composition counts how often each symbol turns up at each position
// of the accepted sequences. It is a check that the sample is not
// lopsided.
// counts.Mat looks like [number_of_symbols][length_of_sequence]
// and, as in sequence alignments, we count in float32 since the numbers
// are only ever printed as fractions.
type Composition struct {
	alpha  *alphabet.Alphabet
	counts *matrix.FMatrix2d
	nseq   int
}

// NewComposition is for sequences of npos symbols.
func NewComposition(a *alphabet.Alphabet, npos int) *Composition {
	return &Composition{alpha: a, counts: matrix.NewFMatrix2d(a.Base(), npos)}
}

// Add tallies one sequence. The words together must have the length
// given to NewComposition.
func (c *Composition) Add(words [][]byte) {
	pos := 0
	for _, w := range words {
		for _, d := range w {
			c.counts.Mat[d][pos]++
			pos++
		}
	}
	c.nseq++
}

// NSeq is the number of sequences added.
func (c *Composition) NSeq() int { return c.nseq }

// Frac returns the fraction of sequences with digit d at position pos.
func (c *Composition) Frac(d, pos int) float32 {
	if c.nseq == 0 {
		return 0
	}
	return c.counts.Mat[d][pos] / float32(c.nseq)
}

// Write prints the table. One row per symbol, one tab separated
// column per position. Any write error turns up at the final flush.
func (c *Composition) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	nrow, ncol := c.counts.Size()
	fmt.Fprintf(bw, "# %d sequences, %d positions\n", c.nseq, ncol)
	for d := 0; d < nrow; d++ {
		letter, err := c.alpha.Letter(uint8(d))
		if err != nil {
			return err
		}
		bw.WriteByte(letter)
		for pos := 0; pos < ncol; pos++ {
			fmt.Fprintf(bw, "\t%.3f", c.Frac(d, pos))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
