// 31 July 2020

// Package randseq writes random nucleotide text for testing the
// samplers. The output looks like a flat genome file. Lines of fixed
// width, optionally mixed case, with occasional runs of the ambiguity
// code n. If a comment is given, each sequence gets a fasta style
// "> comment i" line in front of it. Those lines are not valid
// nucleotide text, which is handy for checking that samplers step
// around them.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
)

const (
	nRunLen = 20 // length of a run of n's
)

var (
	lower = []byte{'a', 'c', 'g', 't'}
	upper = []byte{'A', 'C', 'G', 'T'}
)

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed   int64     // random number seed
	Wrtr    io.Writer // where we write to
	Cmmt    string    // Comment for the sequences, no header if empty
	Nseq    int       // number of sequences
	Len     int       // Length of sequences
	Width   int       // letters per line, 0 means one line per sequence
	ProbN   float32   // probability of a run of n at any position
	MixCase bool      // randomly switch between upper and lower case
}

// getseq returns a byte slice with a random sequence in it
func getseq(args *RandSeqArgs, rnd *rand.Rand) []byte {
	ret := make([]byte, args.Len)
	letters := upper
	for i := 0; i < args.Len; i++ {
		if args.MixCase && rnd.Int31n(100) == 0 {
			if letters[0] == 'A' {
				letters = lower
			} else {
				letters = upper
			}
		}
		if args.ProbN > 0 && rnd.Float32() < args.ProbN {
			n := byte('n')
			if letters[0] == 'A' {
				n = 'N'
			}
			for j := 0; j < nRunLen && i < args.Len; j++ {
				ret[i] = n
				i++
			}
			i-- // the loop adds one
			continue
		}
		ret[i] = letters[rnd.Int31n(int32(len(letters)))]
	}
	return ret
}

// wrap breaks a sequence into lines of width letters.
func wrap(s []byte, width int) []byte {
	if width <= 0 {
		return append(s, '\n')
	}
	ret := make([]byte, 0, len(s)+len(s)/width+1)
	for len(s) > width {
		ret = append(ret, s[:width]...)
		ret = append(ret, '\n')
		s = s[width:]
	}
	ret = append(ret, s...)
	return append(ret, '\n')
}

// writeseq takes a bytestring which is our sequence. It adds a comment
// and sends it out for writing. n is the number of the sequence, so the
// output has comment lines "> something 1, > something 2..."
func writeseq(sChan <-chan []byte, args *RandSeqArgs, wg *sync.WaitGroup, err *error) {
	defer wg.Done()

	width := len(fmt.Sprintf("%d", args.Nseq))
	var i int
	for s := range sChan {
		i++
		if *err != nil {
			continue // drain, so the sender is not blocked
		}
		if args.Cmmt != "" {
			if _, *err = fmt.Fprintf(args.Wrtr, "> %s %[2]*d\n", args.Cmmt, width, i); *err != nil {
				continue
			}
		}
		_, *err = args.Wrtr.Write(wrap(s, args.Width))
	}
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	var wg sync.WaitGroup
	var err error
	if args.Len < 0 || args.Nseq < 0 {
		return fmt.Errorf("negative length %d or number of sequences %d", args.Len, args.Nseq)
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &err)
	for i := 0; i < args.Nseq; i++ {
		sChan <- getseq(args, rnd)
	}
	close(sChan)
	wg.Wait()
	return err
}
