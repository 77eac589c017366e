// 5 Oct 2026

// Package getseq draws random k-mers from a big flat nucleotide file
// and prints them as base 4 integers. Each output line is one sequence
// of NWords consecutive words of WordLen letters, taken from one
// uninterrupted stretch of valid text starting at a random offset.
// The file is never read as a whole. The same seed and the same file
// always give the same output.
package getseq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/andrew-torda/kmerenc/pkg/alphabet"
	"github.com/andrew-torda/kmerenc/pkg/encode"
	"github.com/andrew-torda/kmerenc/pkg/mapfile"
	"github.com/andrew-torda/kmerenc/pkg/window"
)

// Args is everything from the command line.
type Args struct {
	Fname     string    // genome file
	Wrtr      io.Writer // where the encodings go
	Nseqs     int       // number of sequences wanted
	WordLen   int       // letters per word
	NWords    int       // words per sequence
	Seed      int64     // random number seed
	MaxTries  int       // give up after this many rejections in a row, 0 never
	NoMmap    bool      // read the file instead of mapping it
	CompFname string    // write a composition table here if not empty
}

// Alpha is the alphabet used for sampling.
var Alpha = alphabet.DNA4

// Emit pulls nseqs sequences out of the sampler and writes one line per
// sequence with the encodings separated by spaces. If comp is not nil,
// every accepted sequence is added to it.
func Emit(smplr *Sampler, w io.Writer, nseqs, maxTries int, comp *Composition) error {
	base := Alpha.Base()
	var line []byte
	var dbg []byte
	debug := log.IsLevelEnabled(log.DebugLevel)
	for n := 0; n < nseqs; n++ {
		words, err := smplr.Next(maxTries)
		if err != nil {
			return fmt.Errorf("sequence %d: %w", n+1, err)
		}
		line = line[:0]
		for i, word := range words {
			if i > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendUint(line, encode.Encode(word, base), 10)
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
		if comp != nil {
			comp.Add(words)
		}
		if debug {
			dbg = dbg[:0]
			for _, word := range words {
				for _, d := range word {
					c, _ := Alpha.Letter(d)
					dbg = append(dbg, c)
				}
				dbg = append(dbg, ' ')
			}
			log.Debugf("sequence %d: %s", n+1, dbg)
		}
	}
	return nil
}

// writeComp writes the composition table to a named file.
func writeComp(fname string, comp *Composition) error {
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("composition file %v: %w", fname, err)
	}
	if err = comp.Write(fp); err != nil {
		fp.Close()
		return fmt.Errorf("writing composition to %v: %w", fname, err)
	}
	return fp.Close()
}

// Main opens the file, samples and writes. The file is closed and
// output flushed whatever happens.
func Main(args *Args) (err error) {
	if args.Nseqs < 0 {
		return fmt.Errorf("number of sequences %d is negative", args.Nseqs)
	}
	asm, err := window.NewAssembler(Alpha, args.WordLen)
	if err != nil {
		return err
	}
	f, err := mapfile.Open(args.Fname, !args.NoMmap)
	if err != nil {
		return err
	}
	defer f.Close()
	log.Infof("%s: %d bytes, mapped %v", args.Fname, f.Size(), f.Mapped())

	smplr, err := NewSampler(f, f.Size(), asm, args.NWords, args.Seed)
	if err != nil {
		return err
	}
	var comp *Composition
	if args.CompFname != "" {
		comp = NewComposition(Alpha, args.WordLen*args.NWords)
	}

	w := args.Wrtr
	if w == nil {
		w = os.Stdout
	}
	bw := bufio.NewWriter(w)
	defer func() {
		if e := bw.Flush(); err == nil {
			err = e
		}
	}()
	if err = Emit(smplr, bw, args.Nseqs, args.MaxTries, comp); err != nil {
		return err
	}
	tries, rej := smplr.Stats()
	log.Infof("%d sequences from %d offsets, %d rejected", args.Nseqs, tries, rej)
	if comp != nil {
		return writeComp(args.CompFname, comp)
	}
	return nil
}
