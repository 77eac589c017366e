// 7 Oct 2026

// Package seqencode reads a nucleotide stream once, from start to end,
// and writes every non-overlapping word as a base 5 integer. The
// ambiguity code n is a letter here, with digit 4.
// Each newline in the input gives a newline in the output, whether or
// not a word was finished. The unfinished part of a word is dropped,
// as is any unfinished word at the end of input.
// Unlike the random sampler, there is no second chance. The first
// invalid byte stops everything and comes back as a
// *window.InvalidCharError.
package seqencode

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andrew-torda/kmerenc/pkg/alphabet"
	"github.com/andrew-torda/kmerenc/pkg/encode"
	"github.com/andrew-torda/kmerenc/pkg/seq/common"
	"github.com/andrew-torda/kmerenc/pkg/window"
)

// Args is what comes from the command line.
type Args struct {
	Fname   string    // input file name, "-" or "" for standard input
	Wrtr    io.Writer // nil means standard output
	WordLen int
}

// Alpha is the streaming alphabet.
var Alpha = alphabet.DNA5

// Encode reads rdr and writes encodings of words of length l to w.
// Encodings on one line are separated by a single space.
func Encode(rdr io.Reader, w io.Writer, l int) error {
	sc, err := window.NewScanner(rdr, Alpha, l)
	if err != nil {
		return err
	}
	base := Alpha.Base()
	var buf []byte
	first := true // nothing written on this output line yet
	for sc.Scan() {
		buf = buf[:0]
		switch sc.Token() {
		case window.Newline:
			buf = append(buf, alphabet.NL)
			first = true
		case window.Word:
			if !first {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendUint(buf, encode.Encode(sc.Bytes(), base), 10)
			first = false
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Diagnostic is the message for an invalid byte. The byte goes out
// as it was read, not as a UTF-8 rendering of its value.
func Diagnostic(ic *window.InvalidCharError) []byte {
	const prefix = "ERROR: invalid character encountered: "
	b := make([]byte, 0, len(prefix)+2)
	b = append(b, prefix...)
	return append(b, ic.Char, '\n')
}

// openIn returns standard input or the named file. The close function
// must always be called.
func openIn(fname string) (io.Reader, func() error, error) {
	if fname == "" || fname == common.Stdin {
		return os.Stdin, func() error { return nil }, nil
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, nil, fmt.Errorf("input file: %w", err)
	}
	return fp, fp.Close, nil
}

var opener = openIn

// Main runs the encoder on a file. Whatever was encoded before an
// error is still flushed and the input file is closed.
func Main(args *Args) (err error) {
	if err = encode.CheckLen(args.WordLen, Alpha.Base()); err != nil {
		return err
	}
	rdr, closer, err := opener(args.Fname)
	if err != nil {
		return err
	}
	defer func() {
		if e := closer(); err == nil {
			err = e
		}
	}()
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
	return Encode(rdr, bw, args.WordLen)
}
