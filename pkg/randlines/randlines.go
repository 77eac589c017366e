// 8 Oct 2026

// Package randlines picks random lines from a big tab separated table
// without reading all of it. A line is found by jumping to a random
// offset, skipping to the end of whatever line we landed in, and
// taking the next one. The line is then offered to a predicate. If the
// predicate does not like it, we jump again.
// Since we always skip forward first, the first line of the file (the
// table header) is never picked. A long line is more likely to be
// followed than a short one, so the choice is only uniform when lines
// have similar lengths.
package randlines

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/andrew-torda/kmerenc/pkg/mapfile"
	"github.com/andrew-torda/kmerenc/pkg/offset"
)

// ErrTooManyTries comes back if a cap on attempts was set and reached.
var ErrTooManyTries = errors.New("no acceptable line found")

// Predicate decides if a line, including its newline, is wanted.
type Predicate func(line []byte) bool

// Source is what we pick lines from.
type Source interface {
	io.ReadSeeker
	io.ByteReader
}

// LinePicker owns its random number generator.
type LinePicker struct {
	src    Source
	picker *offset.Picker
	line   []byte
	nTry   int
}

// NewLinePicker is for a source of size bytes.
func NewLinePicker(src Source, size, seed int64) (*LinePicker, error) {
	picker, err := offset.New(size, seed)
	if err != nil {
		return nil, err
	}
	return &LinePicker{src: src, picker: picker}, nil
}

// try reads the first complete line after off. ok is false if there is
// no such line.
func (lp *LinePicker) try(off int64) (ok bool, err error) {
	lp.nTry++
	if _, err = lp.src.Seek(off, io.SeekStart); err != nil {
		return false, fmt.Errorf("seek to %d: %w", off, err)
	}
	for { // skip the rest of the line we landed in
		c, err := lp.src.ReadByte()
		if err == io.EOF {
			return false, nil
		} else if err != nil {
			return false, err
		}
		if c == '\n' {
			break
		}
	}
	lp.line = lp.line[:0]
	for {
		c, err := lp.src.ReadByte()
		if err == io.EOF {
			if len(lp.line) == 0 {
				return false, nil
			}
			lp.line = append(lp.line, '\n') // last line had no newline
			return true, nil
		} else if err != nil {
			return false, err
		}
		lp.line = append(lp.line, c)
		if c == '\n' {
			return true, nil
		}
	}
}

// Pick returns a random line which pred accepts. If maxTries is more
// than zero, give up after that many tries. The slice is overwritten by
// the next call.
func (lp *LinePicker) Pick(pred Predicate, maxTries int) ([]byte, error) {
	for i := 0; maxTries <= 0 || i < maxTries; i++ {
		off := lp.picker.Next()
		ok, err := lp.try(off)
		if err != nil {
			return nil, err
		}
		if ok && pred(lp.line) {
			return lp.line, nil
		}
		log.Debugf("offset %d: no line accepted", off)
	}
	return nil, fmt.Errorf("%w after %d tries", ErrTooManyTries, maxTries)
}

// Tries is the number of offsets drawn so far.
func (lp *LinePicker) Tries() int { return lp.nTry }

// Columns 5 to 10 (counting from 0) of the table hold read counts.
const (
	firstCount = 5
	nCount     = 6
)

// SumCounts adds up the count columns of a tab separated line.
func SumCounts(line []byte) (uint64, error) {
	fields := bytes.Split(bytes.TrimRight(line, "\r\n"), []byte{'\t'})
	if len(fields) < firstCount+nCount {
		return 0, fmt.Errorf("only %d fields, need %d", len(fields), firstCount+nCount)
	}
	var sum uint64
	for _, f := range fields[firstCount : firstCount+nCount] {
		n, err := strconv.ParseUint(string(f), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("count column: %w", err)
		}
		sum += n
	}
	return sum, nil
}

// IsPromoter accepts lines whose counts add up to at least min.
// Lines that cannot be parsed, such as a header, are never accepted.
func IsPromoter(min uint64) Predicate {
	return func(line []byte) bool {
		sum, err := SumCounts(line)
		return err == nil && sum >= min
	}
}

// IsNotPromoter accepts lines whose counts are all zero.
func IsNotPromoter(line []byte) bool {
	sum, err := SumCounts(line)
	return err == nil && sum == 0
}

// Args is what comes from the command line.
type Args struct {
	Fname    string
	Wrtr     io.Writer
	NLines   int    // number of pairs of lines
	MinCount uint64 // promoter threshold
	Seed     int64
	MaxTries int // per line, 0 for no limit
	NoMmap   bool
}

// Main writes NLines pairs of lines, a promoter line followed by a
// non-promoter line.
func Main(args *Args) (err error) {
	if args.NLines < 0 {
		return fmt.Errorf("number of lines %d is negative", args.NLines)
	}
	f, err := mapfile.Open(args.Fname, !args.NoMmap)
	if err != nil {
		return err
	}
	defer f.Close()
	lp, err := NewLinePicker(f, f.Size(), args.Seed)
	if err != nil {
		return err
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
	preds := []Predicate{IsPromoter(args.MinCount), IsNotPromoter}
	for i := 0; i < args.NLines; i++ {
		for _, pred := range preds {
			line, err := lp.Pick(pred, args.MaxTries)
			if err != nil {
				return err
			}
			if _, err := bw.Write(line); err != nil {
				return err
			}
		}
	}
	log.Infof("%d lines from %d offsets", 2*args.NLines, lp.Tries())
	return nil
}
