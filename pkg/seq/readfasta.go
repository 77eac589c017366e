// Reader for fasta format genomes.

package seq

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
)

// An item is terminated by a newline if we are in a comment or a comment
// character ">" if we are in a sequence.
const (
	NL       = '\n'
	cmmtChar = '>'
)

type item struct {
	data     []byte
	complete bool
}

type lexer struct {
	input    []byte
	ichan    chan *item
	genome   *Genome
	rdr      io.Reader
	itempool sync.Pool
	rdsize   int
	cmmt     []byte // partial comment
	seq      []byte // partial sequence
	term     byte
	rderr    error // only from next(), only read after ichan is closed
	err      error
}

const defaultReadSize = 4096

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing and benchmarking.
func setFastaRdSize(i int) {
	if i < 1 {
		panic("setFastaRdSize given buffer length less than 1")
	}
	rdsize = i
}

func newItem() interface{} { return new(item) }

// next reads from the input and sends items to ichan. An item is
// terminated by l.term, or the end of the buffer or end of input.
// Every read gets a fresh buffer, so items can be kept by the receiver
// until they are put back in the pool.
func (l *lexer) next() {
	defer close(l.ichan)
	for {
		item := l.itempool.Get().(*item)
		if len(l.input) == 0 {
			l.input = make([]byte, l.rdsize)
			n, err := l.rdr.Read(l.input)
			l.input = l.input[:n]
			if n == 0 {
				if err == nil {
					l.itempool.Put(item)
					continue
				}
				if err != io.EOF {
					l.rderr = err
				}
				item.data = nil
				item.complete = true
				l.ichan <- item // flush whatever is pending
				return
			}
		}

		if ndx := bytes.IndexByte(l.input, l.term); ndx == -1 {
			item.data = l.input // no terminator found, so just send
			l.input = nil       // back whatever we have in the buffer.
			item.complete = false
		} else { //                             We did find a terminator
			item.data = l.input[:ndx]
			item.complete = true
			l.input = l.input[ndx+1:]
			if l.term == NL {
				l.term = cmmtChar
			} else {
				l.term = NL
			}
		}
		l.ichan <- item
	}
}

type stateFn func(*lexer) stateFn

// gstart eats anything before the first ">".
func gstart(l *lexer) stateFn {
	item, ok := <-l.ichan
	if !ok {
		return nil
	}
	defer l.itempool.Put(item)
	if len(bytes.TrimSpace(item.data)) != 0 && l.err == nil {
		l.err = errors.New("text before first fasta comment")
	}
	if item.complete {
		return gcmmt
	}
	return gstart
}

// We are reading a sequence
func gseq(l *lexer) stateFn {
	item, ok := <-l.ichan
	if !ok {
		if len(l.cmmt) != 0 { // comment was last thing in the file
			l.addSeq()
		}
		return nil
	}
	defer l.itempool.Put(item)

	l.seq = appendNonWhite(l.seq, item.data)
	if item.complete {
		l.addSeq()
		return gcmmt
	}
	return gseq
}

// We are reading a comment
func gcmmt(l *lexer) stateFn {
	item, ok := <-l.ichan
	if !ok {
		return nil
	}
	defer l.itempool.Put(item)

	l.cmmt = append(l.cmmt, item.data...)
	if item.complete {
		return gseq
	}
	return gcmmt
}

// addSeq files the sequence under the first word of its comment.
func (l *lexer) addSeq() {
	name := string(firstWord(l.cmmt))
	seq := l.seq
	l.cmmt, l.seq = l.cmmt[:0], nil
	if l.err != nil {
		return
	}
	switch {
	case name == "":
		l.err = errors.New("fasta comment without a name")
	case len(seq) == 0:
		l.err = errors.New("Zero length sequence after " + name)
	default:
		l.err = l.genome.add(name, seq)
	}
}

func firstWord(b []byte) []byte {
	if f := bytes.Fields(b); len(f) > 0 {
		return f[0]
	}
	return nil
}

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// appendNonWhite appends src to dst, leaving out white space.
func appendNonWhite(dst, src []byte) []byte {
	for _, c := range src {
		if !asciiSpace[c] {
			dst = append(dst, c)
		}
	}
	return dst
}

// ReadFasta reads a fasta formatted genome. Each sequence is filed
// under the first word of its comment line. Letters are kept as they
// are and white space is dropped.
func ReadFasta(rdr io.Reader) (*Genome, error) {
	l := lexer{rdr: rdr, ichan: make(chan *item, 2), genome: newGenome(),
		term: cmmtChar, rdsize: rdsize}
	l.itempool.New = newItem

	go l.next()
	for state := gstart; state != nil; {
		state = state(&l)
	}
	for range l.ichan { // let next() finish
	}
	if l.rderr != nil {
		return nil, fmt.Errorf("reading fasta: %w", l.rderr)
	}
	if l.err != nil {
		return nil, l.err
	}
	if l.genome.NSeq() == 0 {
		return nil, errors.New("No sequences found")
	}
	return l.genome, nil
}
