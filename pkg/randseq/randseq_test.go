// 31 July 2020

package randseq_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andrew-torda/kmerenc/pkg/randseq"
)

func TestSimple(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{
		Wrtr:  &sb,
		Cmmt:  "testing seq",
		Nseq:  500,
		Len:   1600,
		Width: 60,
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(sb.String(), ">"); n != args.Nseq {
		t.Fatal("count >, got ", n, "expected", args.Nseq)
	}
	for _, line := range strings.Split(sb.String(), "\n") {
		if len(line) > args.Width && !strings.HasPrefix(line, ">") {
			t.Fatal("line longer than", args.Width, ":", line)
		}
	}
}

// TestLetters checks only nucleotide letters and newlines come out when
// there is no comment.
func TestLetters(t *testing.T) {
	var b bytes.Buffer
	args := randseq.RandSeqArgs{
		Iseed: 7, Wrtr: &b, Nseq: 20, Len: 1000, Width: 70,
		ProbN: 0.01, MixCase: true,
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	nletter := 0
	for _, c := range b.Bytes() {
		switch c {
		case 'a', 'c', 'g', 't', 'n', 'A', 'C', 'G', 'T', 'N':
			nletter++
		case '\n':
		default:
			t.Fatalf("unexpected byte %q", c)
		}
	}
	if nletter != args.Nseq*args.Len {
		t.Fatal("wanted", args.Nseq*args.Len, "letters, got", nletter)
	}
	if !bytes.ContainsAny(b.Bytes(), "nN") {
		t.Fatal("no runs of n with ProbN set")
	}
}

func TestSeed(t *testing.T) {
	var out [2]string
	for i := range out {
		var sb strings.Builder
		args := randseq.RandSeqArgs{Iseed: 3, Wrtr: &sb, Nseq: 3, Len: 200}
		if err := randseq.RandSeqMain(&args); err != nil {
			t.Fatal(err)
		}
		out[i] = sb.String()
	}
	if out[0] != out[1] {
		t.Fatal("same seed gave different sequences")
	}
}
