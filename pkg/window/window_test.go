package window_test

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/kmerenc/brokenio"
	"github.com/andrew-torda/kmerenc/pkg/alphabet"
	"github.com/andrew-torda/kmerenc/pkg/encode"
	. "github.com/andrew-torda/kmerenc/pkg/window"
	"github.com/google/go-cmp/cmp"
)

func newAsm(t *testing.T, a *alphabet.Alphabet, l int) *Assembler {
	t.Helper()
	asm, err := NewAssembler(a, l)
	if err != nil {
		t.Fatal(err)
	}
	return asm
}

// encodeAll fills nw words from s and returns their base 4 encodings.
func encodeAll(t *testing.T, s string, l, nw int) ([]uint64, int, error) {
	asm := newAsm(t, alphabet.DNA4, l)
	words := asm.NewWords(nw)
	n, err := asm.Fill(strings.NewReader(s), words)
	var ret []uint64
	for _, w := range words[:n] {
		ret = append(ret, encode.Encode(w, 4))
	}
	return ret, n, err
}

func TestFillSimple(t *testing.T) {
	got, n, err := encodeAll(t, "ACGTACGT\n", 4, 1)
	if err != nil || n != 1 {
		t.Fatal("wanted one word, got", n, err)
	}
	if got[0] != 27 {
		t.Fatal("ACGT wanted 27 got", got[0])
	}
}

// TestFillNewlines checks newlines are not counted and words may
// run over line ends.
func TestFillNewlines(t *testing.T) {
	got, n, err := encodeAll(t, "\nAC\nGT\n\nac\ngt", 4, 2)
	if err != nil || n != 2 {
		t.Fatal("wanted two words, got", n, err)
	}
	if diff := cmp.Diff([]uint64{27, 27}, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestFillShort(t *testing.T) {
	_, n, err := encodeAll(t, "ACGTAC", 4, 2)
	if !errors.Is(err, ErrShort) {
		t.Fatal("wanted ErrShort, got", err)
	}
	if n != 1 {
		t.Fatal("wanted one complete word before the end, got", n)
	}
	if !Rejected(err) {
		t.Fatal("short read should count as rejected")
	}
}

func TestFillInvalid(t *testing.T) {
	_, n, err := encodeAll(t, "AC\nGTNACGT", 4, 2)
	var ic *InvalidCharError
	if !errors.As(err, &ic) {
		t.Fatal("wanted InvalidCharError, got", err)
	}
	if ic.Char != 'N' || ic.Offset != 5 || n != 1 {
		t.Fatalf("got char %q offset %d n %d", ic.Char, ic.Offset, n)
	}
	if !Rejected(err) {
		t.Fatal("invalid char should count as rejected")
	}
}

// TestFillStops checks that Fill does not read past what it needs.
func TestFillStops(t *testing.T) {
	r := strings.NewReader("ACGTACGTxxxx")
	asm := newAsm(t, alphabet.DNA4, 2)
	if n, err := asm.Fill(r, asm.NewWords(4)); n != 4 || err != nil {
		t.Fatal("fill broke", n, err)
	}
	if r.Len() != 4 {
		t.Fatal("Fill read too far, left", r.Len())
	}
}

func TestFillReadErr(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(strings.Repeat("acgt", 100))))
	rdr.SetFailAfter(10)
	asm := newAsm(t, alphabet.DNA4, 4)
	_, err := asm.Fill(bufio.NewReader(rdr), asm.NewWords(10))
	if err == nil || Rejected(err) {
		t.Fatal("wanted a real read error, got", err)
	}
	if !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("error should wrap the read error, got", err)
	}
}

func TestAssemblerLen(t *testing.T) {
	if _, err := NewAssembler(alphabet.DNA5, 28); err == nil {
		t.Fatal("28 letters should not fit base 5")
	}
	if _, err := NewAssembler(alphabet.DNA4, 0); err == nil {
		t.Fatal("zero length words should be refused")
	}
}

// TestScannerLen checks the scanner uses the alphabet it was given for
// its length limit and its lookups.
func TestScannerLen(t *testing.T) {
	if _, err := NewScanner(strings.NewReader(""), alphabet.DNA5, 28); err == nil {
		t.Fatal("28 letters should not fit base 5")
	}
	if _, err := NewScanner(strings.NewReader(""), alphabet.DNA5, 0); err == nil {
		t.Fatal("zero length words should be refused")
	}
	sc, err := NewScanner(strings.NewReader("nnnnnnnnnnnnnnnnnnnnnnnnnnn"), alphabet.DNA5, 27)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Scan() || sc.Token() != Word {
		t.Fatal("27 n's should make one word, got", sc.Err())
	}
	sc, err = NewScanner(strings.NewReader("acgn"), alphabet.DNA4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Scan() || sc.Scan() {
		t.Fatal("n is not in dna4, scanner should stop after ac")
	}
	var ic *InvalidCharError
	if !errors.As(sc.Err(), &ic) || ic.Char != 'n' {
		t.Fatal("wanted invalid n, got", sc.Err())
	}
}

type scanned struct {
	tok Token
	enc uint64
}

func scanAll(t *testing.T, s string, l int) ([]scanned, error) {
	t.Helper()
	sc, err := NewScanner(strings.NewReader(s), alphabet.DNA5, l)
	if err != nil {
		t.Fatal(err)
	}
	var ret []scanned
	for sc.Scan() {
		x := scanned{tok: sc.Token()}
		if x.tok == Word {
			x.enc = encode.Encode(sc.Bytes(), 5)
		}
		ret = append(ret, x)
	}
	return ret, sc.Err()
}

func TestScanner(t *testing.T) {
	got, err := scanAll(t, "ACGT\nACGT\n", 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []scanned{{Word, 38}, {Newline, 0}, {Word, 38}, {Newline, 0}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(scanned{})); diff != "" {
		t.Fatal(diff)
	}
}

// TestScannerPartial checks that newlines and end of file both drop
// partial words.
func TestScannerPartial(t *testing.T) {
	got, err := scanAll(t, "acgtnA\nCGTNacg", 4)
	if err != nil {
		t.Fatal(err)
	}
	// acgt -> 38, then A dropped at newline, CGTN = 1*125+2*25+3*5+4, acg dropped
	want := []scanned{{Word, 38}, {Newline, 0}, {Word, 194}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(scanned{})); diff != "" {
		t.Fatal(diff)
	}
}

func TestScannerInvalid(t *testing.T) {
	got, err := scanAll(t, "AC\nGT1ACGT\n", 2)
	var ic *InvalidCharError
	if !errors.As(err, &ic) || ic.Char != '1' {
		t.Fatal("wanted invalid '1', got", err)
	}
	if len(got) != 3 {
		t.Fatal("wanted word, newline, word before the error, got", got)
	}
}
