package extractseq_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	. "github.com/andrew-torda/kmerenc/pkg/extractseq"
	"github.com/andrew-torda/kmerenc/pkg/seq"
	"github.com/andrew-torda/kmerenc/pkg/seq/common"
	"github.com/google/go-cmp/cmp"
)

const genome = `>chr1 the first
AAAACCCC
GGGGTTTT
>chr2
acgtnacgtn
`

const header = "chr\tstart\tend\tstrand\tname\tc0\tc1\tc2\tc3\tc4\tc5\n"

// row makes a table line whose counts add up to sum.
func row(chr string, start, end int, strand string, sum int) string {
	return fmt.Sprintf("%s\t%d\t%d\t%s\tx\t0\t%d\t0\t0\t0\t0\n", chr, start, end, strand, sum)
}

func TestRevComp(t *testing.T) {
	for _, x := range []struct{ in, want string }{
		{"AACG", "CGTT"},
		{"ACGTA", "TACGT"},
		{"aacg", "cgtt"},
		{"NRYKMBVDH", "DHBVKMRYN"},
		{"", ""},
	} {
		s := []byte(x.in)
		RevComp(s)
		if string(s) != x.want {
			t.Fatalf("%s gave %s wanted %s", x.in, s, x.want)
		}
		RevComp(s)
		if string(s) != x.in {
			t.Fatalf("%s twice gave %s", x.in, s)
		}
	}
}

// TestLabel checks the threshold is inclusive.
func TestLabel(t *testing.T) {
	const min = 10
	for counts, want := range map[uint64]int{0: 0, min - 1: 0, min: 1, min + 1: 1} {
		if got := Label(counts, min); got != want {
			t.Fatalf("counts %d gave %d wanted %d", counts, got, want)
		}
	}
	if Label(0, 0) != 1 {
		t.Fatal("with a threshold of 0, everything is a promoter")
	}
}

func TestReadTable(t *testing.T) {
	// columns in a different order to usual, found by name
	s := "name\tstrand\tend\tstart\tchr\tc0\tc1\tc2\tc3\tc4\tc5\n\n" +
		"x\t-\t20\t10\tchr9\t1\t2\t3\t4\t5\t6\r\n"
	rows, err := ReadTable(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	want := []Row{{Chr: "chr9", Start: 10, End: 20, Minus: true, Counts: 21}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatal(diff)
	}
	for _, bad := range []string{
		"",
		"chr\tstart\tend\tname\tc0\tc1\tc2\tc3\tc4\tc5\n", // no strand
		header + "chr1\tone\t5\t+\tx\t0\t0\t0\t0\t0\t0\n",
		header + "chr1\t1\t5\t+\tx\t0\t0\t0\n",
	} {
		if _, err := ReadTable(strings.NewReader(bad)); err == nil {
			t.Fatalf("%q should fail", bad)
		}
	}
}

func readGenome(t *testing.T) *seq.Genome {
	t.Helper()
	g, err := seq.ReadFasta(strings.NewReader(genome))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestExtract(t *testing.T) {
	g := readGenome(t)
	for _, x := range []struct {
		r    Row
		want string
	}{
		{Row{Chr: "chr1", Start: 0, End: 6}, "AAAACC"},
		{Row{Chr: "chr1", Start: 0, End: 6, Minus: true}, "GGTTTT"},
		{Row{Chr: "chr2", Start: 3, End: 8, Minus: true}, "CGTNA"},
		{Row{Chr: "chr1", Start: 16, End: 16}, ""},
	} {
		s, err := Extract(g, x.r)
		if err != nil {
			t.Fatal(err)
		}
		if string(s) != x.want {
			t.Fatalf("%+v gave %s wanted %s", x.r, s, x.want)
		}
	}
	if s, _ := g.Seq("chr2"); string(s) != "acgtnacgtn" {
		t.Fatal("genome was changed, now", string(s))
	}
	for _, r := range []Row{
		{Chr: "chr3", Start: 0, End: 1},
		{Chr: "chr1", Start: 10, End: 17},
		{Chr: "chr1", Start: 5, End: 4},
		{Chr: "chr1", Start: -1, End: 4},
	} {
		if _, err := Extract(g, r); err == nil {
			t.Fatalf("%+v should fail", r)
		}
	}
}

// TestRun runs from files and checks the grouping by chromosome.
func TestRun(t *testing.T) {
	table := header +
		row("chr2", 0, 4, "+", 9) +
		row("chr1", 0, 6, "-", 10) +
		row("chr2", 3, 8, "-", 11) +
		row("chr1", 12, 16, "+", 0)
	tname, err := common.WrtTemp(table)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tname)
	gname, err := common.WrtTemp(genome)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(gname)

	want := "0 ACGT\n1 CGTNA\n1 GGTTTT\n0 TTTT\n"
	for _, noMmap := range []bool{false, true} {
		var b bytes.Buffer
		args := Args{Fname: tname, GenomeFname: gname, Wrtr: &b, MinCount: 10, NoMmap: noMmap}
		if err := Main(&args); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, b.String()); diff != "" {
			t.Fatal(diff)
		}
	}

	var b bytes.Buffer
	if err := Main(&Args{Fname: tname, GenomeFname: tname, Wrtr: &b}); err == nil {
		t.Fatal("table is not a genome")
	}
	if err := Main(&Args{Fname: "/not/here", GenomeFname: gname, Wrtr: &b}); err == nil {
		t.Fatal("missing table should fail")
	}
}
