// 17 Oct 2026

// Package extractseq takes rows of a region table, usually the output
// of randlines, and writes the genome sequence of each region with a
// label saying whether it is a promoter.
// The table is tab separated with a header. Columns are found by the
// names chr, start, end and strand. The read counts are columns 5 to 10
// (counting from 0), as for randlines.
// A region runs from start up to, but not including, end, counting
// from zero. Regions on the minus strand are reverse complemented.
// Every sequence comes out upper case.
// Output is grouped by chromosome, chromosomes in the order they first
// appear in the table and rows in table order within a chromosome.
package extractseq

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
	"github.com/andrew-torda/kmerenc/pkg/randlines"
	"github.com/andrew-torda/kmerenc/pkg/seq"
)

// Row is one region from the table.
type Row struct {
	Chr    string
	Start  int
	End    int
	Minus  bool // on the minus strand
	Counts uint64
}

// columns holds where the named fields are.
type columns struct {
	chr, start, end, strand int
	n                       int // need at least this many fields
}

var tab = []byte{'\t'}

func splitLine(line []byte) [][]byte {
	return bytes.Split(bytes.TrimRight(line, "\r\n"), tab)
}

func parseHeader(line []byte) (columns, error) {
	c := columns{chr: -1, start: -1, end: -1, strand: -1}
	for i, f := range splitLine(line) {
		switch string(f) {
		case "chr":
			c.chr = i
		case "start":
			c.start = i
		case "end":
			c.end = i
		case "strand":
			c.strand = i
		}
	}
	for _, x := range []struct {
		ndx  int
		name string
	}{{c.chr, "chr"}, {c.start, "start"}, {c.end, "end"}, {c.strand, "strand"}} {
		if x.ndx < 0 {
			return c, fmt.Errorf("no column called %s in header", x.name)
		}
		if x.ndx >= c.n {
			c.n = x.ndx + 1
		}
	}
	return c, nil
}

func (c columns) parse(line []byte) (Row, error) {
	var r Row
	fields := splitLine(line)
	if len(fields) < c.n {
		return r, fmt.Errorf("only %d fields, need %d", len(fields), c.n)
	}
	counts, err := randlines.SumCounts(line)
	if err != nil {
		return r, err
	}
	r.Counts = counts
	r.Chr = string(fields[c.chr])
	if r.Start, err = strconv.Atoi(string(fields[c.start])); err != nil {
		return r, fmt.Errorf("start: %w", err)
	}
	if r.End, err = strconv.Atoi(string(fields[c.end])); err != nil {
		return r, fmt.Errorf("end: %w", err)
	}
	r.Minus = string(fields[c.strand]) == "-"
	return r, nil
}

// ReadTable reads the header and all the rows. Blank lines are skipped.
func ReadTable(rdr io.Reader) ([]Row, error) {
	br := bufio.NewReader(rdr)
	var rows []Row
	var cols columns
	header := true
	for lineNum := 1; ; lineNum++ {
		line, rerr := br.ReadBytes('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, fmt.Errorf("reading table: %w", rerr)
		}
		if len(bytes.TrimSpace(line)) != 0 {
			if header {
				var err error
				if cols, err = parseHeader(line); err != nil {
					return nil, err
				}
				header = false
			} else {
				r, err := cols.parse(line)
				if err != nil {
					return nil, fmt.Errorf("table line %d: %w", lineNum, err)
				}
				rows = append(rows, r)
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	if header {
		return nil, errors.New("table has no header")
	}
	return rows, nil
}

// Label is 1 for a promoter, a row whose counts add up to at least min,
// and 0 otherwise.
func Label(counts, min uint64) int {
	if counts >= min {
		return 1
	}
	return 0
}

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	for _, p := range []string{"at", "cg", "ry", "km", "bv", "dh"} {
		a, b := p[0], p[1]
		complement[a], complement[b] = b, a
		complement[a-'a'+'A'], complement[b-'a'+'A'] = b-'a'+'A', a-'a'+'A'
	}
}

// RevComp reverse complements s in place. Case is kept. Bytes which
// are not nucleotide codes, and self complementary codes like n, s and
// w are only moved.
func RevComp(s []byte) {
	for i, j := 0, len(s)-1; i <= j; i, j = i+1, j-1 {
		s[i], s[j] = complement[s[j]], complement[s[i]]
	}
}

// Extract returns a fresh, upper case copy of the region from g.
func Extract(g *seq.Genome, r Row) ([]byte, error) {
	chr, ok := g.Seq(r.Chr)
	if !ok {
		return nil, fmt.Errorf("chromosome %s not in genome", r.Chr)
	}
	if r.Start < 0 || r.Start > r.End || r.End > len(chr) {
		return nil, fmt.Errorf("region %d to %d does not fit %s of length %d",
			r.Start, r.End, r.Chr, len(chr))
	}
	s := bytes.ToUpper(chr[r.Start:r.End])
	if r.Minus {
		RevComp(s)
	}
	return s, nil
}

// byChr groups the rows by chromosome, keeping the order of first
// appearance.
func byChr(rows []Row) [][]Row {
	ndx := make(map[string]int)
	var groups [][]Row
	for _, r := range rows {
		i, ok := ndx[r.Chr]
		if !ok {
			i = len(groups)
			ndx[r.Chr] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	return groups
}

// Write prints "label SEQUENCE" for each row.
func Write(w io.Writer, g *seq.Genome, rows []Row, minCount uint64) error {
	bw := bufio.NewWriter(w)
	groups := byChr(rows)
	for _, grp := range groups {
		for _, r := range grp {
			s, err := Extract(g, r)
			if err != nil {
				return err
			}
			log.Debugf("%s %d %d minus: %t counts %d", r.Chr, r.Start, r.End, r.Minus, r.Counts)
			fmt.Fprintf(bw, "%d %s\n", Label(r.Counts, minCount), s)
		}
	}
	log.Infof("%d regions from %d chromosomes", len(rows), len(groups))
	return bw.Flush()
}

// Args is what comes from the command line.
type Args struct {
	Fname       string // region table
	GenomeFname string // fasta
	Wrtr        io.Writer
	MinCount    uint64
	NoMmap      bool
}

// Main reads the table and the genome and writes the sequences.
func Main(args *Args) error {
	fp, err := os.Open(args.Fname)
	if err != nil {
		return fmt.Errorf("table file: %w", err)
	}
	rows, err := ReadTable(fp)
	fp.Close()
	if err != nil {
		return err
	}

	gf, err := mapfile.Open(args.GenomeFname, !args.NoMmap)
	if err != nil {
		return err
	}
	defer gf.Close()
	g, err := seq.ReadFasta(gf)
	if err != nil {
		return fmt.Errorf("genome %s: %w", args.GenomeFname, err)
	}
	log.Infof("%d sequences in genome", g.NSeq())

	w := args.Wrtr
	if w == nil {
		w = os.Stdout
	}
	return Write(w, g, rows, args.MinCount)
}
