// Package seq holds a genome read from a fasta file.
package seq

import (
	"fmt"
)

// Genome is a set of named sequences, such as chromosomes.
type Genome struct {
	names []string
	seqs  map[string][]byte
}

func newGenome() *Genome { return &Genome{seqs: make(map[string][]byte)} }

func (g *Genome) add(name string, s []byte) error {
	if _, dup := g.seqs[name]; dup {
		return fmt.Errorf("sequence %s appears twice", name)
	}
	g.names = append(g.names, name)
	g.seqs[name] = s
	return nil
}

// NSeq returns the number of sequences
func (g *Genome) NSeq() int { return len(g.names) }

// Names are in the order they were read.
func (g *Genome) Names() []string { return g.names }

// Seq returns the sequence called name. Do not write to it.
func (g *Genome) Seq(name string) ([]byte, bool) {
	s, ok := g.seqs[name]
	return s, ok
}
