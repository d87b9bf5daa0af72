// Package seqstats computes descriptive statistics over nucleotide and
// protein sequences: compositional, informational and biochemical.
package seqstats

import (
	"math"

	"github.com/feliixx/godogma/seqtype"
)

// Kind discriminates the two statistics variants.
type Kind int

const (
	KindNucleotide Kind = iota
	KindProtein
)

// Result is the closed union of the two statistics variants, either
// *NucleotideStats or *ProteinStats.
type Result interface {
	Kind() Kind
}

func (*NucleotideStats) Kind() Kind { return KindNucleotide }
func (*ProteinStats) Kind() Kind    { return KindProtein }

// Calculate selects the statistics variant matching the detected
// molecule type. Unknown sequences fall back to nucleotide statistics.
func Calculate(t seqtype.Type, sequence string) Result {
	if t == seqtype.Protein {
		return Protein(sequence)
	}
	return Nucleotide(sequence)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
