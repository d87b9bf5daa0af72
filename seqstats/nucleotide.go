package seqstats

import (
	"math"
	"strings"
)

// NucleotideStats holds the composition statistics of a DNA or RNA
// sequence. Frequencies and contents are percentages rounded to 2
// decimals, the entropy is in bits, rounded to 3 decimals.
type NucleotideStats struct {
	Length                int
	Counts                map[string]int
	Frequencies           map[string]float64
	GCContent             float64
	ATContent             float64
	PurineCount           int
	PyrimidineCount       int
	PurinePyrimidineRatio float64
	ShannonEntropy        float64
}

// Nucleotide computes statistics for a DNA or RNA sequence. An empty
// sequence yields the all-zero result rather than an error.
func Nucleotide(sequence string) *NucleotideStats {

	sequence = strings.ToUpper(sequence)
	stats := &NucleotideStats{
		Length:      len(sequence),
		Counts:      map[string]int{},
		Frequencies: map[string]float64{},
	}
	if stats.Length == 0 {
		return stats
	}

	for i := 0; i < len(sequence); i++ {
		stats.Counts[string(sequence[i])]++
	}

	length := float64(stats.Length)
	for base, count := range stats.Counts {
		stats.Frequencies[base] = round2(float64(count) / length * 100)
	}

	stats.GCContent = round2(float64(stats.Counts["G"]+stats.Counts["C"]) / length * 100)
	// AT content counts uracil as well so that RNA sequences report
	// their AU content under the same field
	stats.ATContent = round2(float64(stats.Counts["A"]+stats.Counts["T"]+stats.Counts["U"]) / length * 100)

	stats.PurineCount = stats.Counts["A"] + stats.Counts["G"]
	stats.PyrimidineCount = stats.Counts["C"] + stats.Counts["T"] + stats.Counts["U"]
	switch {
	case stats.PyrimidineCount > 0:
		stats.PurinePyrimidineRatio = round2(float64(stats.PurineCount) / float64(stats.PyrimidineCount))
	case stats.PurineCount > 0:
		stats.PurinePyrimidineRatio = math.Inf(1)
	}

	stats.ShannonEntropy = round3(shannonEntropy(stats.Counts, length))
	return stats
}

// shannonEntropy is -sum(p*log2(p)) over the observed base
// frequencies: 0 for a homogeneous sequence, close to 2 bits for a
// uniform 4-base one.
func shannonEntropy(counts map[string]int, length float64) float64 {

	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / length
		entropy -= p * math.Log2(p)
	}
	return entropy
}
