package seqstats

import "strings"

// Average residue weights in Dalton.
var residueWeights = map[byte]float64{
	'A': 89.09, 'C': 121.15, 'D': 133.10, 'E': 147.13,
	'F': 165.19, 'G': 75.07, 'H': 155.16, 'I': 131.17,
	'K': 146.19, 'L': 131.17, 'M': 149.21, 'N': 132.12,
	'P': 115.13, 'Q': 146.15, 'R': 174.20, 'S': 105.09,
	'T': 119.12, 'V': 117.15, 'W': 204.23, 'Y': 181.19,
}

// Side chain pK of the ionizable residues.
var sideChainPK = map[byte]float64{
	'C': 8.33,
	'D': 3.86,
	'E': 4.25,
	'H': 6.00,
	'K': 10.53,
	'R': 12.48,
	'Y': 10.07,
}

const (
	nTerminalPK = 9.69
	cTerminalPK = 2.34

	// weight of the water molecule lost per peptide bond, in Dalton
	waterWeight = 18.015
)

// Kyte-Doolittle hydropathy scores.
var hydropathy = map[byte]float64{
	'A': 1.8, 'C': 2.5, 'D': -3.5, 'E': -3.5,
	'F': 2.8, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'K': -3.9, 'L': 3.8, 'M': 1.9, 'N': -3.5,
	'P': -1.6, 'Q': -3.5, 'R': -4.5, 'S': -0.8,
	'T': -0.7, 'V': 4.2, 'W': -0.9, 'Y': -1.3,
}

// Amino acid classes. The classes overlap and do not partition the
// 20-letter alphabet, so the composition percentages do not sum to 100.
const (
	polar     = "STNQCY"
	nonpolar  = "AVILMFWPG"
	acidic    = "DE"
	basic     = "KRH"
	aromatic  = "FWY"
	aliphatic = "AVILM"
)

// Composition is the percentage of residues falling in each amino acid
// class, rounded to 2 decimals.
type Composition struct {
	Polar     float64
	Nonpolar  float64
	Acidic    float64
	Basic     float64
	Aromatic  float64
	Aliphatic float64
}

// ProteinStats holds the biochemical statistics of an amino acid
// sequence.
type ProteinStats struct {
	Length           int
	Counts           map[string]int
	Frequencies      map[string]float64
	MolecularWeight  float64 // Dalton
	IsoelectricPoint float64
	GravyIndex       float64
	Composition      Composition
}

// Protein computes statistics for an amino acid sequence. Stop symbols
// ('*') are stripped before any computation. An empty sequence yields
// a neutral result with an isoelectric point of 7.0.
func Protein(sequence string) *ProteinStats {

	sequence = strings.ReplaceAll(strings.ToUpper(sequence), "*", "")
	stats := &ProteinStats{
		Length:           len(sequence),
		Counts:           map[string]int{},
		Frequencies:      map[string]float64{},
		IsoelectricPoint: 7.0,
	}
	if stats.Length == 0 {
		return stats
	}

	for i := 0; i < len(sequence); i++ {
		stats.Counts[string(sequence[i])]++
	}
	length := float64(stats.Length)
	for aa, count := range stats.Counts {
		stats.Frequencies[aa] = round2(float64(count) / length * 100)
	}

	stats.MolecularWeight = molecularWeight(sequence)
	stats.IsoelectricPoint = isoelectricPoint(sequence)
	stats.GravyIndex = gravyIndex(sequence)
	stats.Composition = composition(sequence)
	return stats
}

// molecularWeight sums the average residue weights and removes one
// water molecule per peptide bond. Residues outside the weight table
// count as 0.
func molecularWeight(sequence string) float64 {

	weight := 0.0
	for i := 0; i < len(sequence); i++ {
		weight += residueWeights[sequence[i]]
	}
	if len(sequence) > 1 {
		weight -= float64(len(sequence)-1) * waterWeight
	}
	return round2(weight)
}

// isoelectricPoint is a coarse estimate: the unweighted mean of the
// N-terminal pK, the C-terminal pK and the side chain pK of every
// ionizable residue. A protein without ionizable side chains is
// reported neutral at 7.0.
func isoelectricPoint(sequence string) float64 {

	ionizable := 0
	pkSum := 0.0
	for i := 0; i < len(sequence); i++ {
		if pk, ok := sideChainPK[sequence[i]]; ok {
			pkSum += pk
			ionizable++
		}
	}
	if ionizable == 0 {
		return 7.0
	}
	pkSum += nTerminalPK + cTerminalPK
	return round2(pkSum / float64(ionizable+2))
}

// gravyIndex is the mean Kyte-Doolittle hydropathy score of the
// residues: positive for hydrophobic proteins, negative for
// hydrophilic ones.
func gravyIndex(sequence string) float64 {

	total := 0.0
	for i := 0; i < len(sequence); i++ {
		total += hydropathy[sequence[i]]
	}
	return round3(total / float64(len(sequence)))
}

func composition(sequence string) Composition {

	length := float64(len(sequence))
	classPercent := func(class string) float64 {
		n := 0
		for i := 0; i < len(sequence); i++ {
			if strings.IndexByte(class, sequence[i]) >= 0 {
				n++
			}
		}
		return round2(float64(n) / length * 100)
	}

	return Composition{
		Polar:     classPercent(polar),
		Nonpolar:  classPercent(nonpolar),
		Acidic:    classPercent(acidic),
		Basic:     classPercent(basic),
		Aromatic:  classPercent(aromatic),
		Aliphatic: classPercent(aliphatic),
	}
}
