// Package gencode stores codon <-> AA
// translation for the standard genetic code, keyed by RNA codon.
//
// Relevant documentation:
//
//	https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG1
package gencode

import "sort"

// One-letter amino acid symbols with a special meaning.
const (
	Start   byte = 'M'
	Stop    byte = '*'
	Unknown byte = 'X'
)

const startCodon = "AUG"

// standard is NCBI translation table 1. It is built once and never
// mutated, so it is safe to share without locking.
var standard = map[string]byte{
	"UUU": 'F',
	"UCU": 'S',
	"UAU": 'Y',
	"UGU": 'C',
	"UUC": 'F',
	"UCC": 'S',
	"UAC": 'Y',
	"UGC": 'C',
	"UUA": 'L',
	"UCA": 'S',
	"UAA": '*',
	"UGA": '*',
	"UUG": 'L',
	"UCG": 'S',
	"UAG": '*',
	"UGG": 'W',
	"CUU": 'L',
	"CCU": 'P',
	"CAU": 'H',
	"CGU": 'R',
	"CUC": 'L',
	"CCC": 'P',
	"CAC": 'H',
	"CGC": 'R',
	"CUA": 'L',
	"CCA": 'P',
	"CAA": 'Q',
	"CGA": 'R',
	"CUG": 'L',
	"CCG": 'P',
	"CAG": 'Q',
	"CGG": 'R',
	"AUU": 'I',
	"ACU": 'T',
	"AAU": 'N',
	"AGU": 'S',
	"AUC": 'I',
	"ACC": 'T',
	"AAC": 'N',
	"AGC": 'S',
	"AUA": 'I',
	"ACA": 'T',
	"AAA": 'K',
	"AGA": 'R',
	"AUG": 'M',
	"ACG": 'T',
	"AAG": 'K',
	"AGG": 'R',
	"GUU": 'V',
	"GCU": 'A',
	"GAU": 'D',
	"GGU": 'G',
	"GUC": 'V',
	"GCC": 'A',
	"GAC": 'D',
	"GGC": 'G',
	"GUA": 'V',
	"GCA": 'A',
	"GAA": 'E',
	"GGA": 'G',
	"GUG": 'V',
	"GCG": 'A',
	"GAG": 'E',
	"GGG": 'G',
}

// AminoAcid returns the one-letter amino acid code of an RNA codon,
// Stop ('*') for a stop codon and Unknown ('X') for any well-formed
// codon outside the standard code, for example a codon containing 'N'.
func AminoAcid(codon string) byte {
	aa, ok := standard[codon]
	if !ok {
		return Unknown
	}
	return aa
}

// IsStart reports whether codon is the start codon AUG.
func IsStart(codon string) bool {
	return codon == startCodon
}

// IsStop reports whether codon is one of UAA, UAG, UGA.
func IsStop(codon string) bool {
	return AminoAcid(codon) == Stop
}

// StartCodons returns the start codons of the standard code.
func StartCodons() []string {
	return []string{startCodon}
}

// StopCodons returns the stop codons of the standard code.
func StopCodons() []string {
	return []string{"UAA", "UAG", "UGA"}
}

// Codons returns the 64 codons of the standard code in lexical order.
func Codons() []string {
	codons := make([]string, 0, len(standard))
	for codon := range standard {
		codons = append(codons, codon)
	}
	sort.Strings(codons)
	return codons
}
