// Package seqtype infers the molecule type of a sequence from its
// alphabet.
package seqtype

import "strings"

// Type is the molecule type of a sequence.
type Type int

const (
	Unknown Type = iota
	DNA
	RNA
	Protein
)

func (t Type) String() string {
	switch t {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Protein:
		return "protein"
	}
	return "unknown"
}

const (
	dnaAlphabet     = "ACGTN"
	rnaAlphabet     = "ACGUN"
	nucleicAlphabet = "ACGTUN"
	proteinAlphabet = "ACDEFGHIKLMNPQRSTVWY*X"
)

// Detect classifies a sequence by alphabet, checking DNA first, then
// RNA, then protein. Sequences valid under several interpretations,
// for example a pure A/C/G/N run with neither T nor U, stay Unknown.
func Detect(sequence string) Type {

	s := strings.ToUpper(sequence)
	hasT := strings.ContainsRune(s, 'T')
	hasU := strings.ContainsRune(s, 'U')

	switch {
	case hasT && !hasU && onlyIn(s, dnaAlphabet):
		return DNA
	case hasU && !hasT && onlyIn(s, rnaAlphabet):
		return RNA
	case !onlyIn(s, nucleicAlphabet) && onlyIn(s, proteinAlphabet):
		return Protein
	}
	return Unknown
}

func onlyIn(s, alphabet string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
