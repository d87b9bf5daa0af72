// Package transcription converts nucleic acid sequences between their
// complementary molecular forms: DNA to RNA, RNA back to DNA,
// complement and reverse complement.
package transcription

import (
	"errors"
	"fmt"
	"strings"

	"github.com/feliixx/godogma/seqtype"
)

var (
	// ErrEmptySequence is returned when there is nothing to transcribe.
	ErrEmptySequence = errors.New("empty sequence")
	// ErrInvalidBase is returned when a sequence holds a base outside
	// the expected nucleotide alphabet.
	ErrInvalidBase = errors.New("invalid base")
)

const (
	dnaBases = "ATGCN"
	rnaBases = "AUGCN"
)

// complement lookup tables. A zero entry means the character has no
// defined complement and passes through unchanged.
var dnaComplement, rnaComplement [256]byte

func init() {
	dnaComplement['A'] = 'T'
	dnaComplement['T'] = 'A'
	dnaComplement['G'] = 'C'
	dnaComplement['C'] = 'G'
	dnaComplement['N'] = 'N'

	rnaComplement['A'] = 'U'
	rnaComplement['U'] = 'A'
	rnaComplement['G'] = 'C'
	rnaComplement['C'] = 'G'
	rnaComplement['N'] = 'N'
}

// Transcribe converts a DNA sequence to the corresponding RNA sequence
// (T -> U). The sequence is uppercased first. When validate is true,
// any character outside the DNA alphabet fails with ErrInvalidBase,
// literal whitespace excepted.
func Transcribe(dna string, validate bool) (string, error) {

	dna = strings.ToUpper(dna)
	if strings.TrimSpace(dna) == "" {
		return "", fmt.Errorf("can not transcribe: %w", ErrEmptySequence)
	}
	if validate {
		if err := checkBases(dna, dnaBases); err != nil {
			return "", fmt.Errorf("can not transcribe: %w", err)
		}
	}
	return strings.ReplaceAll(dna, "T", "U"), nil
}

// ReverseTranscribe converts an RNA sequence back to DNA (U -> T),
// with the same validation discipline as Transcribe against the RNA
// alphabet.
func ReverseTranscribe(rna string, validate bool) (string, error) {

	rna = strings.ToUpper(rna)
	if strings.TrimSpace(rna) == "" {
		return "", fmt.Errorf("can not reverse transcribe: %w", ErrEmptySequence)
	}
	if validate {
		if err := checkBases(rna, rnaBases); err != nil {
			return "", fmt.Errorf("can not reverse transcribe: %w", err)
		}
	}
	return strings.ReplaceAll(rna, "U", "T"), nil
}

// Complement returns the position-wise complement of seq:
//
//	A <-> T (A <-> U for RNA)
//	G <-> C
//	N  -> N
//
// Characters without a defined complement pass through unchanged.
func Complement(seq string, t seqtype.Type) string {

	table := &dnaComplement
	if t == seqtype.RNA {
		table = &rnaComplement
	}

	out := []byte(strings.ToUpper(seq))
	for i, b := range out {
		if c := table[b]; c != 0 {
			out[i] = c
		}
	}
	return string(out)
}

// ReverseComplement returns the complement of seq in reverse order,
// the sequence of the opposite strand read 5' to 3'.
func ReverseComplement(seq string, t seqtype.Type) string {

	out := []byte(Complement(seq, t))
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

func checkBases(seq, valid string) error {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case ' ', '\t', '\n', '\r':
			continue
		}
		if strings.IndexByte(valid, seq[i]) < 0 {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidBase, seq[i], i)
		}
	}
	return nil
}
