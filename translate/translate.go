// Package translate implements the translation engine: direct RNA
// translation, ORF-seeking translation, exhaustive ORF discovery
// across the three reading frames, six-frame translation and codon
// usage counting.
//
// All functions are pure and share the read-only codon table of the
// gencode package.
package translate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/feliixx/godogma/gencode"
	"github.com/feliixx/godogma/seqtype"
	"github.com/feliixx/godogma/transcription"
)

var (
	// ErrEmptySequence is returned when there is nothing to translate.
	ErrEmptySequence = errors.New("no sequence to translate")
	// ErrInvalidSequence is returned when a sequence holds a character
	// outside the RNA alphabet. Well-formed codons that are not part
	// of the standard code never fail, they translate to 'X'.
	ErrInvalidSequence = errors.New("invalid RNA sequence")
	// ErrNoORF is returned by WithORF when the sequence holds no start
	// codon. It is distinct from an empty protein.
	ErrNoORF = errors.New("no open reading frame found")
)

const rnaBases = "ACGUN"

func checkRNA(rna string) (string, error) {

	if strings.TrimSpace(rna) == "" {
		return "", ErrEmptySequence
	}
	rna = strings.ToUpper(rna)
	for i := 0; i < len(rna); i++ {
		if strings.IndexByte(rnaBases, rna[i]) < 0 {
			return "", fmt.Errorf("%w: unexpected %q at position %d", ErrInvalidSequence, rna[i], i)
		}
	}
	return rna, nil
}

// Direct translates rna codon by codon from offset 0, stopping at the
// first stop codon or when fewer than 3 bases remain.
func Direct(rna string) (string, error) {

	rna, err := checkRNA(rna)
	if err != nil {
		return "", err
	}
	return direct(rna), nil
}

func direct(rna string) string {

	var protein strings.Builder
	for i := 0; i+3 <= len(rna); i += 3 {
		aa := gencode.AminoAcid(rna[i : i+3])
		if aa == gencode.Stop {
			break
		}
		protein.WriteByte(aa)
	}
	return protein.String()
}

// WithORF locates the first start codon, at any byte offset, and
// translates from there in that codon's frame until a stop codon or
// the end of the sequence. Start codons after the first one are
// ignored. It fails with ErrNoORF when no start codon exists.
func WithORF(rna string) (string, error) {

	rna, err := checkRNA(rna)
	if err != nil {
		return "", err
	}

	for i := 0; i+3 <= len(rna); i++ {
		if !gencode.IsStart(rna[i : i+3]) {
			continue
		}
		var protein strings.Builder
		protein.WriteByte(gencode.Start)
		for j := i + 3; j+3 <= len(rna); j += 3 {
			aa := gencode.AminoAcid(rna[j : j+3])
			if aa == gencode.Stop {
				break
			}
			protein.WriteByte(aa)
		}
		return protein.String(), nil
	}
	return "", ErrNoORF
}

// SixFrameResult holds the direct translation of the three forward
// frames and of the three frames of the reverse-complement strand.
type SixFrameResult struct {
	Forward [3]string
	Reverse [3]string
}

// SixFrames transcribes a DNA sequence and its reverse complement to
// RNA and translates both strands directly (not ORF-seeking) at
// offsets 0, 1 and 2.
func SixFrames(dna string) (SixFrameResult, error) {

	var result SixFrameResult

	forward, err := transcription.Transcribe(dna, true)
	if err != nil {
		return result, fmt.Errorf("six-frame translation: %w", err)
	}
	reverse, err := transcription.Transcribe(transcription.ReverseComplement(dna, seqtype.DNA), true)
	if err != nil {
		return result, fmt.Errorf("six-frame translation: %w", err)
	}

	for frame := 0; frame < 3 && frame <= len(forward); frame++ {
		result.Forward[frame] = direct(forward[frame:])
		result.Reverse[frame] = direct(reverse[frame:])
	}
	return result, nil
}

// CodonUsage tallies the full, non-overlapping codons of rna. A
// trailing partial codon of 1 or 2 leftover bases is ignored.
func CodonUsage(rna string) (map[string]int, error) {

	rna, err := checkRNA(rna)
	if err != nil {
		return nil, err
	}

	usage := make(map[string]int)
	for i := 0; i+3 <= len(rna); i += 3 {
		usage[rna[i:i+3]]++
	}
	return usage, nil
}
