package translate

import (
	"sort"

	"github.com/feliixx/godogma/gencode"
)

// ORF is an open reading frame found in an RNA sequence. Start and End
// are nucleotide offsets, End pointing just after the stop codon.
// Length counts the amino acids of Protein, leading methionine
// included, so End-Start == 3*(Length+1).
type ORF struct {
	Frame   int
	Start   int
	End     int
	Length  int
	Protein string
}

// FindAllORFs scans the three reading frames independently for open
// reading frames of at least minLength amino acids. Within a frame the
// scan advances codon by codon; once an ORF is consumed the scan
// resumes right after its stop codon, so nested start codons inside a
// translated region are not re-examined. An open ORF that reaches the
// end of the sequence without a stop codon is discarded and the scan
// resumes at the codon following its start.
//
// The result is sorted by protein length, longest first; ties keep
// frame order then left-to-right discovery order.
func FindAllORFs(rna string, minLength int) ([]ORF, error) {

	rna, err := checkRNA(rna)
	if err != nil {
		return nil, err
	}

	var orfs []ORF
	for frame := 0; frame < 3; frame++ {

		i := frame
		for i+3 <= len(rna) {

			if !gencode.IsStart(rna[i : i+3]) {
				i += 3
				continue
			}

			orf, terminated := scanORF(rna, frame, i)
			if !terminated {
				i += 3
				continue
			}
			if orf.Length >= minLength {
				orfs = append(orfs, orf)
			}
			i = orf.End
		}
	}

	sort.SliceStable(orfs, func(i, j int) bool {
		return orfs[i].Length > orfs[j].Length
	})
	return orfs, nil
}

// scanORF translates the ORF opening at start until an in-frame stop
// codon. terminated is false when the sequence ends first.
func scanORF(rna string, frame, start int) (orf ORF, terminated bool) {

	protein := []byte{gencode.Start}
	for j := start + 3; j+3 <= len(rna); j += 3 {

		aa := gencode.AminoAcid(rna[j : j+3])
		if aa == gencode.Stop {
			return ORF{
				Frame:   frame,
				Start:   start,
				End:     j + 3,
				Length:  len(protein),
				Protein: string(protein),
			}, true
		}
		protein = append(protein, aa)
	}
	return ORF{}, false
}
