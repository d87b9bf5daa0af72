// Package analysis wires the full pipeline on a parsed record:
// classify, derive the complementary molecular forms, translate and
// compute statistics. The resulting summary is what the report
// renderer consumes.
package analysis

import (
	"errors"
	"fmt"

	"github.com/feliixx/godogma/fasta"
	"github.com/feliixx/godogma/seqstats"
	"github.com/feliixx/godogma/seqtype"
	"github.com/feliixx/godogma/transcription"
	"github.com/feliixx/godogma/translate"
)

// ErrUnsupported is returned for records whose molecule type can not
// be determined from their alphabet.
var ErrUnsupported = errors.New("unsupported sequence type")

// Options control the per-record analysis.
type Options struct {
	// MinORFLength is the minimum reported ORF length, in amino acids.
	MinORFLength int
	// SixFrames adds the six-frame translation for DNA records.
	SixFrames bool
}

// Summary is the full analysis of a single record.
type Summary struct {
	Record     fasta.Record
	Type       seqtype.Type
	DNA        string
	RNA        string
	Protein    string
	ORFFound   bool
	ORFs       []translate.ORF
	CodonUsage map[string]int
	SixFrames  *translate.SixFrameResult
	Stats      seqstats.Result
}

// Analyze runs the pipeline on a single record. Protein records skip
// the nucleic transforms and the translation engine. A nucleic record
// without a start codon is not an error: its summary simply reports
// no ORF and an empty protein.
func Analyze(record fasta.Record, options Options) (*Summary, error) {

	summary := &Summary{
		Record: record,
		Type:   seqtype.Detect(record.Sequence),
	}

	switch summary.Type {
	case seqtype.DNA:
		summary.DNA = record.Sequence
		rna, err := transcription.Transcribe(record.Sequence, true)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", record.ID, err)
		}
		summary.RNA = rna
	case seqtype.RNA:
		summary.RNA = record.Sequence
		dna, err := transcription.ReverseTranscribe(record.Sequence, true)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", record.ID, err)
		}
		summary.DNA = dna
	case seqtype.Protein:
		summary.Protein = record.Sequence
		summary.Stats = seqstats.Calculate(summary.Type, record.Sequence)
		return summary, nil
	default:
		return nil, fmt.Errorf("record %s: %w", record.ID, ErrUnsupported)
	}

	protein, err := translate.WithORF(summary.RNA)
	switch {
	case err == nil:
		summary.Protein = protein
		summary.ORFFound = true
	case errors.Is(err, translate.ErrNoORF):
	default:
		return nil, fmt.Errorf("record %s: %w", record.ID, err)
	}

	summary.ORFs, err = translate.FindAllORFs(summary.RNA, options.MinORFLength)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", record.ID, err)
	}
	summary.CodonUsage, err = translate.CodonUsage(summary.RNA)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", record.ID, err)
	}

	if options.SixFrames && summary.Type == seqtype.DNA {
		frames, err := translate.SixFrames(summary.DNA)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", record.ID, err)
		}
		summary.SixFrames = &frames
	}

	summary.Stats = seqstats.Calculate(summary.Type, record.Sequence)
	return summary, nil
}

// AnalyzeAll runs the pipeline on each record. Records are fully
// independent, the first failing one aborts the batch.
func AnalyzeAll(records []fasta.Record, options Options) ([]*Summary, error) {

	summaries := make([]*Summary, 0, len(records))
	for _, record := range records {
		summary, err := Analyze(record, options)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
