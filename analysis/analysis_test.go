package analysis_test

import (
	"errors"
	"testing"

	"github.com/feliixx/godogma/analysis"
	"github.com/feliixx/godogma/fasta"
	"github.com/feliixx/godogma/seqstats"
	"github.com/feliixx/godogma/seqtype"
)

func TestAnalyzeDNA(t *testing.T) {

	record := fasta.Record{ID: "gene1", Header: "gene1 test gene", Sequence: "ATGAAATAA"}
	summary, err := analysis.Analyze(record, analysis.Options{})
	if err != nil {
		t.Fatalf("fail to analyze record: %v", err)
	}

	if summary.Type != seqtype.DNA {
		t.Errorf("expected DNA but got %s", summary.Type)
	}
	if want, got := "AUGAAAUAA", summary.RNA; want != got {
		t.Errorf("expected RNA %q but got %q", want, got)
	}
	if !summary.ORFFound {
		t.Error("expected an ORF to be found")
	}
	if want, got := "MK", summary.Protein; want != got {
		t.Errorf("expected protein %q but got %q", want, got)
	}
	if want, got := 1, len(summary.ORFs); want != got {
		t.Errorf("expected %d ORF but got %d", want, got)
	}
	if want, got := 1, summary.CodonUsage["AUG"]; want != got {
		t.Errorf("expected %d AUG codon but got %d", want, got)
	}
	if _, ok := summary.Stats.(*seqstats.NucleotideStats); !ok {
		t.Errorf("expected nucleotide statistics but got %T", summary.Stats)
	}
	if summary.SixFrames != nil {
		t.Error("six-frame translation should be off by default")
	}
}

func TestAnalyzeRNA(t *testing.T) {

	record := fasta.Record{ID: "rna1", Sequence: "AUGAAAUAA"}
	summary, err := analysis.Analyze(record, analysis.Options{})
	if err != nil {
		t.Fatalf("fail to analyze record: %v", err)
	}

	if summary.Type != seqtype.RNA {
		t.Errorf("expected RNA but got %s", summary.Type)
	}
	if want, got := "ATGAAATAA", summary.DNA; want != got {
		t.Errorf("expected DNA %q but got %q", want, got)
	}
	if want, got := "MK", summary.Protein; want != got {
		t.Errorf("expected protein %q but got %q", want, got)
	}
}

func TestAnalyzeDNAWithoutStartCodon(t *testing.T) {

	record := fasta.Record{ID: "gene2", Sequence: "TTTGGGCCC"}
	summary, err := analysis.Analyze(record, analysis.Options{})
	if err != nil {
		t.Fatalf("fail to analyze record: %v", err)
	}
	if summary.ORFFound {
		t.Error("no ORF should be found")
	}
	if summary.Protein != "" {
		t.Errorf("expected empty protein but got %q", summary.Protein)
	}
	if len(summary.ORFs) != 0 {
		t.Errorf("expected no ORF but got %v", summary.ORFs)
	}
}

func TestAnalyzeProtein(t *testing.T) {

	record := fasta.Record{ID: "prot1", Sequence: "MFKGDWIV"}
	summary, err := analysis.Analyze(record, analysis.Options{})
	if err != nil {
		t.Fatalf("fail to analyze record: %v", err)
	}

	if summary.Type != seqtype.Protein {
		t.Errorf("expected protein but got %s", summary.Type)
	}
	if summary.DNA != "" || summary.RNA != "" {
		t.Error("protein records should not carry nucleic sequences")
	}
	if _, ok := summary.Stats.(*seqstats.ProteinStats); !ok {
		t.Errorf("expected protein statistics but got %T", summary.Stats)
	}
}

func TestAnalyzeSixFrames(t *testing.T) {

	record := fasta.Record{ID: "gene3", Sequence: "ATGGCCTAA"}
	summary, err := analysis.Analyze(record, analysis.Options{SixFrames: true})
	if err != nil {
		t.Fatalf("fail to analyze record: %v", err)
	}
	if summary.SixFrames == nil {
		t.Fatal("expected a six-frame translation")
	}
	if want, got := "MA", summary.SixFrames.Forward[0]; want != got {
		t.Errorf("expected frame 0 %q but got %q", want, got)
	}
}

func TestAnalyzeUnknownType(t *testing.T) {

	record := fasta.Record{ID: "weird", Sequence: "ACGNACG"}
	_, err := analysis.Analyze(record, analysis.Options{})
	if !errors.Is(err, analysis.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported but got %v", err)
	}
}

func TestAnalyzeAll(t *testing.T) {

	records, err := fasta.ParseAll(">gene1\nATGAAATAA\n>prot1\nMFKGDWIV\n")
	if err != nil {
		t.Fatalf("fail to parse records: %v", err)
	}

	summaries, err := analysis.AnalyzeAll(records, analysis.Options{})
	if err != nil {
		t.Fatalf("fail to analyze records: %v", err)
	}
	if want, got := 2, len(summaries); want != got {
		t.Fatalf("expected %d summaries but got %d", want, got)
	}
	if summaries[0].Type != seqtype.DNA || summaries[1].Type != seqtype.Protein {
		t.Errorf("unexpected types: %s, %s", summaries[0].Type, summaries[1].Type)
	}
}
