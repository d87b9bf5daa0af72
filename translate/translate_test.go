package translate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/feliixx/godogma/translate"
)

func TestDirect(t *testing.T) {

	tests := []struct {
		name     string
		rna      string
		expected string
	}{
		{"stops at first stop codon", "AUGUAAGCU", "M"},
		{"no stop codon", "AUGAAA", "MK"},
		{"unknown codon maps to X", "AUGANA", "MX"},
		{"trailing partial codon dropped", "AUGAA", "M"},
		{"shorter than a codon", "AU", ""},
		{"lowercase", "augaaa", "MK"},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			protein, err := translate.Direct(test.rna)
			if err != nil {
				t.Fatalf("fail to translate %q: %v", test.rna, err)
			}
			if want, got := test.expected, protein; want != got {
				t.Errorf("expected %q but got %q", want, got)
			}
		})
	}
}

func TestTranslateErrors(t *testing.T) {

	if _, err := translate.Direct(""); !errors.Is(err, translate.ErrEmptySequence) {
		t.Errorf("expected ErrEmptySequence but got %v", err)
	}
	if _, err := translate.Direct("   "); !errors.Is(err, translate.ErrEmptySequence) {
		t.Errorf("expected ErrEmptySequence but got %v", err)
	}
	// thymine is not part of the RNA alphabet
	if _, err := translate.Direct("ATGAAA"); !errors.Is(err, translate.ErrInvalidSequence) {
		t.Errorf("expected ErrInvalidSequence but got %v", err)
	}
	if _, err := translate.WithORF("AUG!AA"); !errors.Is(err, translate.ErrInvalidSequence) {
		t.Errorf("expected ErrInvalidSequence but got %v", err)
	}
	if _, err := translate.CodonUsage(""); !errors.Is(err, translate.ErrEmptySequence) {
		t.Errorf("expected ErrEmptySequence but got %v", err)
	}
}

func TestWithORF(t *testing.T) {

	tests := []struct {
		name     string
		rna      string
		expected string
	}{
		{"start at offset 0", "AUGAAAUAA", "MK"},
		{"start at any offset", "GGAUGAAAUAA", "MK"},
		{"no stop codon", "AUGAA", "M"},
		{"only first start codon used", "AUGUAAAUGAAAUAA", "M"},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			protein, err := translate.WithORF(test.rna)
			if err != nil {
				t.Fatalf("fail to translate %q: %v", test.rna, err)
			}
			if want, got := test.expected, protein; want != got {
				t.Errorf("expected %q but got %q", want, got)
			}
		})
	}

	_, err := translate.WithORF("UUUGGGCCC")
	if !errors.Is(err, translate.ErrNoORF) {
		t.Errorf("expected ErrNoORF but got %v", err)
	}
}

func TestCodonUsage(t *testing.T) {

	usage, err := translate.CodonUsage("AUGAAA")
	if err != nil {
		t.Fatalf("fail to count codons: %v", err)
	}
	if len(usage) != 2 || usage["AUG"] != 1 || usage["AAA"] != 1 {
		t.Errorf("unexpected usage: %v", usage)
	}

	// trailing partial codon is dropped
	usage, err = translate.CodonUsage("AUGAA")
	if err != nil {
		t.Fatalf("fail to count codons: %v", err)
	}
	if len(usage) != 1 || usage["AUG"] != 1 {
		t.Errorf("unexpected usage: %v", usage)
	}

	usage, err = translate.CodonUsage("AUGAUGUAA")
	if err != nil {
		t.Fatalf("fail to count codons: %v", err)
	}
	if usage["AUG"] != 2 || usage["UAA"] != 1 {
		t.Errorf("unexpected usage: %v", usage)
	}
}

func TestSixFrames(t *testing.T) {

	result, err := translate.SixFrames("ATGGCC")
	if err != nil {
		t.Fatalf("fail to translate six frames: %v", err)
	}

	expectedForward := [3]string{"MA", "W", "G"}
	expectedReverse := [3]string{"GH", "A", "P"}

	if result.Forward != expectedForward {
		t.Errorf("expected forward frames %v but got %v", expectedForward, result.Forward)
	}
	if result.Reverse != expectedReverse {
		t.Errorf("expected reverse frames %v but got %v", expectedReverse, result.Reverse)
	}

	if _, err = translate.SixFrames("AUGGCC"); err == nil {
		t.Error("expected an error for uracil in DNA input")
	}
}

func TestSixFramesDirectNotORFSeeking(t *testing.T) {

	// the forward frame 0 starts before the AUG: a direct translation
	// must not seek the start codon
	result, err := translate.SixFrames("CCCATGAAA")
	if err != nil {
		t.Fatalf("fail to translate six frames: %v", err)
	}
	if want, got := "PMK", result.Forward[0]; want != got {
		t.Errorf("expected %q but got %q", want, got)
	}
	if strings.HasPrefix(result.Forward[1], "M") {
		t.Errorf("frame 1 should not start at the AUG, got %q", result.Forward[1])
	}
}
