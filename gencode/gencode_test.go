package gencode_test

import (
	"testing"

	"github.com/feliixx/godogma/gencode"
)

func TestAminoAcid(t *testing.T) {

	tests := []struct {
		codon    string
		expected byte
	}{
		{"AUG", 'M'},
		{"UUU", 'F'},
		{"UGG", 'W'},
		{"GCA", 'A'},
		{"CGU", 'R'},
		{"UAA", '*'},
		{"UAG", '*'},
		{"UGA", '*'},
		{"ANA", 'X'},
		{"NNN", 'X'},
		{"ATG", 'X'}, // DNA codon, not part of the RNA table
		{"", 'X'},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.codon, func(t *testing.T) {
			if want, got := test.expected, gencode.AminoAcid(test.codon); want != got {
				t.Errorf("expected %c but got %c", want, got)
			}
		})
	}
}

func TestStartAndStop(t *testing.T) {

	if !gencode.IsStart("AUG") {
		t.Error("AUG should be a start codon")
	}
	if gencode.IsStart("GUG") {
		t.Error("GUG should not be a start codon")
	}
	for _, codon := range gencode.StopCodons() {
		if !gencode.IsStop(codon) {
			t.Errorf("%s should be a stop codon", codon)
		}
	}
	if gencode.IsStop("UGG") {
		t.Error("UGG should not be a stop codon")
	}
	if want, got := 1, len(gencode.StartCodons()); want != got {
		t.Errorf("expected %d start codon but got %d", want, got)
	}
}

func TestCodons(t *testing.T) {

	codons := gencode.Codons()
	if want, got := 64, len(codons); want != got {
		t.Fatalf("expected %d codons but got %d", want, got)
	}
	for i := 1; i < len(codons); i++ {
		if codons[i-1] >= codons[i] {
			t.Fatalf("codons not sorted: %s before %s", codons[i-1], codons[i])
		}
	}
}

func BenchmarkAminoAcid(b *testing.B) {

	codons := gencode.Codons()
	for n := 0; n < b.N; n++ {
		gencode.AminoAcid(codons[n%len(codons)])
	}
}
