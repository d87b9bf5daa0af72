// Package report renders an analysis summary as a standalone HTML
// document: statistics grid, sequence boxes and ORF table.
package report

import (
	"html/template"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/feliixx/godogma/analysis"
	"github.com/feliixx/godogma/seqstats"
)

// max line size for sequence blocks
const maxLineSize = 60

type codonCount struct {
	Codon string
	Count int
}

type reportData struct {
	Summary    *analysis.Summary
	Nucleotide *seqstats.NucleotideStats
	Protein    *seqstats.ProteinStats
	CodonUsage []codonCount
	ReportID   string
	Generated  string
}

var reportTemplate = template.Must(template.New("report").
	Funcs(template.FuncMap{"wrap": wrapSequence}).
	Parse(reportHTML))

// Render writes the HTML report for summary to w. Each report carries
// a unique ID and a generation timestamp in its footer.
func Render(w io.Writer, summary *analysis.Summary) error {
	return render(w, summary, time.Now())
}

func render(w io.Writer, summary *analysis.Summary, now time.Time) error {

	data := reportData{
		Summary:   summary,
		ReportID:  uuid.NewString(),
		Generated: now.Format(time.RFC1123),
	}

	switch stats := summary.Stats.(type) {
	case *seqstats.NucleotideStats:
		data.Nucleotide = stats
	case *seqstats.ProteinStats:
		data.Protein = stats
	}

	for codon, count := range summary.CodonUsage {
		data.CodonUsage = append(data.CodonUsage, codonCount{Codon: codon, Count: count})
	}
	sort.Slice(data.CodonUsage, func(i, j int) bool {
		return data.CodonUsage[i].Codon < data.CodonUsage[j].Codon
	})

	return reportTemplate.Execute(w, data)
}

// wrapSequence reflows a sequence in lines of at most maxLineSize
// characters, the usual fasta line width.
func wrapSequence(seq string) string {

	var b strings.Builder
	for i := 0; i < len(seq); i += maxLineSize {
		end := i + maxLineSize
		if end > len(seq) {
			end = len(seq)
		}
		b.WriteString(seq[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}
