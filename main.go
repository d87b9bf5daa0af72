package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"

	"github.com/feliixx/godogma/analysis"
	"github.com/feliixx/godogma/fasta"
	"github.com/feliixx/godogma/report"
	"github.com/feliixx/godogma/seqstats"
)

const (
	version  = "0.1.0"
	toolName = "godogma"
)

// GlobalOptions struct to store command line args
type GlobalOptions struct {
	Required `group:"required"`
	Options  `group:"optional"`
	General  `group:"general"`
}

// Required struct to store required command line args
type Required struct {
	Sequence string `short:"s" long:"sequence" value-name:"<filename>" description:"Nucleotide or protein sequence(s) filename, fasta format"`
}

// Options struct to store optional command line args
type Options struct {
	Out       string `short:"o" long:"out" value-name:"<filename>" description:"HTML report filename. Records after the first one go to <name>_<n>.html" default:"report.html"`
	MinORF    int    `short:"m" long:"min-orf" value-name:"<n>" description:"Minimum reported ORF length, in amino acids" default:"30"`
	SixFrames bool   `short:"6" long:"six-frames" description:"Also translate the six reading frames of DNA records"`
	Quiet     bool   `short:"q" long:"quiet" description:"Do not print the per-record summary"`
	Verbose   bool   `long:"verbose" description:"Enable debug logging"`
}

// General struct to store general command line args
type General struct {
	Help    bool `short:"h" long:"help" description:"Show this help message"`
	Version bool `short:"v" long:"version" description:"Print the tool version and exit"`
}

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          toolName,
})

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))
)

func run(options GlobalOptions) error {

	if options.Sequence == "" {
		return fmt.Errorf("missing required parameter -s | --sequence, try %s --help for details", toolName)
	}

	data, err := os.ReadFile(options.Sequence)
	if err != nil {
		return err
	}

	records, err := fasta.ParseAll(string(data))
	if err != nil {
		return err
	}
	logger.Debug("records parsed", "count", len(records))

	summaries, err := analysis.AnalyzeAll(records, analysis.Options{
		MinORFLength: options.MinORF,
		SixFrames:    options.SixFrames,
	})
	if err != nil {
		return err
	}

	for i, summary := range summaries {

		name := outputName(options.Out, i)
		out, err := os.Create(name)
		if err != nil {
			return err
		}
		err = report.Render(out, summary)
		out.Close()
		if err != nil {
			return fmt.Errorf("fail to render report for record %s: %w", summary.Record.ID, err)
		}
		logger.Info("report written", "record", summary.Record.ID, "file", name)

		if !options.Quiet {
			fmt.Println(summaryView(summary))
		}
	}
	return nil
}

// outputName derives the report filename of the i-th record:
// report.html, report_2.html, report_3.html...
func outputName(out string, i int) string {

	if i == 0 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(out, ext), i+1, ext)
}

func summaryView(summary *analysis.Summary) string {

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", summary.Record.ID, summary.Type)))
	b.WriteByte('\n')

	line := func(label, value string) {
		b.WriteString(labelStyle.Render(label+":") + " " + value + "\n")
	}

	switch stats := summary.Stats.(type) {
	case *seqstats.NucleotideStats:
		line("length", fmt.Sprintf("%d bp", stats.Length))
		line("GC", fmt.Sprintf("%.2f%%", stats.GCContent))
		line("entropy", fmt.Sprintf("%.3f bits", stats.ShannonEntropy))
		line("ORFs", fmt.Sprintf("%d", len(summary.ORFs)))
		if summary.ORFFound {
			line("protein", fmt.Sprintf("%d aa", len(summary.Protein)))
		} else {
			line("protein", "no start codon")
		}
	case *seqstats.ProteinStats:
		line("length", fmt.Sprintf("%d aa", stats.Length))
		line("MW", fmt.Sprintf("%.2f Da", stats.MolecularWeight))
		line("pI", fmt.Sprintf("%.2f", stats.IsoelectricPoint))
		line("GRAVY", fmt.Sprintf("%.3f", stats.GravyIndex))
	}
	return b.String()
}

func main() {

	var options GlobalOptions
	p := flags.NewParser(&options, flags.Default&^flags.HelpFlag)
	_, err := p.Parse()
	if err != nil {
		fmt.Printf("wrong arguments: %v, try %s --help for more informations\n", err, toolName)
		os.Exit(1)
	}
	if options.Help {
		fmt.Printf("%s version %s\n\n", toolName, version)
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if options.Version {
		fmt.Printf("%s version %s\n", toolName, version)
		os.Exit(0)
	}
	if options.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	err = run(options)
	if err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}
