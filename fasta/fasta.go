// Package fasta parses sequence records in fasta format.
//
// fasta format is:
//
// >sequenceID some comments on sequence
// ACAGGCAGAGACACGACAGACGACGACACAGGAGCAGACAGCAGCAGACGACCACATATT
// TTTGCGGTCACATGACGACTTCGGCAGCGA
//
// see https://blast.ncbi.nlm.nih.gov/Blast.cgi?CMD=Web&PAGE_TYPE=BlastDocs&DOC_TYPE=BlastHelp
// section 1 for details
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrFormat is returned when the input does not follow the fasta
// format: missing '>' marker, empty header or missing sequence.
var ErrFormat = errors.New("invalid fasta format")

// Record is a single parsed fasta record. Sequence is uppercase with
// all whitespace stripped.
type Record struct {
	ID          string
	Description string
	Header      string // full header line, without the '>' marker
	Sequence    string
}

// Parse parses the first record of a fasta document.
func Parse(text string) (Record, error) {

	records, err := ParseAll(text)
	if err != nil {
		return Record{}, err
	}
	return records[0], nil
}

// ParseAll parses a fasta document holding one or more records.
// Sequence lines are buffered until the next '>' marker or the end of
// input. It fails with ErrFormat if no valid record results.
func ParseAll(text string) ([]Record, error) {

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrFormat)
	}

	var records []Record
	var current Record
	var seq strings.Builder
	inRecord := false

	flush := func() error {
		if !inRecord {
			return nil
		}
		if seq.Len() == 0 {
			return fmt.Errorf("%w: record %q has no sequence", ErrFormat, current.ID)
		}
		current.Sequence = seq.String()
		records = append(records, current)
		seq.Reset()
		return nil
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			header := strings.TrimSpace(line[1:])
			if header == "" {
				return nil, fmt.Errorf("%w: empty header", ErrFormat)
			}
			id, description := splitHeader(header)
			current = Record{ID: id, Description: description, Header: header}
			inRecord = true
			continue
		}

		if !inRecord {
			return nil, fmt.Errorf("%w: sequence data before '>' marker", ErrFormat)
		}
		seq.WriteString(stripSpaces(strings.ToUpper(line)))
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no record found", ErrFormat)
	}
	return records, nil
}

// ParseReader slurps r and parses its content with ParseAll.
func ParseReader(r io.Reader) ([]Record, error) {

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseAll(string(data))
}

// splitHeader splits a header on the first whitespace run into an ID
// and a description. The description is empty if the header holds a
// single token.
func splitHeader(header string) (id, description string) {

	fields := strings.Fields(header)
	id = fields[0]
	description = strings.TrimSpace(strings.TrimPrefix(header, id))
	return id, description
}

func stripSpaces(line string) string {

	if !strings.ContainsAny(line, " \t") {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); i++ {
		if line[i] == ' ' || line[i] == '\t' {
			continue
		}
		b.WriteByte(line[i])
	}
	return b.String()
}
