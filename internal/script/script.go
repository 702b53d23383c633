// Package script extracts titled SQL statements from an annotated script.
// A `--` comment line sets the title for the statement that follows; a
// statement spans one or more lines and ends with a line whose trimmed
// form ends in `;`.
package script

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/leapstack-labs/sqlchart/internal/diag"
)

// DefaultTitle is used for statements with no preceding comment.
const DefaultTitle = "Untitled Chart"

const (
	commentMarker = "--"
	terminator    = ";"
)

// Directive is one (title, statement) pair extracted from a script.
// Statements are stored without their trailing terminator.
type Directive struct {
	Title     string
	Statement string
}

// Extractor parses scripts into ordered directives. Parsing never fails:
// malformed input yields fewer or odd directives, and a missing trailing
// terminator is recovered with a diagnostic.
type Extractor struct {
	sink diag.Sink
}

// NewExtractor creates an extractor reporting to the given sink.
func NewExtractor(sink diag.Sink) *Extractor {
	if sink == nil {
		sink = diag.Discard{}
	}
	return &Extractor{sink: sink}
}

// ParseFile reads and parses a script file.
func (e *Extractor) ParseFile(path string) ([]Directive, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return e.Parse(string(content)), nil
}

// Parse extracts directives from script text in order of appearance.
func (e *Extractor) Parse(content string) []Directive {
	var directives []Directive

	title := DefaultTitle
	var buf []string

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())

		// A comment line retitles the next statement and discards any
		// half-built statement before it.
		if strings.HasPrefix(trimmed, commentMarker) {
			title = strings.TrimSpace(strings.TrimPrefix(trimmed, commentMarker))
			buf = buf[:0]
			continue
		}

		if trimmed == "" {
			continue
		}

		buf = append(buf, trimmed)

		if strings.HasSuffix(trimmed, terminator) {
			directives = append(directives, newDirective(title, buf))
			title = DefaultTitle
			buf = buf[:0]
		}
	}

	// Leniency: a script may end without a trailing terminator; the
	// in-progress statement is still emitted.
	if len(buf) > 0 {
		d := newDirective(title, buf)
		diag.Emitf(e.sink, diag.SeverityWarn, diag.KindParseLeniency,
			"script ended without statement terminator",
			"title", d.Title)
		directives = append(directives, d)
	}

	return directives
}

func newDirective(title string, lines []string) Directive {
	stmt := strings.Join(lines, " ")
	stmt = strings.TrimSpace(strings.TrimSuffix(stmt, terminator))
	return Directive{Title: title, Statement: stmt}
}
