package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/mkd/internal/model"
)

// Record is the machine-readable form of one outcome.
type Record struct {
	Path     string            `json:"path" yaml:"path"`
	Resolved string            `json:"resolved" yaml:"resolved"`
	Outcome  model.OutcomeKind `json:"outcome" yaml:"outcome"`
	Error    string            `json:"error,omitempty" yaml:"error,omitempty"`
	Mode     string            `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// document is the top-level object written by Flush.
type document struct {
	Directories []Record `json:"directories" yaml:"directories"`
}

// StructuredReporter records every outcome, regardless of --no-error and
// --verbose, and writes them all in one document on Flush.
type StructuredReporter struct {
	out     io.Writer
	format  Format
	mode    string
	records []Record
}

// NewStructuredReporter creates a reporter for FormatJSON or FormatYAML.
// mode is the requested --mode string and is copied into every record;
// pass "" when no mode was given.
func NewStructuredReporter(out io.Writer, format Format, mode string) (*StructuredReporter, error) {
	if !format.IsStructured() {
		return nil, fmt.Errorf("format %q is not a structured format", format)
	}
	return &StructuredReporter{out: out, format: format, mode: mode}, nil
}

// Report records outcome.
func (r *StructuredReporter) Report(outcome model.Outcome) {
	rec := Record{
		Path:     outcome.Path,
		Resolved: outcome.Resolved,
		Outcome:  outcome.Kind,
		Mode:     r.mode,
	}
	if outcome.Err != nil {
		rec.Error = outcome.Err.Error()
	}
	r.records = append(r.records, rec)
}

// Flush writes the collected records. An empty run still produces a
// document with an empty list.
func (r *StructuredReporter) Flush() error {
	doc := document{Directories: r.records}
	if doc.Directories == nil {
		doc.Directories = []Record{}
	}

	switch r.format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		_, err = fmt.Fprintln(r.out, string(data))
		return err

	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("format %q is not a structured format", r.format)
	}
}
