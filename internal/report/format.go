package report

import (
	"fmt"
	"strings"
)

// Format selects how outcomes are rendered.
type Format string

const (
	// FormatText prints colored human-readable messages inline.
	FormatText Format = "text"

	// FormatJSON prints a JSON document after the run.
	FormatJSON Format = "json"

	// FormatYAML prints a YAML document after the run.
	FormatYAML Format = "yaml"
)

// String returns the string representation of Format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks whether the Format value is one of the predefined formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// IsStructured returns true for the machine-readable formats.
func (f Format) IsStructured() bool {
	return f == FormatJSON || f == FormatYAML
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %q (valid: text, json, yaml)", s)
	}
	return format, nil
}
