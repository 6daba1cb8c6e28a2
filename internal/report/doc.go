// Package report turns creation outcomes into user-facing output.
//
// Two sinks are provided. TextReporter writes one colored message per
// outcome as soon as it arrives, honoring the --no-error and --verbose
// flags. StructuredReporter collects a record for every path and writes
// them as JSON or YAML once the run is over.
//
// Colors come from github.com/fatih/color and are switched per reporter,
// never through the package-global color.NoColor, so tests and callers
// can decide independently of the terminal.
package report
