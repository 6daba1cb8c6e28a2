package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/shinji-kodama/mkd/internal/model"
)

// Fixed texts shown after the failure line.
const (
	permissionHint = "Potential Fixes:\n" +
		"- Change folder owner or folder permissions\n" +
		"- Run with Sudo"
	parentsHint = "Tip: Use -p or --parents to automatically create parent folders."
)

// Options controls which outcomes produce a message.
type Options struct {
	// NoError hides the "already exists" message.
	NoError bool

	// Verbose shows the success message.
	Verbose bool

	// Color enables ANSI colors.
	Color bool
}

// TextReporter writes human-readable messages to out, one per reportable
// outcome, at the moment the outcome is reported.
type TextReporter struct {
	out  io.Writer
	opts Options

	path    *color.Color // the raw path and the success line
	failure *color.Color // the failure headline
	hint    *color.Color // remediation hints
}

// NewTextReporter creates a TextReporter writing to out.
func NewTextReporter(out io.Writer, opts Options) *TextReporter {
	r := &TextReporter{
		out:     out,
		opts:    opts,
		path:    color.New(color.FgHiYellow),
		failure: color.New(color.FgRed),
		hint:    color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{r.path, r.failure, r.hint} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Report prints the message for outcome, if any.
func (r *TextReporter) Report(outcome model.Outcome) {
	msg, ok := r.message(outcome)
	if !ok {
		return
	}
	fmt.Fprint(r.out, msg)
}

// message builds the text for outcome. The bool is false when the outcome
// is silent under the current options.
func (r *TextReporter) message(o model.Outcome) (string, bool) {
	switch o.Kind {
	case model.OutcomeSuccess:
		if !r.opts.Verbose {
			return "", false
		}
		return r.path.Sprintf("%s: Folder created successfully", o.Path) + "\n", true

	case model.OutcomePermissionDenied:
		return r.headline(o.Path, "Permission denied") + "\n" +
			r.hint.Sprint(permissionHint) + "\n", true

	case model.OutcomeAlreadyExists:
		if r.opts.NoError {
			return "", false
		}
		return r.headline(o.Path, "Folder already exists"), true

	case model.OutcomeNotFound:
		return r.headline(o.Path, "Parent folder doesn't exist") + "\n" +
			r.hint.Sprint(parentsHint) + "\n", true

	case model.OutcomeOther:
		return fmt.Sprintf("%s: Unknown error: %v\n", r.path.Sprint(o.Path), o.Err), true

	default:
		return fmt.Sprintf("%s: Unknown error: unexpected outcome %q\n", r.path.Sprint(o.Path), o.Kind), true
	}
}

func (r *TextReporter) headline(path, text string) string {
	return r.path.Sprint(path) + ": " + r.failure.Sprint(text) + "\n"
}
