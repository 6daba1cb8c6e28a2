package mkdir

import (
	"context"
	"os"

	"github.com/shinji-kodama/mkd/internal/model"
)

// Reporter receives one Outcome per processed path, in input order.
type Reporter interface {
	Report(outcome model.Outcome)
}

// Runner executes a Request path by path.
type Runner struct {
	// Getwd looks up the working directory for relative paths.
	Getwd WorkdirFunc

	// Reporter is told about every creation attempt.
	Reporter Reporter

	// Debugf, when set, receives trace lines (resolved paths, applied modes).
	Debugf func(format string, args ...interface{})
}

// NewRunner creates a Runner that resolves against os.Getwd.
func NewRunner(reporter Reporter) *Runner {
	return &Runner{
		Getwd:    os.Getwd,
		Reporter: reporter,
	}
}

// Run processes every path of req sequentially. It returns nil when all
// paths were attempted, even if some of them failed; per-path failures only
// reach the Reporter. A non-nil error is always fatal and stops the run
// before the next path.
//
// The mode is parsed once up front, so an invalid --mode never creates any
// directory. ctx is checked between paths.
func (r *Runner) Run(ctx context.Context, req *model.Request) error {
	var (
		mode    model.Mode
		hasMode = req.HasMode()
	)
	if hasMode {
		parsed, err := ParseMode(req.Mode)
		if err != nil {
			return err
		}
		mode = parsed
	}

	for _, raw := range req.Paths {
		if err := ctx.Err(); err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "interrupted", err)
		}

		resolved, err := Resolve(raw, r.Getwd)
		if err != nil {
			return err
		}
		r.debugf("%s resolved to %s", raw, resolved)

		createErr := Create(raw, req.Parents)
		r.Reporter.Report(model.Outcome{
			Path:     raw,
			Resolved: resolved,
			Kind:     Classify(createErr),
			Err:      createErr,
		})

		if hasMode {
			r.debugf("setting mode %s on %s", mode, resolved)
			if err := ApplyMode(resolved, mode); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) debugf(format string, args ...interface{}) {
	if r.Debugf != nil {
		r.Debugf(format, args...)
	}
}
