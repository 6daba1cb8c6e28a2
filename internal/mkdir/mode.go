package mkdir

import (
	"github.com/shinji-kodama/mkd/internal/model"
)

// ParseMode parses the --mode value. An invalid value aborts the run
// before any directory is created.
func ParseMode(s string) (model.Mode, error) {
	mode, err := model.ParseMode(s)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitInvalidMode, "error parsing mode", err)
	}
	return mode, nil
}

// ApplyMode sets the permission bits of the resolved path to exactly mode.
// Any failure aborts the run.
func ApplyMode(resolved string, mode model.Mode) error {
	if err := chmod(resolved, mode); err != nil {
		return model.WrapCLIError(model.ExitModeApplyFailed, "couldn't set permission", err)
	}
	return nil
}
