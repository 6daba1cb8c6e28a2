package mkdir

import (
	"errors"
	"io/fs"
	"os"

	"github.com/shinji-kodama/mkd/internal/model"
)

// dirPerm is the permission requested at creation time. The process umask
// still applies; an explicit --mode is set afterwards with ApplyMode.
const dirPerm = 0o777

// Create makes the directory named by the raw path. With parents set, every
// missing ancestor is created too and an existing directory is not an error.
// Without it only the last component is created and its parent must exist.
//
// In both modes a non-directory already sitting at the target path is
// reported as fs.ErrExist.
func Create(raw string, parents bool) error {
	if !parents {
		return os.Mkdir(raw, dirPerm)
	}

	err := os.MkdirAll(raw, dirPerm)
	if err == nil {
		return nil
	}
	// MkdirAll reports a file at the target as ENOTDIR.
	if info, statErr := os.Lstat(raw); statErr == nil && !info.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: raw, Err: fs.ErrExist}
	}
	return err
}

// Classify maps the error returned by Create onto the outcome taxonomy.
// A nil error is always OutcomeSuccess.
func Classify(err error) model.OutcomeKind {
	switch {
	case err == nil:
		return model.OutcomeSuccess
	case errors.Is(err, fs.ErrPermission):
		return model.OutcomePermissionDenied
	case errors.Is(err, fs.ErrExist):
		return model.OutcomeAlreadyExists
	case errors.Is(err, fs.ErrNotExist):
		return model.OutcomeNotFound
	default:
		return model.OutcomeOther
	}
}
