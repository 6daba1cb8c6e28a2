package mkdir

import (
	"strings"

	"github.com/shinji-kodama/mkd/internal/model"
)

// rootSeparator marks an absolute raw path.
const rootSeparator = "/"

// WorkdirFunc returns the current working directory. os.Getwd in production.
type WorkdirFunc func() (string, error)

// Join builds the resolved form of raw given an already known working
// directory. Absolute paths are returned unchanged; relative ones are
// appended to cwd with a single separator and are not cleaned, so
// "./a" stays "<cwd>/./a".
func Join(raw, cwd string) string {
	if strings.HasPrefix(raw, rootSeparator) {
		return raw
	}
	return cwd + rootSeparator + raw
}

// Resolve returns the absolute form of raw. The working directory is only
// looked up for relative paths; failing to read it is fatal for the whole
// run and is reported as ExitWorkdirUnavailable.
func Resolve(raw string, getwd WorkdirFunc) (string, error) {
	if strings.HasPrefix(raw, rootSeparator) {
		return raw, nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", model.WrapCLIError(model.ExitWorkdirUnavailable, "couldn't get path", err)
	}
	return Join(raw, cwd), nil
}
