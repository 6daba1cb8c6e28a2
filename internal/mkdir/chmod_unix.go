//go:build unix

package mkdir

import (
	"io/fs"

	"golang.org/x/sys/unix"

	"github.com/shinji-kodama/mkd/internal/model"
)

// chmod hands the raw bits to chmod(2). os.Chmod would translate through
// os.FileMode and drop setuid/setgid/sticky given as plain octal digits.
func chmod(path string, mode model.Mode) error {
	if err := unix.Chmod(path, uint32(mode)); err != nil {
		return &fs.PathError{Op: "chmod", Path: path, Err: err}
	}
	return nil
}
