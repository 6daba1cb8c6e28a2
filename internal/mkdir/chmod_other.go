//go:build !unix

package mkdir

import (
	"os"

	"github.com/shinji-kodama/mkd/internal/model"
)

func chmod(path string, mode model.Mode) error {
	return os.Chmod(path, os.FileMode(mode)&os.ModePerm)
}
