// Package osfilesystem implements ports.FileSystem on the local disk.
package osfilesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/user/svcdec/pkg/ports"
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// New creates a FileSystem with 0755 directories and 0644 files.
func New() *FileSystem {
	return &FileSystem{dirPerm: 0755, filePerm: 0644}
}

func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *FileSystem) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, f.dirPerm); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, f.filePerm)
}

func (f *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

var _ ports.FileSystem = (*FileSystem)(nil)
