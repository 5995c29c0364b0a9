package report

import (
	"fmt"

	"github.com/user/svcdec/pkg/ports"
	"github.com/user/svcdec/pkg/session"
)

// Writer writes formatted reports through a FileSystem.
type Writer struct {
	formatter Formatter
	fs        ports.FileSystem
}

// NewWriter creates a new Writer with the given Formatter.
func NewWriter(formatter Formatter, fs ports.FileSystem) *Writer {
	return &Writer{
		formatter: formatter,
		fs:        fs,
	}
}

// Write formats the report and writes it to path.
func (w *Writer) Write(path string, report *session.Report) error {
	content := w.formatter.Format(report)
	if err := w.fs.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
