package logger

import (
	"io"

	"github.com/user/svcdec/pkg/ports"
)

// NewNoop returns a logger at LevelQuiet that writes to io.Discard.
// Components derived from it with WithComponent stay silent.
func NewNoop() *ConsoleLogger {
	return NewWriter(ports.LevelQuiet, io.Discard)
}
