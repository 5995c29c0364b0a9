package mocks

import (
	"io"

	"github.com/user/svcdec/pkg/ports"
)

// StreamProber is a mock implementation of ports.StreamProber.
type StreamProber struct {
	Info ports.StreamInfo
	Err  error

	ProbedPaths []string
}

func (m *StreamProber) ProbeFile(path string) (ports.StreamInfo, error) {
	m.ProbedPaths = append(m.ProbedPaths, path)
	return m.Info, m.Err
}

func (m *StreamProber) ProbeReader(reader io.ReadSeeker) (ports.StreamInfo, error) {
	return m.Info, m.Err
}

var _ ports.StreamProber = (*StreamProber)(nil)
