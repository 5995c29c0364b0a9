package ports

import (
	"io"

	"github.com/user/svcdec/pkg/codec"
)

// StreamInfo describes the video track of a container.
type StreamInfo struct {
	Codec         string // Sample entry four-cc (e.g. "avc1")
	BitstreamType codec.BitstreamType
	Width         int
	Height        int
	Timescale     uint32
	Samples       int   // Number of coded samples
	Keyframes     []int // Zero-based indices of sync (IDR) samples
}

// StreamProber inspects a container to derive the decoder snapshot.
type StreamProber interface {
	// ProbeFile probes the container at path.
	ProbeFile(path string) (StreamInfo, error)

	// ProbeReader probes the container read from reader.
	ProbeReader(reader io.ReadSeeker) (StreamInfo, error)
}
