// Package mp4probe derives decoder stream parameters from MP4 containers.
package mp4probe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/user/svcdec/pkg/codec"
	"github.com/user/svcdec/pkg/ports"
)

var (
	// ErrNoVideoTrack is returned when the container has no video track.
	ErrNoVideoTrack = errors.New("mp4probe: no video track found")

	// ErrUnsupportedCodec is returned when the video track is neither AVC nor SVC.
	ErrUnsupportedCodec = errors.New("mp4probe: unsupported codec")
)

// bitstreamTypes maps sample entry types to the bitstream the decoder expects.
var bitstreamTypes = map[string]codec.BitstreamType{
	"avc1": codec.BitstreamAVC,
	"avc3": codec.BitstreamAVC,
	"svc1": codec.BitstreamSVC,
	"svc2": codec.BitstreamSVC,
}

// Prober implements ports.StreamProber with mp4ff.
type Prober struct{}

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// ProbeFile probes the MP4 file at path.
func (p *Prober) ProbeFile(path string) (ports.StreamInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.StreamInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return p.ProbeReader(f)
}

// ProbeBytes probes MP4 data held in memory.
func (p *Prober) ProbeBytes(data []byte) (ports.StreamInfo, error) {
	return p.ProbeReader(bytes.NewReader(data))
}

// ProbeReader probes the MP4 read from reader.
func (p *Prober) ProbeReader(reader io.ReadSeeker) (ports.StreamInfo, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return ports.StreamInfo{}, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if mp4File.Init != nil && mp4File.Init.Moov != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return ports.StreamInfo{}, ErrNoVideoTrack
	}

	trak := findVideoTrack(moov)
	if trak == nil {
		return ports.StreamInfo{}, ErrNoVideoTrack
	}

	info, err := describeTrack(trak)
	if err != nil {
		return ports.StreamInfo{}, err
	}

	if mp4File.IsFragmented() || len(mp4File.Segments) > 0 {
		err = countFragmentSamples(mp4File, moov, trak.Tkhd.TrackID, &info)
	} else {
		countProgressiveSamples(trak, &info)
	}
	if err != nil {
		return ports.StreamInfo{}, err
	}

	return info, nil
}

func findVideoTrack(moov *mp4.MoovBox) *mp4.TrakBox {
	for _, trak := range moov.Traks {
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
			return trak
		}
	}
	return nil
}

func describeTrack(trak *mp4.TrakBox) (ports.StreamInfo, error) {
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return ports.StreamInfo{}, ErrNoVideoTrack
	}

	info := ports.StreamInfo{Timescale: 1000}
	if trak.Mdia.Mdhd != nil {
		info.Timescale = trak.Mdia.Mdhd.Timescale
	}
	if trak.Tkhd != nil {
		info.Width = int(trak.Tkhd.Width >> 16)
		info.Height = int(trak.Tkhd.Height >> 16)
	}

	for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
		if bt, ok := bitstreamTypes[child.Type()]; ok {
			info.Codec = child.Type()
			info.BitstreamType = bt
			return info, nil
		}
	}

	if len(trak.Mdia.Minf.Stbl.Stsd.Children) > 0 {
		return ports.StreamInfo{}, fmt.Errorf("%w: %s", ErrUnsupportedCodec, trak.Mdia.Minf.Stbl.Stsd.Children[0].Type())
	}
	return ports.StreamInfo{}, ErrUnsupportedCodec
}

func countFragmentSamples(mp4File *mp4.File, moov *mp4.MoovBox, trackID uint32, info *ports.StreamInfo) error {
	var trex *mp4.TrexBox
	if moov.Mvex != nil {
		for _, t := range moov.Mvex.Trexs {
			if t.TrackID == trackID {
				trex = t
				break
			}
		}
	}

	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd.TrackID != trackID {
					continue
				}
				samples, err := frag.GetFullSamples(trex)
				if err != nil {
					return fmt.Errorf("get samples: %w", err)
				}
				for _, s := range samples {
					if s.Flags == mp4.SyncSampleFlags {
						info.Keyframes = append(info.Keyframes, info.Samples)
					}
					info.Samples++
				}
			}
		}
	}
	return nil
}

func countProgressiveSamples(trak *mp4.TrakBox, info *ports.StreamInfo) {
	stbl := trak.Mdia.Minf.Stbl
	if stbl.Stsz != nil {
		info.Samples = int(stbl.Stsz.SampleNumber)
	}
	if stbl.Stss != nil {
		for _, n := range stbl.Stss.SampleNumber {
			info.Keyframes = append(info.Keyframes, int(n)-1)
		}
		return
	}
	// No stss box means every sample is a sync sample.
	for i := 0; i < info.Samples; i++ {
		info.Keyframes = append(info.Keyframes, i)
	}
}

var _ ports.StreamProber = (*Prober)(nil)
