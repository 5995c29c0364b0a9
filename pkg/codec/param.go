package codec

import "unsafe"

// VideoProperty describes the incoming bitstream.
// Size must hold VideoPropertySize; later revisions of the struct grow it and
// Initialize rejects any value it does not know.
type VideoProperty struct {
	Size          uint32
	BitstreamType BitstreamType
}

// VideoPropertySize is the declared size of VideoProperty for this revision.
const VideoPropertySize = uint32(unsafe.Sizeof(VideoProperty{}))

// DecodingParam is the configuration snapshot passed to Initialize.
type DecodingParam struct {
	OutputFormat     VideoFormat      // Requested output layout; normalized by the decoder
	CPULoad          uint32           // CPU-load hint
	TargetDQLayer    uint8            // Target dependency/quality layer
	ErrorConcealment ErrorConcealment // Initial concealment mode
	VideoProperty    VideoProperty
}

// NewDecodingParam returns a snapshot with default values and a valid size tag.
func NewDecodingParam() DecodingParam {
	return DecodingParam{
		OutputFormat:     CanonicalFormat,
		TargetDQLayer:    0xff,
		ErrorConcealment: ConcealmentSliceCopy,
		VideoProperty: VideoProperty{
			Size:          VideoPropertySize,
			BitstreamType: BitstreamDefault,
		},
	}
}

// UnitInfo is the stream state reported by the decoding pipeline after each
// decoded unit. It backs the read-only options.
type UnitInfo struct {
	TemporalID        int32
	FrameNum          int32
	IDRPicID          int32
	LTRMarkedFrameNum int32
}

// NoUnit is the stream state before any unit has been decoded.
var NoUnit = UnitInfo{
	TemporalID:        -1,
	FrameNum:          -1,
	IDRPicID:          -1,
	LTRMarkedFrameNum: -1,
}
