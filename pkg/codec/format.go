package codec

// VideoFormat identifies an output pixel layout.
// Values outside the named constants are accepted and carried verbatim.
type VideoFormat int32

const (
	VideoFormatRGB      VideoFormat = 1
	VideoFormatRGBA     VideoFormat = 2
	VideoFormatRGB555   VideoFormat = 3
	VideoFormatRGB565   VideoFormat = 4
	VideoFormatBGR      VideoFormat = 5
	VideoFormatBGRA     VideoFormat = 6
	VideoFormatABGR     VideoFormat = 7
	VideoFormatARGB     VideoFormat = 8
	VideoFormatYUY2     VideoFormat = 20
	VideoFormatYVYU     VideoFormat = 21
	VideoFormatUYVY     VideoFormat = 22
	VideoFormatI420     VideoFormat = 23
	VideoFormatYV12     VideoFormat = 24
	VideoFormatInternal VideoFormat = 25
	VideoFormatNV12     VideoFormat = 26
)

// CanonicalFormat is the only layout the decoder emits, whatever was requested.
const CanonicalFormat = VideoFormatI420

var videoFormatNames = map[VideoFormat]string{
	VideoFormatRGB:      "rgb",
	VideoFormatRGBA:     "rgba",
	VideoFormatRGB555:   "rgb555",
	VideoFormatRGB565:   "rgb565",
	VideoFormatBGR:      "bgr",
	VideoFormatBGRA:     "bgra",
	VideoFormatABGR:     "abgr",
	VideoFormatARGB:     "argb",
	VideoFormatYUY2:     "yuy2",
	VideoFormatYVYU:     "yvyu",
	VideoFormatUYVY:     "uyvy",
	VideoFormatI420:     "i420",
	VideoFormatYV12:     "yv12",
	VideoFormatInternal: "internal",
	VideoFormatNV12:     "nv12",
}

// String returns the lower-case name of the format, or "unknown".
func (f VideoFormat) String() string {
	if name, ok := videoFormatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseVideoFormat parses a format name. The second result is false for unknown names.
func ParseVideoFormat(s string) (VideoFormat, bool) {
	for f, name := range videoFormatNames {
		if name == s {
			return f, true
		}
	}
	return 0, false
}

// ErrorConcealment selects how corrupted or missing data is concealed.
type ErrorConcealment int32

const (
	ConcealmentDisable   ErrorConcealment = 0
	ConcealmentFrameCopy ErrorConcealment = 1
	ConcealmentSliceCopy ErrorConcealment = 2
	ConcealmentReserved  ErrorConcealment = 3
)

// ConcealmentMask covers the bit-width of the concealment enumeration.
const ConcealmentMask ErrorConcealment = 0x3

// String returns the name of the concealment mode.
func (c ErrorConcealment) String() string {
	switch c {
	case ConcealmentDisable:
		return "none"
	case ConcealmentFrameCopy:
		return "frame-copy"
	case ConcealmentSliceCopy:
		return "slice-copy"
	case ConcealmentReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// ParseErrorConcealment parses a concealment name as returned by String.
func ParseErrorConcealment(s string) (ErrorConcealment, bool) {
	switch s {
	case "none", "disable":
		return ConcealmentDisable, true
	case "frame-copy":
		return ConcealmentFrameCopy, true
	case "slice-copy":
		return ConcealmentSliceCopy, true
	case "reserved":
		return ConcealmentReserved, true
	default:
		return 0, false
	}
}

// BitstreamType is the kind of video bitstream the decoder expects.
type BitstreamType int32

const (
	BitstreamAVC      BitstreamType = 0
	BitstreamSVC      BitstreamType = 1
	BitstreamReserved BitstreamType = 2

	BitstreamDefault = BitstreamSVC
)

// String returns the name of the bitstream type.
func (b BitstreamType) String() string {
	switch b {
	case BitstreamAVC:
		return "avc"
	case BitstreamSVC:
		return "svc"
	case BitstreamReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// ParseBitstreamType parses a bitstream type name.
func ParseBitstreamType(s string) (BitstreamType, bool) {
	switch s {
	case "avc":
		return BitstreamAVC, true
	case "svc":
		return BitstreamSVC, true
	case "reserved":
		return BitstreamReserved, true
	default:
		return 0, false
	}
}
