package codec

import "fmt"

// OptionID names one tunable of the decoder.
type OptionID int32

const (
	OptionDataFormat OptionID = iota
	OptionEndOfStream
	OptionVCLNAL
	OptionTemporalID
	OptionFrameNum
	OptionIDRPicID
	OptionLTRMarkingFlag
	OptionLTRMarkedFrameNum
	OptionErrorConcealment
	OptionTraceLevel
	OptionTraceCallback
	OptionTraceCallbackContext

	optionCount
)

// AllOptions lists every identifier in declaration order.
func AllOptions() []OptionID {
	ids := make([]OptionID, 0, optionCount)
	for id := OptionID(0); id < optionCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

var optionNames = [...]string{
	OptionDataFormat:           "data-format",
	OptionEndOfStream:          "end-of-stream",
	OptionVCLNAL:               "vcl-nal",
	OptionTemporalID:           "temporal-id",
	OptionFrameNum:             "frame-num",
	OptionIDRPicID:             "idr-pic-id",
	OptionLTRMarkingFlag:       "ltr-marking-flag",
	OptionLTRMarkedFrameNum:    "ltr-marked-frame-num",
	OptionErrorConcealment:     "error-concealment",
	OptionTraceLevel:           "trace-level",
	OptionTraceCallback:        "trace-callback",
	OptionTraceCallbackContext: "trace-callback-context",
}

// String returns the kebab-case name of the option.
func (id OptionID) String() string {
	if id >= 0 && id < optionCount {
		return optionNames[id]
	}
	return fmt.Sprintf("option(%d)", int32(id))
}

// ParseOptionID resolves an option name as returned by String.
func ParseOptionID(s string) (OptionID, bool) {
	for i, name := range optionNames {
		if name == s {
			return OptionID(i), true
		}
	}
	return 0, false
}

// Access is the direction in which an option may be used.
type Access int

const (
	AccessReadOnly Access = iota + 1
	AccessWriteOnly
	AccessReadWrite
)

// CanRead reports whether GetOption is allowed.
func (a Access) CanRead() bool { return a == AccessReadOnly || a == AccessReadWrite }

// CanWrite reports whether SetOption is allowed.
func (a Access) CanWrite() bool { return a == AccessWriteOnly || a == AccessReadWrite }

func (a Access) String() string {
	switch a {
	case AccessReadOnly:
		return "read-only"
	case AccessWriteOnly:
		return "write-only"
	case AccessReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

// Kind is the value type carried by an option.
type Kind int

const (
	KindInt32 Kind = iota + 1
	KindBool
	KindFormat
	KindConcealment
	KindTraceLevel
	KindCallback
	KindContext
)

func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindBool:
		return "bool"
	case KindFormat:
		return "video-format"
	case KindConcealment:
		return "error-concealment"
	case KindTraceLevel:
		return "trace-level"
	case KindCallback:
		return "trace-callback"
	case KindContext:
		return "trace-context"
	default:
		return "unknown"
	}
}
