package codec

// TraceLevel is the verbosity threshold of the trace sink.
// A message is delivered when its level is non-zero and not above the threshold.
type TraceLevel int32

const (
	TraceQuiet   TraceLevel = 0
	TraceError   TraceLevel = 1 << 0
	TraceWarning TraceLevel = 1 << 1
	TraceInfo    TraceLevel = 1 << 2
	TraceDebug   TraceLevel = 1 << 3
	TraceDetail  TraceLevel = 1 << 4

	TraceDefault = TraceWarning
)

func (l TraceLevel) String() string {
	switch l {
	case TraceQuiet:
		return "quiet"
	case TraceError:
		return "error"
	case TraceWarning:
		return "warning"
	case TraceInfo:
		return "info"
	case TraceDebug:
		return "debug"
	case TraceDetail:
		return "detail"
	default:
		return "custom"
	}
}

// ParseTraceLevel parses a level name as returned by String.
func ParseTraceLevel(s string) (TraceLevel, bool) {
	for _, l := range []TraceLevel{TraceQuiet, TraceError, TraceWarning, TraceInfo, TraceDebug, TraceDetail} {
		if l.String() == s {
			return l, true
		}
	}
	return 0, false
}

// TraceContext is an opaque handle owned by the caller.
// The decoder never inspects it; it is passed back on every trace call.
type TraceContext interface{}

// TraceCallback receives trace messages from the decoder.
type TraceCallback func(ctx TraceContext, level TraceLevel, msg string)
