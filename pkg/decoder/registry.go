package decoder

import "github.com/user/svcdec/pkg/codec"

// Descriptor describes how one option may be accessed.
type Descriptor struct {
	ID     codec.OptionID
	Access codec.Access
	Kind   codec.Kind
}

// entry binds a descriptor to its setter and getter.
// set receives a non-nil value; both return false on a type mismatch and
// must not touch the decoder in that case.
type entry struct {
	Descriptor
	set func(s *optionState, value any) bool
	get func(s *optionState, out any) bool
}

// registry is loaded once at package initialization and never mutated.
var registry = map[codec.OptionID]entry{
	codec.OptionDataFormat: {
		Descriptor: Descriptor{codec.OptionDataFormat, codec.AccessReadWrite, codec.KindFormat},
		set: func(s *optionState, v any) bool {
			if _, ok := loadEnum[codec.VideoFormat](v); !ok {
				return false
			}
			s.dataFormat = codec.CanonicalFormat
			return true
		},
		get: func(s *optionState, out any) bool { return storeEnum(out, s.dataFormat) },
	},
	codec.OptionEndOfStream: {
		Descriptor: Descriptor{codec.OptionEndOfStream, codec.AccessReadWrite, codec.KindBool},
		set:        setBool(func(s *optionState) *bool { return &s.endOfStream }),
		get:        getBool(func(s *optionState) bool { return s.endOfStream }),
	},
	codec.OptionVCLNAL: {
		Descriptor: Descriptor{codec.OptionVCLNAL, codec.AccessReadWrite, codec.KindBool},
		set:        setBool(func(s *optionState) *bool { return &s.vclNAL }),
		get:        getBool(func(s *optionState) bool { return s.vclNAL }),
	},
	codec.OptionTemporalID: {
		Descriptor: Descriptor{codec.OptionTemporalID, codec.AccessReadOnly, codec.KindInt32},
		get:        getInt32(func(s *optionState) int32 { return s.unit.TemporalID }),
	},
	codec.OptionFrameNum: {
		Descriptor: Descriptor{codec.OptionFrameNum, codec.AccessReadOnly, codec.KindInt32},
		get:        getInt32(func(s *optionState) int32 { return s.unit.FrameNum }),
	},
	codec.OptionIDRPicID: {
		Descriptor: Descriptor{codec.OptionIDRPicID, codec.AccessReadOnly, codec.KindInt32},
		get:        getInt32(func(s *optionState) int32 { return s.unit.IDRPicID }),
	},
	codec.OptionLTRMarkingFlag: {
		Descriptor: Descriptor{codec.OptionLTRMarkingFlag, codec.AccessReadWrite, codec.KindBool},
		set:        setBool(func(s *optionState) *bool { return &s.ltrMarking }),
		get:        getBool(func(s *optionState) bool { return s.ltrMarking }),
	},
	codec.OptionLTRMarkedFrameNum: {
		Descriptor: Descriptor{codec.OptionLTRMarkedFrameNum, codec.AccessReadOnly, codec.KindInt32},
		get:        getInt32(func(s *optionState) int32 { return s.unit.LTRMarkedFrameNum }),
	},
	codec.OptionErrorConcealment: {
		Descriptor: Descriptor{codec.OptionErrorConcealment, codec.AccessReadWrite, codec.KindConcealment},
		set: func(s *optionState, v any) bool {
			c, ok := loadEnum[codec.ErrorConcealment](v)
			if !ok {
				return false
			}
			s.concealment = c & codec.ConcealmentMask
			return true
		},
		get: func(s *optionState, out any) bool { return storeEnum(out, s.concealment) },
	},
	codec.OptionTraceLevel: {
		Descriptor: Descriptor{codec.OptionTraceLevel, codec.AccessReadWrite, codec.KindTraceLevel},
		set: func(s *optionState, v any) bool {
			l, ok := loadEnum[codec.TraceLevel](v)
			if !ok {
				return false
			}
			s.traceLevel = l
			return true
		},
		get: func(s *optionState, out any) bool { return storeEnum(out, s.traceLevel) },
	},
	codec.OptionTraceCallback: {
		Descriptor: Descriptor{codec.OptionTraceCallback, codec.AccessWriteOnly, codec.KindCallback},
		set: func(s *optionState, v any) bool {
			cb, ok := load[codec.TraceCallback](v)
			if !ok {
				return false
			}
			s.traceCallback = cb
			return true
		},
	},
	codec.OptionTraceCallbackContext: {
		Descriptor: Descriptor{codec.OptionTraceCallbackContext, codec.AccessWriteOnly, codec.KindContext},
		set: func(s *optionState, v any) bool {
			ctx, ok := load[codec.TraceContext](v)
			if !ok {
				return false
			}
			s.traceContext = ctx
			return true
		},
	},
}

// Lookup returns the descriptor of id. The second result is false for
// identifiers outside the registry.
func Lookup(id codec.OptionID) (Descriptor, bool) {
	e, ok := registry[id]
	return e.Descriptor, ok
}

// Options returns every registered descriptor in identifier order.
func Options() []Descriptor {
	var out []Descriptor
	for _, id := range codec.AllOptions() {
		if e, ok := registry[id]; ok {
			out = append(out, e.Descriptor)
		}
	}
	return out
}

func setBool(field func(*optionState) *bool) func(*optionState, any) bool {
	return func(s *optionState, v any) bool {
		b, ok := load[bool](v)
		if !ok {
			return false
		}
		*field(s) = b
		return true
	}
}

func getBool(field func(*optionState) bool) func(*optionState, any) bool {
	return func(s *optionState, out any) bool { return store(out, field(s)) }
}

func getInt32(field func(*optionState) int32) func(*optionState, any) bool {
	return func(s *optionState, out any) bool { return store(out, field(s)) }
}

func load[T any](v any) (T, bool) {
	p, ok := v.(*T)
	if !ok || p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

func store[T any](out any, val T) bool {
	p, ok := out.(*T)
	if !ok || p == nil {
		return false
	}
	*p = val
	return true
}

// loadEnum accepts a pointer to the enum type or to a plain integer
// (*int32, *int, *uint32).
func loadEnum[T ~int32](v any) (T, bool) {
	switch p := v.(type) {
	case *T:
		if p != nil {
			return *p, true
		}
	case *int32:
		if p != nil {
			return T(*p), true
		}
	case *int:
		if p != nil {
			return T(*p), true
		}
	case *uint32:
		if p != nil {
			return T(*p), true
		}
	}
	return 0, false
}

func storeEnum[T ~int32](out any, val T) bool {
	switch p := out.(type) {
	case *T:
		if p != nil {
			*p = val
			return true
		}
	case *int32:
		if p != nil {
			*p = int32(val)
			return true
		}
	case *int:
		if p != nil {
			*p = int(val)
			return true
		}
	case *uint32:
		if p != nil {
			*p = uint32(val)
			return true
		}
	}
	return false
}

// isNil reports whether v is a nil interface or a nil pointer of one of the
// accepted value types.
func isNil(v any) bool {
	switch p := v.(type) {
	case nil:
		return true
	case *int32:
		return p == nil
	case *int:
		return p == nil
	case *uint32:
		return p == nil
	case *bool:
		return p == nil
	case *codec.VideoFormat:
		return p == nil
	case *codec.ErrorConcealment:
		return p == nil
	case *codec.TraceLevel:
		return p == nil
	case *codec.TraceCallback:
		return p == nil
	case *codec.TraceContext:
		return p == nil
	}
	return false
}
