package decoder

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/user/svcdec/pkg/codec"
)

// randomParam mirrors a caller that fills the snapshot with arbitrary values.
func randomParam(r *rand.Rand) codec.DecodingParam {
	p := codec.NewDecodingParam()
	p.OutputFormat = codec.VideoFormat(r.Intn(100))
	p.CPULoad = uint32(r.Intn(100))
	p.TargetDQLayer = uint8(r.Intn(100))
	p.ErrorConcealment = codec.ErrorConcealment(r.Intn(4))
	p.VideoProperty.BitstreamType = codec.BitstreamType(r.Intn(3))
	return p
}

func newInitialized(t *testing.T) *Decoder {
	t.Helper()
	d := New()
	p := codec.NewDecodingParam()
	if err := d.Initialize(&p); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return d
}

func TestInitUninit(t *testing.T) {
	d := New()
	defer d.Destroy()

	var out int32
	if err := d.Uninitialize(); err != nil {
		t.Fatalf("Uninitialize on fresh decoder: %v", err)
	}
	if err := d.GetOption(codec.OptionDataFormat, &out); !errors.Is(err, codec.ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}

	p := codec.NewDecodingParam()
	p.OutputFormat = 20
	if err := d.Initialize(&p); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := d.GetOption(codec.OptionDataFormat, &out); err != nil {
		t.Fatalf("GetOption failed: %v", err)
	}
	if out != int32(codec.CanonicalFormat) {
		t.Errorf("expected canonical format %d, got %d", codec.CanonicalFormat, out)
	}

	if err := d.Uninitialize(); err != nil {
		t.Fatalf("Uninitialize failed: %v", err)
	}
	out = 21
	err := d.GetOption(codec.OptionDataFormat, &out)
	if codec.StatusOf(err) != codec.StatusNotInitialized {
		t.Errorf("expected StatusNotInitialized, got %v", codec.StatusOf(err))
	}
	if out != 21 {
		t.Errorf("output modified on failure: got %d", out)
	}
}

func TestUninitializeIdempotent(t *testing.T) {
	d := newInitialized(t)
	for i := 0; i < 2; i++ {
		if err := d.Uninitialize(); err != nil {
			t.Errorf("Uninitialize #%d: %v", i+1, err)
		}
	}
	if d.Initialized() {
		t.Error("decoder should be uninitialized")
	}
}

func TestInitializeRejectsMalformedSnapshot(t *testing.T) {
	tests := []struct {
		name  string
		param *codec.DecodingParam
	}{
		{"nil snapshot", nil},
		{"zero size tag", &codec.DecodingParam{}},
		{"larger size tag", &codec.DecodingParam{VideoProperty: codec.VideoProperty{Size: codec.VideoPropertySize + 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			err := d.Initialize(tt.param)
			if !errors.Is(err, codec.ErrConfigError) {
				t.Fatalf("expected ErrConfigError, got %v", err)
			}
			if d.Initialized() {
				t.Error("decoder should stay uninitialized")
			}
		})
	}
}

func TestInitializeFailureKeepsPreviousState(t *testing.T) {
	d := newInitialized(t)
	eos := true
	if err := d.SetOption(codec.OptionEndOfStream, &eos); err != nil {
		t.Fatalf("SetOption failed: %v", err)
	}

	bad := codec.DecodingParam{}
	if err := d.Initialize(&bad); !errors.Is(err, codec.ErrConfigError) {
		t.Fatalf("expected ErrConfigError, got %v", err)
	}

	var got bool
	if err := d.GetOption(codec.OptionEndOfStream, &got); err != nil {
		t.Fatalf("GetOption failed: %v", err)
	}
	if !got {
		t.Error("end-of-stream flag lost after failed Initialize")
	}
}

func TestInitializeCopiesSnapshot(t *testing.T) {
	d := New()
	p := codec.NewDecodingParam()
	p.CPULoad = 42
	if err := d.Initialize(&p); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	p.CPULoad = 7

	snap, ok := d.Snapshot()
	if !ok {
		t.Fatal("Snapshot not available while initialized")
	}
	if snap.CPULoad != 42 {
		t.Errorf("snapshot aliases caller struct: CPULoad = %d", snap.CPULoad)
	}

	_ = d.Uninitialize()
	if _, ok := d.Snapshot(); ok {
		t.Error("Snapshot should be discarded after Uninitialize")
	}
}

func TestReinitializeResetsOptions(t *testing.T) {
	d := newInitialized(t)
	flag := true
	if err := d.SetOption(codec.OptionVCLNAL, &flag); err != nil {
		t.Fatalf("SetOption failed: %v", err)
	}

	p := codec.NewDecodingParam()
	if err := d.Initialize(&p); err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}

	var got bool
	if err := d.GetOption(codec.OptionVCLNAL, &got); err != nil {
		t.Fatalf("GetOption failed: %v", err)
	}
	if got {
		t.Error("VCL-NAL flag should be reset by Initialize")
	}
}

func TestOptionsRequireInitialize(t *testing.T) {
	d := New()
	for _, id := range codec.AllOptions() {
		var i32 int32 = 99
		if err := d.SetOption(id, &i32); !errors.Is(err, codec.ErrNotInitialized) {
			t.Errorf("SetOption(%s): expected ErrNotInitialized, got %v", id, err)
		}
		if err := d.SetOption(id, nil); !errors.Is(err, codec.ErrNotInitialized) {
			t.Errorf("SetOption(%s, nil): expected ErrNotInitialized, got %v", id, err)
		}
		if err := d.GetOption(id, &i32); !errors.Is(err, codec.ErrNotInitialized) {
			t.Errorf("GetOption(%s): expected ErrNotInitialized, got %v", id, err)
		}
		if i32 != 99 {
			t.Errorf("GetOption(%s) modified output: %d", id, i32)
		}
	}
	if err := d.ReportUnit(codec.UnitInfo{}); !errors.Is(err, codec.ErrNotInitialized) {
		t.Errorf("ReportUnit: expected ErrNotInitialized, got %v", err)
	}
}

func TestDataFormat(t *testing.T) {
	d := newInitialized(t)
	r := rand.New(rand.NewSource(1))

	if err := d.SetOption(codec.OptionDataFormat, nil); !errors.Is(err, codec.ErrInvalidArgument) {
		t.Errorf("nil value: expected ErrInvalidArgument, got %v", err)
	}
	var nilFormat *int32
	if err := d.SetOption(codec.OptionDataFormat, nilFormat); !errors.Is(err, codec.ErrInvalidArgument) {
		t.Errorf("typed nil: expected ErrInvalidArgument, got %v", err)
	}

	for i := 0; i < 10; i++ {
		in := r.Int31()
		if err := d.SetOption(codec.OptionDataFormat, &in); err != nil {
			t.Fatalf("SetOption(%d) failed: %v", in, err)
		}
		for j := 0; j < 2; j++ {
			var out int32
			if err := d.GetOption(codec.OptionDataFormat, &out); err != nil {
				t.Fatalf("GetOption failed: %v", err)
			}
			if out != int32(codec.VideoFormatI420) {
				t.Errorf("expected I420 (%d), got %d", codec.VideoFormatI420, out)
			}
		}
	}

	var typed codec.VideoFormat
	if err := d.GetOption(codec.OptionDataFormat, &typed); err != nil {
		t.Fatalf("GetOption into *VideoFormat failed: %v", err)
	}
	if typed != codec.CanonicalFormat {
		t.Errorf("expected %s, got %s", codec.CanonicalFormat, typed)
	}
}

func TestInitializeNormalizesAnyFormat(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		d := New()
		p := randomParam(r)
		if err := d.Initialize(&p); err != nil {
			t.Fatalf("Initialize(%+v) failed: %v", p, err)
		}
		var out codec.VideoFormat
		if err := d.GetOption(codec.OptionDataFormat, &out); err != nil {
			t.Fatalf("GetOption failed: %v", err)
		}
		if out != codec.CanonicalFormat {
			t.Errorf("format %d: expected canonical, got %d", p.OutputFormat, out)
		}
	}
}

func TestBoolRoundTrip(t *testing.T) {
	ids := []codec.OptionID{
		codec.OptionEndOfStream,
		codec.OptionVCLNAL,
		codec.OptionLTRMarkingFlag,
	}

	for _, id := range ids {
		t.Run(id.String(), func(t *testing.T) {
			d := newInitialized(t)

			var initial bool
			if err := d.GetOption(id, &initial); err != nil {
				t.Fatalf("GetOption failed: %v", err)
			}
			if initial {
				t.Error("flag should default to false")
			}

			for _, v := range []bool{true, false, true} {
				in := v
				if err := d.SetOption(id, &in); err != nil {
					t.Fatalf("SetOption(%v) failed: %v", v, err)
				}
				var out bool
				if err := d.GetOption(id, &out); err != nil {
					t.Fatalf("GetOption failed: %v", err)
				}
				if out != v {
					t.Errorf("expected %v, got %v", v, out)
				}
			}

			if err := d.SetOption(id, nil); !errors.Is(err, codec.ErrInvalidArgument) {
				t.Errorf("nil value: expected ErrInvalidArgument, got %v", err)
			}
			wrong := int32(1)
			if err := d.SetOption(id, &wrong); !errors.Is(err, codec.ErrInvalidArgument) {
				t.Errorf("wrong type: expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestReadOnlyOptions(t *testing.T) {
	d := newInitialized(t)
	unit := codec.UnitInfo{TemporalID: 2, FrameNum: 11, IDRPicID: 3, LTRMarkedFrameNum: 8}

	want := map[codec.OptionID]int32{
		codec.OptionTemporalID:        unit.TemporalID,
		codec.OptionFrameNum:          unit.FrameNum,
		codec.OptionIDRPicID:          unit.IDRPicID,
		codec.OptionLTRMarkedFrameNum: unit.LTRMarkedFrameNum,
	}

	for id := range want {
		var out int32
		if err := d.GetOption(id, &out); err != nil {
			t.Fatalf("GetOption(%s) failed: %v", id, err)
		}
		if out != -1 {
			t.Errorf("%s: expected -1 before any unit, got %d", id, out)
		}
	}

	if err := d.ReportUnit(unit); err != nil {
		t.Fatalf("ReportUnit failed: %v", err)
	}

	for id, v := range want {
		var out int32
		if err := d.GetOption(id, &out); err != nil {
			t.Fatalf("GetOption(%s) failed: %v", id, err)
		}
		if out != v {
			t.Errorf("%s: expected %d, got %d", id, v, out)
		}

		in := int32(5)
		if err := d.SetOption(id, &in); !errors.Is(err, codec.ErrNotWritable) {
			t.Errorf("SetOption(%s): expected ErrNotWritable, got %v", id, err)
		}
		if err := d.SetOption(id, nil); !errors.Is(err, codec.ErrNotWritable) {
			t.Errorf("SetOption(%s, nil): expected ErrNotWritable, got %v", id, err)
		}
	}
}

func TestErrorConcealment(t *testing.T) {
	d := New()
	p := codec.NewDecodingParam()
	p.ErrorConcealment = codec.ConcealmentFrameCopy
	if err := d.Initialize(&p); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	var out codec.ErrorConcealment
	if err := d.GetOption(codec.OptionErrorConcealment, &out); err != nil {
		t.Fatalf("GetOption failed: %v", err)
	}
	if out != codec.ConcealmentFrameCopy {
		t.Errorf("expected initial %s, got %s", codec.ConcealmentFrameCopy, out)
	}

	tests := []struct {
		in   int32
		want codec.ErrorConcealment
	}{
		{0, codec.ConcealmentDisable},
		{2, codec.ConcealmentSliceCopy},
		{3, codec.ConcealmentReserved},
		{6, codec.ConcealmentSliceCopy},
		{-1, codec.ConcealmentReserved},
	}
	for _, tt := range tests {
		in := tt.in
		if err := d.SetOption(codec.OptionErrorConcealment, &in); err != nil {
			t.Fatalf("SetOption(%d) failed: %v", tt.in, err)
		}
		var got int32
		if err := d.GetOption(codec.OptionErrorConcealment, &got); err != nil {
			t.Fatalf("GetOption failed: %v", err)
		}
		if codec.ErrorConcealment(got) != tt.want {
			t.Errorf("SetOption(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestWriteOnlyOptions(t *testing.T) {
	d := newInitialized(t)
	for _, id := range []codec.OptionID{codec.OptionTraceCallback, codec.OptionTraceCallbackContext} {
		var out codec.TraceContext = "untouched"
		if err := d.GetOption(id, &out); !errors.Is(err, codec.ErrNotReadable) {
			t.Errorf("GetOption(%s): expected ErrNotReadable, got %v", id, err)
		}
		if out != "untouched" {
			t.Errorf("GetOption(%s) modified output", id)
		}
		if err := d.SetOption(id, nil); !errors.Is(err, codec.ErrInvalidArgument) {
			t.Errorf("SetOption(%s, nil): expected ErrInvalidArgument, got %v", id, err)
		}
	}
}

func TestUnsupportedOption(t *testing.T) {
	d := newInitialized(t)
	var out int32 = 3
	for _, id := range []codec.OptionID{-1, 12, 100} {
		if err := d.GetOption(id, &out); !errors.Is(err, codec.ErrUnsupportedOption) {
			t.Errorf("GetOption(%d): expected ErrUnsupportedOption, got %v", id, err)
		}
		if err := d.SetOption(id, &out); !errors.Is(err, codec.ErrUnsupportedOption) {
			t.Errorf("SetOption(%d): expected ErrUnsupportedOption, got %v", id, err)
		}
	}
	if out != 3 {
		t.Errorf("output modified: %d", out)
	}
}

func TestGetOptionWrongOutputType(t *testing.T) {
	d := newInitialized(t)
	out := "unchanged"
	if err := d.GetOption(codec.OptionFrameNum, &out); !errors.Is(err, codec.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if out != "unchanged" {
		t.Errorf("output modified: %q", out)
	}
	if err := d.GetOption(codec.OptionFrameNum, nil); !errors.Is(err, codec.ErrInvalidArgument) {
		t.Errorf("nil output: expected ErrInvalidArgument, got %v", err)
	}
}

type traceRecord struct {
	ctx   codec.TraceContext
	level codec.TraceLevel
	msg   string
}

func TestTraceSink(t *testing.T) {
	d := newInitialized(t)

	var records []traceRecord
	cb := codec.TraceCallback(func(ctx codec.TraceContext, level codec.TraceLevel, msg string) {
		records = append(records, traceRecord{ctx, level, msg})
	})
	owner := &struct{ name string }{"caller"}
	var ctx codec.TraceContext = owner

	if err := d.SetOption(codec.OptionTraceCallback, &cb); err != nil {
		t.Fatalf("SetOption(callback) failed: %v", err)
	}
	if err := d.SetOption(codec.OptionTraceCallbackContext, &ctx); err != nil {
		t.Fatalf("SetOption(context) failed: %v", err)
	}

	var level codec.TraceLevel
	if err := d.GetOption(codec.OptionTraceLevel, &level); err != nil {
		t.Fatalf("GetOption(trace level) failed: %v", err)
	}
	if level != codec.TraceDefault {
		t.Errorf("expected default trace level %s, got %s", codec.TraceDefault, level)
	}

	d.Trace(codec.TraceError, "boom %d", 1)
	d.Trace(codec.TraceInfo, "filtered")
	if len(records) != 1 {
		t.Fatalf("expected 1 trace record, got %d", len(records))
	}
	if records[0].msg != "boom 1" || records[0].level != codec.TraceError {
		t.Errorf("unexpected record: %+v", records[0])
	}
	if records[0].ctx != ctx {
		t.Error("context not forwarded verbatim")
	}

	detail := int32(codec.TraceDetail)
	if err := d.SetOption(codec.OptionTraceLevel, &detail); err != nil {
		t.Fatalf("SetOption(trace level) failed: %v", err)
	}
	records = nil
	if err := d.ReportUnit(codec.UnitInfo{FrameNum: 1}); err != nil {
		t.Fatalf("ReportUnit failed: %v", err)
	}
	if len(records) != 1 || records[0].level != codec.TraceDetail {
		t.Errorf("expected one detail record from ReportUnit, got %+v", records)
	}

	var disabled codec.TraceCallback
	if err := d.SetOption(codec.OptionTraceCallback, &disabled); err != nil {
		t.Fatalf("SetOption(nil callback) failed: %v", err)
	}
	records = nil
	d.Trace(codec.TraceError, "dropped")
	if len(records) != 0 {
		t.Errorf("tracing should be disabled, got %+v", records)
	}
}

func TestUninitializeDropsTraceSink(t *testing.T) {
	d := newInitialized(t)
	calls := 0
	cb := codec.TraceCallback(func(codec.TraceContext, codec.TraceLevel, string) { calls++ })
	if err := d.SetOption(codec.OptionTraceCallback, &cb); err != nil {
		t.Fatalf("SetOption failed: %v", err)
	}
	_ = d.Uninitialize()
	d.Trace(codec.TraceError, "after uninit")

	p := codec.NewDecodingParam()
	if err := d.Initialize(&p); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	d.Trace(codec.TraceError, "after reinit")
	if calls != 0 {
		t.Errorf("trace sink survived Uninitialize: %d calls", calls)
	}
}

func TestDestroy(t *testing.T) {
	d := newInitialized(t)
	d.Destroy()
	var out bool
	if err := d.GetOption(codec.OptionEndOfStream, &out); !errors.Is(err, codec.ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized after Destroy, got %v", err)
	}
}

func TestRejectedSetOptionKeepsValue(t *testing.T) {
	on := true
	debug := codec.TraceDebug
	frameCopy := codec.ConcealmentFrameCopy
	yuy2 := codec.VideoFormatYUY2
	wrongInt := int32(0)
	wrongBool := false
	wrongText := "frame-copy"
	var nilBool *bool
	var nilLevel *codec.TraceLevel

	tests := []struct {
		id       codec.OptionID
		value    any
		rejected []any
		read     func(d *Decoder) (any, error)
		want     any
	}{
		{codec.OptionEndOfStream, &on, []any{&wrongInt, &wrongText, nil, nilBool}, readBool(codec.OptionEndOfStream), true},
		{codec.OptionVCLNAL, &on, []any{&wrongInt, &wrongText, nil, nilBool}, readBool(codec.OptionVCLNAL), true},
		{codec.OptionLTRMarkingFlag, &on, []any{&wrongInt, &wrongText, nil, nilBool}, readBool(codec.OptionLTRMarkingFlag), true},
		{codec.OptionTraceLevel, &debug, []any{&wrongBool, &wrongText, nil, nilLevel}, readInt(codec.OptionTraceLevel), int32(codec.TraceDebug)},
		{codec.OptionErrorConcealment, &frameCopy, []any{&wrongBool, &wrongText, nil}, readInt(codec.OptionErrorConcealment), int32(codec.ConcealmentFrameCopy)},
		{codec.OptionDataFormat, &yuy2, []any{&wrongBool, &wrongText, nil}, readInt(codec.OptionDataFormat), int32(codec.CanonicalFormat)},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			d := newInitialized(t)
			if err := d.SetOption(tt.id, tt.value); err != nil {
				t.Fatalf("SetOption failed: %v", err)
			}
			for _, v := range tt.rejected {
				if err := d.SetOption(tt.id, v); !errors.Is(err, codec.ErrInvalidArgument) {
					t.Errorf("SetOption(%T): expected ErrInvalidArgument, got %v", v, err)
				}
				got, err := tt.read(d)
				if err != nil {
					t.Fatalf("GetOption failed: %v", err)
				}
				if got != tt.want {
					t.Errorf("after rejected %T: expected %v, got %v", v, tt.want, got)
				}
			}
		})
	}
}

func TestRejectedTraceCallbackKeepsSink(t *testing.T) {
	d := newInitialized(t)
	calls := 0
	cb := codec.TraceCallback(func(codec.TraceContext, codec.TraceLevel, string) { calls++ })
	if err := d.SetOption(codec.OptionTraceCallback, &cb); err != nil {
		t.Fatalf("SetOption failed: %v", err)
	}

	notCallback := "callback"
	if err := d.SetOption(codec.OptionTraceCallback, &notCallback); !errors.Is(err, codec.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	d.Trace(codec.TraceError, "still installed")
	if calls != 1 {
		t.Errorf("expected installed callback to fire once, got %d", calls)
	}
}

func TestEnumOptionsAcceptPlainIntegers(t *testing.T) {
	d := newInitialized(t)

	format := 7
	if err := d.SetOption(codec.OptionDataFormat, &format); err != nil {
		t.Fatalf("SetOption(DataFormat, *int) failed: %v", err)
	}
	var formatOut int
	if err := d.GetOption(codec.OptionDataFormat, &formatOut); err != nil {
		t.Fatalf("GetOption(DataFormat, *int) failed: %v", err)
	}
	if formatOut != int(codec.CanonicalFormat) {
		t.Errorf("expected %d, got %d", codec.CanonicalFormat, formatOut)
	}

	concealment := uint32(5)
	if err := d.SetOption(codec.OptionErrorConcealment, &concealment); err != nil {
		t.Fatalf("SetOption(ErrorConcealment, *uint32) failed: %v", err)
	}
	var concealmentOut uint32
	if err := d.GetOption(codec.OptionErrorConcealment, &concealmentOut); err != nil {
		t.Fatalf("GetOption(ErrorConcealment, *uint32) failed: %v", err)
	}
	if concealmentOut != uint32(codec.ConcealmentFrameCopy) {
		t.Errorf("expected %d, got %d", codec.ConcealmentFrameCopy, concealmentOut)
	}

	var nilInt *int
	if err := d.SetOption(codec.OptionTraceLevel, nilInt); !errors.Is(err, codec.ErrInvalidArgument) {
		t.Errorf("typed nil *int: expected ErrInvalidArgument, got %v", err)
	}
}

func readBool(id codec.OptionID) func(*Decoder) (any, error) {
	return func(d *Decoder) (any, error) {
		var b bool
		err := d.GetOption(id, &b)
		return b, err
	}
}

func readInt(id codec.OptionID) func(*Decoder) (any, error) {
	return func(d *Decoder) (any, error) {
		var i int32
		err := d.GetOption(id, &i)
		return i, err
	}
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	d := New()
	if _, ok := d.log.(discard); !ok {
		t.Errorf("expected discard logger, got %T", d.log)
	}
	d.Destroy()
	if _, ok := d.log.(discard); !ok {
		t.Errorf("expected discard logger after Destroy, got %T", d.log)
	}
}
