// Package decoder implements the configuration and lifecycle facade of the
// SVC/AVC decoder. Options are routed through a static registry and are only
// accessible between Initialize and Uninitialize.
//
// A Decoder has a single owner: it performs no locking and callers sharing
// one across goroutines must serialize access.
package decoder

import (
	"fmt"

	"github.com/user/svcdec/pkg/codec"
	"github.com/user/svcdec/pkg/ports"
)

type lifecycle int

const (
	stateUninitialized lifecycle = iota
	stateInitialized
)

func (l lifecycle) String() string {
	if l == stateInitialized {
		return "initialized"
	}
	return "uninitialized"
}

// optionState holds every value reachable through the option interface.
type optionState struct {
	dataFormat    codec.VideoFormat
	endOfStream   bool
	vclNAL        bool
	ltrMarking    bool
	concealment   codec.ErrorConcealment
	unit          codec.UnitInfo
	traceLevel    codec.TraceLevel
	traceCallback codec.TraceCallback
	traceContext  codec.TraceContext
}

// Decoder is the stateful decoder object.
type Decoder struct {
	log   ports.Logger
	state lifecycle
	param codec.DecodingParam
	opts  optionState
}

// Option configures a Decoder at construction.
type Option func(*Decoder)

// WithLogger sets the logger used for internal diagnostics.
func WithLogger(log ports.Logger) Option {
	return func(d *Decoder) {
		if log != nil {
			d.log = log.WithComponent("decoder")
		}
	}
}

// New creates an uninitialized decoder.
func New(opts ...Option) *Decoder {
	d := &Decoder{log: discard{}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Initialize validates param and moves the decoder to the initialized state.
// Calling it on an initialized decoder resets every option first.
// On failure the decoder keeps its previous state.
func (d *Decoder) Initialize(param *codec.DecodingParam) error {
	if param == nil {
		d.log.Debug("Initialize rejected: %s", "nil snapshot")
		return codec.ErrConfigError
	}
	if param.VideoProperty.Size != codec.VideoPropertySize {
		d.log.Debug("Initialize rejected: size tag %d, expected %d", param.VideoProperty.Size, codec.VideoPropertySize)
		return fmt.Errorf("video property size %d: %w", param.VideoProperty.Size, codec.ErrConfigError)
	}

	if d.state == stateInitialized {
		d.log.Debug("Reinitializing decoder")
	}

	d.param = *param
	d.opts = optionState{
		dataFormat:  codec.CanonicalFormat,
		concealment: param.ErrorConcealment & codec.ConcealmentMask,
		unit:        codec.NoUnit,
		traceLevel:  codec.TraceDefault,
	}
	d.state = stateInitialized
	d.log.Debug("Decoder initialized: format %s, bitstream %s, concealment %s",
		param.OutputFormat, param.VideoProperty.BitstreamType, d.opts.concealment)
	return nil
}

// Uninitialize discards the snapshot and trace sink. It always succeeds and is
// idempotent.
func (d *Decoder) Uninitialize() error {
	if d.state == stateInitialized {
		d.log.Debug("Decoder uninitialized")
	}
	d.param = codec.DecodingParam{}
	d.opts = optionState{}
	d.state = stateUninitialized
	return nil
}

// Destroy tears the decoder down. The object must not be reused afterwards.
func (d *Decoder) Destroy() {
	_ = d.Uninitialize()
	d.log = discard{}
}

// Initialized reports whether options may be accessed.
func (d *Decoder) Initialized() bool {
	return d.state == stateInitialized
}

// Snapshot returns a copy of the snapshot passed to Initialize.
func (d *Decoder) Snapshot() (codec.DecodingParam, bool) {
	if d.state != stateInitialized {
		return codec.DecodingParam{}, false
	}
	return d.param, true
}

// SetOption sets option id from the pointer value.
//
// Checks run in this order: lifecycle, identifier, access, nil value, type.
// A failed call leaves the decoder unchanged.
func (d *Decoder) SetOption(id codec.OptionID, value any) error {
	e, err := d.resolve(id)
	if err != nil {
		return err
	}
	if !e.Access.CanWrite() {
		return d.reject("SetOption", id, codec.ErrNotWritable)
	}
	if isNil(value) {
		return d.reject("SetOption", id, codec.ErrInvalidArgument)
	}

	next := d.opts
	if !e.set(&next, value) {
		return d.reject("SetOption", id, codec.ErrInvalidArgument)
	}
	d.opts = next
	d.Trace(codec.TraceDetail, "option %s set", id)
	return nil
}

// GetOption writes the current value of option id into out.
// out is left untouched on failure.
func (d *Decoder) GetOption(id codec.OptionID, out any) error {
	e, err := d.resolve(id)
	if err != nil {
		return err
	}
	if !e.Access.CanRead() {
		return d.reject("GetOption", id, codec.ErrNotReadable)
	}
	if isNil(out) {
		return d.reject("GetOption", id, codec.ErrInvalidArgument)
	}
	if !e.get(&d.opts, out) {
		return d.reject("GetOption", id, codec.ErrInvalidArgument)
	}
	return nil
}

// ReportUnit records the stream state of the most recently decoded unit.
func (d *Decoder) ReportUnit(info codec.UnitInfo) error {
	if d.state != stateInitialized {
		return codec.ErrNotInitialized
	}
	d.opts.unit = info
	d.Trace(codec.TraceDetail, "unit decoded: frame_num=%d temporal_id=%d idr_pic_id=%d",
		info.FrameNum, info.TemporalID, info.IDRPicID)
	return nil
}

// Trace delivers a message to the installed trace callback when level is
// within the configured threshold.
func (d *Decoder) Trace(level codec.TraceLevel, format string, args ...interface{}) {
	if d.state != stateInitialized || d.opts.traceCallback == nil {
		return
	}
	if level <= codec.TraceQuiet || level > d.opts.traceLevel {
		return
	}
	d.opts.traceCallback(d.opts.traceContext, level, fmt.Sprintf(format, args...))
}

func (d *Decoder) resolve(id codec.OptionID) (entry, error) {
	if d.state != stateInitialized {
		return entry{}, codec.ErrNotInitialized
	}
	e, ok := registry[id]
	if !ok {
		return entry{}, d.reject("option lookup", id, codec.ErrUnsupportedOption)
	}
	return e, nil
}

func (d *Decoder) reject(op string, id codec.OptionID, err error) error {
	d.log.Debug("%s %s rejected: %s", op, id, err)
	return err
}

// discard is the logger used until WithLogger supplies one.
type discard struct{}

func (discard) Debug(string, ...interface{}) {}
func (discard) Info(string, ...interface{})  {}
func (discard) Warn(string, ...interface{})  {}
func (discard) Error(string, ...interface{}) {}

func (d discard) WithComponent(string) ports.Logger { return d }

var _ ports.OptionDecoder = (*Decoder)(nil)
