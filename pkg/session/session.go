// Package session drives a decoder through one complete configuration
// lifecycle: probe, initialize, configure, replay and report.
package session

import (
	"context"
	"fmt"

	"github.com/user/svcdec/pkg/codec"
	"github.com/user/svcdec/pkg/config"
	"github.com/user/svcdec/pkg/decoder"
	"github.com/user/svcdec/pkg/ports"
)

// Config contains all configuration for a session.
type Config struct {
	// InputPath is an optional container to probe. When set, its bitstream
	// type replaces the one in Param and its sample structure is replayed.
	InputPath string

	// Param is the Initialize snapshot.
	Param codec.DecodingParam

	// Overrides are applied in order after Initialize.
	Overrides []config.Override

	// TraceContext is forwarded with every trace message.
	TraceContext codec.TraceContext

	// MarkEndOfStream sets the end-of-stream flag after the replay.
	MarkEndOfStream bool
}

// OptionValue is the observed value of one option.
type OptionValue struct {
	ID       codec.OptionID
	Access   codec.Access
	Kind     codec.Kind
	Readable bool
	Value    string
}

// Report is the result of a session.
type Report struct {
	Stream  *ports.StreamInfo
	Param   codec.DecodingParam
	Units   int
	Options []OptionValue
}

// Session coordinates a decoder, a prober and a trace sink.
type Session struct {
	decoder ports.OptionDecoder
	prober  ports.StreamProber
	trace   codec.TraceCallback
	logger  ports.Logger
}

// New creates a new Session. prober and trace may be nil.
func New(dec ports.OptionDecoder, prober ports.StreamProber, trace codec.TraceCallback, logger ports.Logger) *Session {
	return &Session{
		decoder: dec,
		prober:  prober,
		trace:   trace,
		logger:  logger,
	}
}

// Run executes the session. The decoder is always uninitialized before Run returns.
func (s *Session) Run(ctx context.Context, cfg Config) (*Report, error) {
	report := &Report{Param: cfg.Param}

	// 1. Probe
	if cfg.InputPath != "" && s.prober != nil {
		s.logger.Info("Probing %s", cfg.InputPath)
		info, err := s.prober.ProbeFile(cfg.InputPath)
		if err != nil {
			return nil, fmt.Errorf("probe: %w", err)
		}
		s.logger.Info("Stream: %s, %dx%d, %d samples (%d sync)",
			info.Codec, info.Width, info.Height, info.Samples, len(info.Keyframes))
		report.Stream = &info
		report.Param.VideoProperty.BitstreamType = info.BitstreamType
	}

	// 2. Initialize
	param := report.Param
	if err := s.decoder.Initialize(&param); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}
	defer s.decoder.Uninitialize()

	// 3. Trace sink
	if s.trace != nil {
		if err := s.decoder.SetOption(codec.OptionTraceCallback, &s.trace); err != nil {
			return nil, fmt.Errorf("install trace sink: %w", err)
		}
		traceCtx := cfg.TraceContext
		if err := s.decoder.SetOption(codec.OptionTraceCallbackContext, &traceCtx); err != nil {
			return nil, fmt.Errorf("install trace context: %w", err)
		}
	}

	// 4. Overrides
	if len(cfg.Overrides) > 0 {
		s.logger.Info("Applying %d option overrides", len(cfg.Overrides))
	}
	for _, o := range cfg.Overrides {
		if err := s.decoder.SetOption(o.ID, o.Value); err != nil {
			s.logger.Error("Failed to set %s: %s", o.ID, err)
			return nil, fmt.Errorf("set %s: %w", o.ID, err)
		}
	}

	// 5. Replay
	if report.Stream != nil {
		units := replayUnits(*report.Stream)
		s.logger.Info("Replaying %d units", len(units))
		for _, u := range units {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := s.decoder.ReportUnit(u); err != nil {
				return nil, fmt.Errorf("report unit: %w", err)
			}
			report.Units++
		}
	}

	if cfg.MarkEndOfStream {
		eos := true
		if err := s.decoder.SetOption(codec.OptionEndOfStream, &eos); err != nil {
			return nil, fmt.Errorf("set %s: %w", codec.OptionEndOfStream, err)
		}
	}

	// 6. Report
	values, err := s.collect()
	if err != nil {
		return nil, err
	}
	report.Options = values

	s.logger.Info("Session completed")
	return report, nil
}

func (s *Session) collect() ([]OptionValue, error) {
	var values []OptionValue
	for _, desc := range decoder.Options() {
		v := OptionValue{
			ID:       desc.ID,
			Access:   desc.Access,
			Kind:     desc.Kind,
			Readable: desc.Access.CanRead(),
		}
		if v.Readable {
			str, err := s.read(desc)
			if err != nil {
				return nil, fmt.Errorf("get %s: %w", desc.ID, err)
			}
			v.Value = str
		}
		values = append(values, v)
	}
	return values, nil
}

func (s *Session) read(desc decoder.Descriptor) (string, error) {
	switch desc.Kind {
	case codec.KindBool:
		var b bool
		err := s.decoder.GetOption(desc.ID, &b)
		return fmt.Sprintf("%t", b), err
	case codec.KindFormat:
		var f codec.VideoFormat
		err := s.decoder.GetOption(desc.ID, &f)
		return fmt.Sprintf("%s (%d)", f, int32(f)), err
	case codec.KindConcealment:
		var c codec.ErrorConcealment
		err := s.decoder.GetOption(desc.ID, &c)
		return fmt.Sprintf("%s (%d)", c, int32(c)), err
	case codec.KindTraceLevel:
		var l codec.TraceLevel
		err := s.decoder.GetOption(desc.ID, &l)
		return fmt.Sprintf("%s (%d)", l, int32(l)), err
	default:
		var i int32
		err := s.decoder.GetOption(desc.ID, &i)
		return fmt.Sprintf("%d", i), err
	}
}
