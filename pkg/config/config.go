// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/user/svcdec/pkg/codec"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration value cannot be mapped.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the full configuration for a decoder session.
type Config struct {
	Decoding DecodingConfig `yaml:"decoding"`
	Options  OptionsConfig  `yaml:"options"`

	// Logging
	LogLevel string `yaml:"log_level"`
	// TraceContext labels trace messages forwarded to the log.
	TraceContext string `yaml:"trace_context"`
}

// DecodingConfig holds the values of the Initialize snapshot.
type DecodingConfig struct {
	OutputFormat     string `yaml:"output_format"`
	CPULoad          uint32 `yaml:"cpu_load"`
	TargetDQLayer    uint8  `yaml:"target_dq_layer"`
	ErrorConcealment string `yaml:"error_concealment"`
	BitstreamType    string `yaml:"bitstream_type"`
}

// OptionsConfig holds option overrides applied after Initialize.
// Nil fields are left at the decoder default.
type OptionsConfig struct {
	DataFormat       *string `yaml:"data_format"`
	EndOfStream      *bool   `yaml:"end_of_stream"`
	VCLNAL           *bool   `yaml:"vcl_nal"`
	LTRMarking       *bool   `yaml:"ltr_marking"`
	ErrorConcealment *string `yaml:"error_concealment"`
	TraceLevel       *string `yaml:"trace_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Decoding: DecodingConfig{
			OutputFormat:     codec.CanonicalFormat.String(),
			TargetDQLayer:    0xff,
			ErrorConcealment: codec.ConcealmentSliceCopy.String(),
			BitstreamType:    codec.BitstreamDefault.String(),
		},
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	return Parse(data)
}

// Parse decodes YAML data on top of Defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every enumerated name is known.
func (c Config) Validate() error {
	if _, err := c.DecodingParam(); err != nil {
		return err
	}
	_, err := c.Overrides()
	return err
}

// DecodingParam builds the Initialize snapshot with a valid size tag.
func (c Config) DecodingParam() (codec.DecodingParam, error) {
	p := codec.NewDecodingParam()

	format, ok := codec.ParseVideoFormat(c.Decoding.OutputFormat)
	if !ok {
		return p, fmt.Errorf("%w: output_format %q", ErrInvalidConfig, c.Decoding.OutputFormat)
	}
	ec, ok := codec.ParseErrorConcealment(c.Decoding.ErrorConcealment)
	if !ok {
		return p, fmt.Errorf("%w: error_concealment %q", ErrInvalidConfig, c.Decoding.ErrorConcealment)
	}
	bt, ok := codec.ParseBitstreamType(c.Decoding.BitstreamType)
	if !ok {
		return p, fmt.Errorf("%w: bitstream_type %q", ErrInvalidConfig, c.Decoding.BitstreamType)
	}

	p.OutputFormat = format
	p.CPULoad = c.Decoding.CPULoad
	p.TargetDQLayer = c.Decoding.TargetDQLayer
	p.ErrorConcealment = ec
	p.VideoProperty.BitstreamType = bt
	return p, nil
}

// Override is one option value to apply after Initialize.
// Value is a pointer suitable for SetOption.
type Override struct {
	ID    codec.OptionID
	Value any
}

// Overrides converts the options section into SetOption calls, in option
// identifier order.
func (c Config) Overrides() ([]Override, error) {
	var out []Override
	o := c.Options

	if o.DataFormat != nil {
		f, ok := codec.ParseVideoFormat(*o.DataFormat)
		if !ok {
			return nil, fmt.Errorf("%w: options.data_format %q", ErrInvalidConfig, *o.DataFormat)
		}
		out = append(out, Override{codec.OptionDataFormat, &f})
	}
	if o.EndOfStream != nil {
		v := *o.EndOfStream
		out = append(out, Override{codec.OptionEndOfStream, &v})
	}
	if o.VCLNAL != nil {
		v := *o.VCLNAL
		out = append(out, Override{codec.OptionVCLNAL, &v})
	}
	if o.LTRMarking != nil {
		v := *o.LTRMarking
		out = append(out, Override{codec.OptionLTRMarkingFlag, &v})
	}
	if o.ErrorConcealment != nil {
		ec, ok := codec.ParseErrorConcealment(*o.ErrorConcealment)
		if !ok {
			return nil, fmt.Errorf("%w: options.error_concealment %q", ErrInvalidConfig, *o.ErrorConcealment)
		}
		out = append(out, Override{codec.OptionErrorConcealment, &ec})
	}
	if o.TraceLevel != nil {
		l, ok := codec.ParseTraceLevel(*o.TraceLevel)
		if !ok {
			return nil, fmt.Errorf("%w: options.trace_level %q", ErrInvalidConfig, *o.TraceLevel)
		}
		out = append(out, Override{codec.OptionTraceLevel, &l})
	}

	return out, nil
}
