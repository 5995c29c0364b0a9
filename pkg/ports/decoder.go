package ports

import "github.com/user/svcdec/pkg/codec"

// OptionDecoder abstracts the configuration and lifecycle surface of a decoder.
type OptionDecoder interface {
	// Initialize stores a private copy of param and enables option access.
	Initialize(param *codec.DecodingParam) error

	// Uninitialize discards the snapshot and trace sink. It always succeeds.
	Uninitialize() error

	// SetOption writes the value pointed to by value.
	SetOption(id codec.OptionID, value any) error

	// GetOption writes the current value of the option into out.
	GetOption(id codec.OptionID, out any) error

	// ReportUnit records the stream state after a decoded unit.
	ReportUnit(info codec.UnitInfo) error

	// Destroy releases the decoder. It is the last call on the object.
	Destroy()
}
