package mocks

import (
	"github.com/user/svcdec/pkg/codec"
	"github.com/user/svcdec/pkg/ports"
)

// OptionDecoder is a mock implementation of ports.OptionDecoder.
type OptionDecoder struct {
	InitializeFunc func(param *codec.DecodingParam) error
	SetOptionFunc  func(id codec.OptionID, value any) error
	GetOptionFunc  func(id codec.OptionID, out any) error

	// Recorded calls for verification
	Calls         []string
	Param         *codec.DecodingParam
	SetOptions    []codec.OptionID
	Units         []codec.UnitInfo
	Uninitialized int
	Destroyed     bool
}

func (m *OptionDecoder) Initialize(param *codec.DecodingParam) error {
	m.Calls = append(m.Calls, "Initialize")
	if param != nil {
		p := *param
		m.Param = &p
	}
	if m.InitializeFunc != nil {
		return m.InitializeFunc(param)
	}
	return nil
}

func (m *OptionDecoder) Uninitialize() error {
	m.Calls = append(m.Calls, "Uninitialize")
	m.Uninitialized++
	return nil
}

func (m *OptionDecoder) SetOption(id codec.OptionID, value any) error {
	m.Calls = append(m.Calls, "SetOption")
	m.SetOptions = append(m.SetOptions, id)
	if m.SetOptionFunc != nil {
		return m.SetOptionFunc(id, value)
	}
	return nil
}

func (m *OptionDecoder) GetOption(id codec.OptionID, out any) error {
	m.Calls = append(m.Calls, "GetOption")
	if m.GetOptionFunc != nil {
		return m.GetOptionFunc(id, out)
	}
	return nil
}

func (m *OptionDecoder) ReportUnit(info codec.UnitInfo) error {
	m.Calls = append(m.Calls, "ReportUnit")
	m.Units = append(m.Units, info)
	return nil
}

func (m *OptionDecoder) Destroy() {
	m.Destroyed = true
}

var _ ports.OptionDecoder = (*OptionDecoder)(nil)
