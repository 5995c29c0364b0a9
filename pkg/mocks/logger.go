package mocks

import (
	"fmt"

	"github.com/user/svcdec/pkg/ports"
)

// LogEntry records one logged message.
type LogEntry struct {
	Level     string
	Component string
	Message   string
}

// Logger is a mock implementation of ports.Logger that records formatted messages.
type Logger struct {
	Entries   []LogEntry
	component string
	parent    *Logger
}

func (m *Logger) record(level, msg string, args ...interface{}) {
	root := m
	if m.parent != nil {
		root = m.parent
	}
	root.Entries = append(root.Entries, LogEntry{
		Level:     level,
		Component: m.component,
		Message:   fmt.Sprintf(msg, args...),
	})
}

func (m *Logger) Debug(msg string, args ...interface{}) { m.record("debug", msg, args...) }
func (m *Logger) Info(msg string, args ...interface{})  { m.record("info", msg, args...) }
func (m *Logger) Warn(msg string, args ...interface{})  { m.record("warn", msg, args...) }
func (m *Logger) Error(msg string, args ...interface{}) { m.record("error", msg, args...) }

// WithComponent returns a child logger whose entries are recorded on m.
func (m *Logger) WithComponent(component string) ports.Logger {
	root := m
	if m.parent != nil {
		root = m.parent
	}
	return &Logger{component: component, parent: root}
}

var _ ports.Logger = (*Logger)(nil)
