// Package report renders session reports as text or markdown.
package report

import "github.com/user/svcdec/pkg/session"

// Formatter defines the interface for formatting a session report.
type Formatter interface {
	// Format converts a Report to a formatted string.
	Format(report *session.Report) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(report *session.Report) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(report *session.Report) string {
	return f(report)
}

// ForName returns the formatter registered under name ("text" or "markdown").
func ForName(name string) (Formatter, bool) {
	switch name {
	case "text", "":
		return FormatFunc(Text), true
	case "markdown", "md":
		return FormatFunc(Markdown), true
	default:
		return nil, false
	}
}
