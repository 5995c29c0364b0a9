// Package codec defines the value types shared by the decoder and its callers:
// status codes, the initialization snapshot, option identifiers and trace types.
package codec

import "errors"

// Status is the result code surfaced by every decoder operation.
// Non-success values implement error so they can be returned and matched
// with errors.Is.
type Status int

const (
	// StatusSuccess reports that the operation completed.
	StatusSuccess Status = iota
	// StatusNotInitialized is returned when an option is accessed before Initialize.
	StatusNotInitialized
	// StatusInvalidArgument is returned for a nil value or a value of the wrong type.
	StatusInvalidArgument
	// StatusUnsupportedOption is returned for an option identifier outside the registry.
	StatusUnsupportedOption
	// StatusNotWritable is returned when SetOption targets a read-only option.
	StatusNotWritable
	// StatusNotReadable is returned when GetOption targets a write-only option.
	StatusNotReadable
	// StatusConfigError is returned when Initialize receives a malformed snapshot.
	StatusConfigError
)

var (
	ErrNotInitialized    error = StatusNotInitialized
	ErrInvalidArgument   error = StatusInvalidArgument
	ErrUnsupportedOption error = StatusUnsupportedOption
	ErrNotWritable       error = StatusNotWritable
	ErrNotReadable       error = StatusNotReadable
	ErrConfigError       error = StatusConfigError
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotInitialized:
		return "not initialized"
	case StatusInvalidArgument:
		return "invalid argument"
	case StatusUnsupportedOption:
		return "unsupported option"
	case StatusNotWritable:
		return "option not writable"
	case StatusNotReadable:
		return "option not readable"
	case StatusConfigError:
		return "configuration error"
	default:
		return "unknown status"
	}
}

// Error implements the error interface.
func (s Status) Error() string {
	return "svcdec: " + s.String()
}

// StatusOf maps an error returned by a decoder operation back to its Status.
// A nil error is StatusSuccess. Errors that carry no Status are treated as
// caller-input errors.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return StatusInvalidArgument
}
