// Package tracesink bridges decoder trace callbacks to a ports.Logger.
package tracesink

import (
	"fmt"

	"github.com/user/svcdec/pkg/codec"
	"github.com/user/svcdec/pkg/ports"
)

// New returns a trace callback that forwards decoder messages to log.
//
// The trace context is used as a message prefix when it is a string or a
// fmt.Stringer; any other context is ignored.
func New(log ports.Logger) codec.TraceCallback {
	return func(ctx codec.TraceContext, level codec.TraceLevel, msg string) {
		if prefix := contextLabel(ctx); prefix != "" {
			msg = "[" + prefix + "] " + msg
		}
		switch {
		case level <= codec.TraceError:
			log.Error("%s", msg)
		case level <= codec.TraceWarning:
			log.Warn("%s", msg)
		case level <= codec.TraceInfo:
			log.Info("%s", msg)
		default:
			log.Debug("%s", msg)
		}
	}
}

func contextLabel(ctx codec.TraceContext) string {
	switch v := ctx.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}
