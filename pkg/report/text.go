package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/user/svcdec/pkg/session"
)

// Text renders the report as aligned plain text.
func Text(r *session.Report) string {
	var sb strings.Builder

	if r.Stream != nil {
		fmt.Fprintf(&sb, "stream: %s %dx%d, %d samples, %d sync, %d units replayed\n",
			r.Stream.Codec, r.Stream.Width, r.Stream.Height, r.Stream.Samples, len(r.Stream.Keyframes), r.Units)
	}
	fmt.Fprintf(&sb, "snapshot: format=%s cpu_load=%d target_dq_layer=%d concealment=%s bitstream=%s\n\n",
		r.Param.OutputFormat, r.Param.CPULoad, r.Param.TargetDQLayer,
		r.Param.ErrorConcealment, r.Param.VideoProperty.BitstreamType)

	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPTION\tACCESS\tKIND\tVALUE")
	for _, o := range r.Options {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.ID, o.Access, o.Kind, valueOrDash(o))
	}
	tw.Flush()

	return sb.String()
}

func valueOrDash(o session.OptionValue) string {
	if !o.Readable {
		return "-"
	}
	return o.Value
}
