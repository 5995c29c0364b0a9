package report

import (
	"fmt"
	"strings"

	"github.com/user/svcdec/pkg/session"
)

// Markdown renders the report as a markdown document.
func Markdown(r *session.Report) string {
	var sb strings.Builder

	sb.WriteString("# Decoder Report\n\n")

	if r.Stream != nil {
		sb.WriteString("## Stream\n\n")
		sb.WriteString("| Item | Value |\n|------|-------|\n")
		fmt.Fprintf(&sb, "| Codec | %s |\n", r.Stream.Codec)
		fmt.Fprintf(&sb, "| Bitstream | %s |\n", r.Stream.BitstreamType)
		fmt.Fprintf(&sb, "| Size | %dx%d |\n", r.Stream.Width, r.Stream.Height)
		fmt.Fprintf(&sb, "| Samples | %d |\n", r.Stream.Samples)
		fmt.Fprintf(&sb, "| Sync Samples | %d |\n", len(r.Stream.Keyframes))
		fmt.Fprintf(&sb, "| Units Replayed | %d |\n\n", r.Units)
	}

	sb.WriteString("## Snapshot\n\n")
	sb.WriteString("| Field | Value |\n|-------|-------|\n")
	fmt.Fprintf(&sb, "| Output Format | %s (%d) |\n", r.Param.OutputFormat, int32(r.Param.OutputFormat))
	fmt.Fprintf(&sb, "| CPU Load | %d |\n", r.Param.CPULoad)
	fmt.Fprintf(&sb, "| Target DQ Layer | %d |\n", r.Param.TargetDQLayer)
	fmt.Fprintf(&sb, "| Error Concealment | %s |\n", r.Param.ErrorConcealment)
	fmt.Fprintf(&sb, "| Bitstream Type | %s |\n\n", r.Param.VideoProperty.BitstreamType)

	sb.WriteString("## Options\n\n")
	sb.WriteString("| Option | Access | Kind | Value |\n|--------|--------|------|-------|\n")
	for _, o := range r.Options {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", o.ID, o.Access, o.Kind, valueOrDash(o))
	}

	return sb.String()
}
