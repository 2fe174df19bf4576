package harness

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// Report formats accepted by WriteReport.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// WriteReport renders results to w in the given format.
func WriteReport(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatText:
		return WriteText(w, results)
	case FormatJSON:
		return WriteJSON(w, results)
	default:
		return fmt.Errorf("harness: unknown report format %q", format)
	}
}

// WriteText renders results as an aligned human-readable table.
func WriteText(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tVARIANT\tMEAN\tSTDDEV\tTHROUGHPUT\tALLOCS/OP\tB/OP")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%v\t%s\t%d\t%d\n",
			r.Group, r.Variant, r.Mean, r.StdDev,
			formatThroughput(r.ThroughputBps), r.AllocsPerOp, r.AllocedBytesPerOp)
	}
	return tw.Flush()
}

// WriteJSON renders results as indented JSON.
func WriteJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func formatThroughput(bps float64) string {
	switch {
	case bps <= 0:
		return "-"
	case bps >= 1e9:
		return fmt.Sprintf("%.2f GB/s", bps/1e9)
	case bps >= 1e6:
		return fmt.Sprintf("%.2f MB/s", bps/1e6)
	case bps >= 1e3:
		return fmt.Sprintf("%.2f KB/s", bps/1e3)
	default:
		return fmt.Sprintf("%.0f B/s", bps)
	}
}
