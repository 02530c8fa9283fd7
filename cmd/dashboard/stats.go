package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rohits-web03/quickdrop/internal/charts"
	"github.com/rohits-web03/quickdrop/internal/stats"
)

var statsOutput string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print transfer statistics once",
	Long: `Fetch the latest transfers and print the aggregated report.

Output formats:
  - text (default)
  - json
  - yaml`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsOutput, "output", "o", "text", "output format: text, json or yaml")
}

func runStats(cmd *cobra.Command, args []string) error {
	events, err := newClient().FetchLogs(cmd.Context())
	if err != nil {
		return err
	}
	report := stats.Build(events, time.Now())
	return writeReport(cmd.OutOrStdout(), report, statsOutput)
}

func writeReport(w io.Writer, r stats.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return writeText(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, r stats.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	s := r.Summary
	p := r.Performance

	fmt.Fprintf(tw, "Total transfers\t%d\n", s.TotalTransfers)
	fmt.Fprintf(tw, "Total size\t%s\n", stats.FormatBytes(s.TotalSize))
	fmt.Fprintf(tw, "Success rate\t%s%%\n", s.SuccessRatePercent())
	fmt.Fprintf(tw, "Most active device\t%s (%d)\n", s.MostActiveDevice, s.MostActiveCount)
	fmt.Fprintf(tw, "Unique devices\t%d\n", s.UniqueDevices)
	fmt.Fprintf(tw, "Average size\t%s\n", stats.FormatFileSize(p.AverageSize))
	fmt.Fprintf(tw, "Largest transfer\t%s\n", stats.FormatBytes(p.LargestTransfer))
	fmt.Fprintf(tw, "Transfers today\t%d\n", p.TodayCount)

	fmt.Fprintln(tw, "\nFile type\tTransfers")
	for _, tc := range r.FileTypes {
		fmt.Fprintf(tw, "%s\t%d\n", charts.TypeLabel(tc.FileType), tc.Count)
	}

	fmt.Fprintln(tw, "\nDate\tTransfers\tSuccessful\tFailed")
	for i, dc := range r.Timeline {
		o := r.Outcomes[i]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", dc.Date, dc.Count, o.Successful, o.Failed)
	}
	return tw.Flush()
}
