package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/rohits-web03/quickdrop/internal/charts"
	"github.com/rohits-web03/quickdrop/internal/config"
	"github.com/rohits-web03/quickdrop/internal/repositories"
	"github.com/rohits-web03/quickdrop/internal/stats"
)

var (
	reportOut     string
	reportUpload  bool
	reportExpires time.Duration
	reportCopy    bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the chart page to a file or object storage",
	Long: `Render the file type, daily volume and outcome charts as HTML.

With --upload the page is stored in the configured R2 bucket and a
presigned download link is printed.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "quickdrop-report.html", "output file")
	reportCmd.Flags().BoolVar(&reportUpload, "upload", false, "upload the report to R2 instead of writing a file")
	reportCmd.Flags().DurationVar(&reportExpires, "expires", 24*time.Hour, "lifetime of the presigned link")
	reportCmd.Flags().BoolVar(&reportCopy, "copy", false, "copy the presigned link to the clipboard")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	events, err := newClient().FetchLogs(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	var buf bytes.Buffer
	if err := charts.Render(&buf, stats.Build(events, now)); err != nil {
		return err
	}

	if !reportUpload {
		if err := os.WriteFile(reportOut, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%d transfers)\n", reportOut, len(events))
		return nil
	}

	store, err := repositories.NewReportStore(config.Envs.R2)
	if err != nil {
		return err
	}

	key := repositories.ReportKey(now)
	if err := store.Upload(ctx, key, buf.Bytes(), "text/html; charset=utf-8"); err != nil {
		return err
	}
	ok, err := store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("verify upload: %w", err)
	}
	if !ok {
		return fmt.Errorf("report %s missing after upload", key)
	}

	url, err := store.PresignGetURL(ctx, key, reportExpires)
	if err != nil {
		return fmt.Errorf("presign report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)

	if reportCopy {
		if err := clipboard.WriteAll(url); err != nil {
			log.Printf("Could not copy link to clipboard: %v", err)
		}
	}
	return nil
}
