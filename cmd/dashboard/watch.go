package main

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rohits-web03/quickdrop/internal/config"
	"github.com/rohits-web03/quickdrop/internal/dashboard"
)

var (
	interval time.Duration
	logFile  string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live terminal dashboard that polls the API",
	Long: `Poll the API on a fixed interval and show transfer statistics.

Polling keeps running after a failed request; press r to retry at once.`,
	RunE: runWatch,
}

func addWatchFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&interval, "interval", config.Envs.PollInterval, "polling interval")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the dashboard runs")
}

func init() {
	addWatchFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	// The dashboard owns the terminal; logs go to a file or nowhere.
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "dashboard")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var program *tea.Program
	poller := dashboard.NewPoller(newClient(), interval, func(s dashboard.Snapshot) {
		program.Send(dashboard.SnapshotMsg(s))
	})
	program = tea.NewProgram(dashboard.NewModel(poller.Refresh), tea.WithAltScreen(), tea.WithContext(ctx))

	done := make(chan struct{})
	go func() {
		defer close(done)
		poller.Run(ctx)
	}()

	_, err := program.Run()
	cancel()
	<-done
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
