package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rohits-web03/quickdrop/internal/config"
	"github.com/rohits-web03/quickdrop/internal/dashboard"
)

var (
	apiURL  string
	timeout time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "QuickDrop transfer dashboard",
	Long: "Track file transfers recorded by the QuickDrop API.\n\n" +
		"Without a subcommand the live terminal dashboard is started.",
	SilenceUsage: true,
	RunE:         runWatch,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", config.Envs.APIURL, "base URL of the QuickDrop API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "HTTP request timeout")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(healthCmd)

	addWatchFlags(rootCmd)
}

func newClient() *dashboard.Client {
	return dashboard.NewClient(apiURL, timeout)
}
