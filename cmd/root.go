package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dusted-go/logging/prettylog"
	"github.com/spf13/cobra"
)

var quiet bool

var rootCmd = &cobra.Command{
	Use:   "clonebench",
	Short: "String clone cost benchmarks",
	Long: `clonebench measures the relative cost of duplicating a large text
buffer by full copy versus by incrementing a reference count on a shared,
mutably-borrowable buffer.

The same comparisons are exposed as standard Go benchmarks:
  go test -bench=. -benchmem ./...`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
}

func setupLogging() {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	handler := prettylog.New(&slog.HandlerOptions{Level: level},
		prettylog.WithDestinationWriter(os.Stderr))
	slog.SetDefault(slog.New(handler))
}
