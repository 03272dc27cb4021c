package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mgood7123/android-9-patch/internal/mmfile"
	"github.com/mgood7123/android-9-patch/pkg/types"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool

	// opts is built once per invocation by setup.
	opts types.Options

	// printer formats numbers with digit grouping in text output.
	printer = message.NewPrinter(language.English)
)

var rootCmd = &cobra.Command{
	Use:   "ninepatchctl",
	Short: "Inspect and rescale Android 9-patch images",
	Long: `ninepatchctl reads the private 9-patch chunks of a PNG file (npTc, npLb,
npOl), reports the stretch regions, padding and insets, validates them and
computes the geometry of a rescaled image.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setup()
	},
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

// setup resolves process-wide settings once, before any command runs.
func setup() {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	opts = types.DefaultOptions(mmfile.PageSize())
	opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		printer.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		printer.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
