package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	jsonOut    bool
	iterations int
)

var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "storbench",
	Short: "Exercise and measure storkit storage strategies",
	Long: `storbench runs small synthetic workloads against the storkit storage
strategies (inline, allocator-backed, and the composites) and reports timing
and allocator traffic for each.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		if jsonOut {
			logger = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
		} else {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(level)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		IntVarP(&iterations, "iterations", "n", 100000, "Workload iterations per storage")
}
