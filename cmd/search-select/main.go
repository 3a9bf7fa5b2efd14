package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/search-select/internal/logging"
	"github.com/ruminaider/search-select/internal/paths"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	logFile  string
	logLevel string

	logger    = slog.New(slog.DiscardHandler)
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "search-select",
	Short: "Pick a value from a searchable list",
	Long:  "search-select shows a searchable select box in the terminal and prints the value you pick.",
	// Errors are printed once in main; cancelling is silent.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, c, err := logging.New(logging.Options{File: logFile, Level: logLevel})
		if err != nil {
			return err
		}
		logger, logCloser = l, c
		logger.Debug("starting", "command", cmd.Name(), "version", version)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser == nil {
			return nil
		}
		return logCloser.Close()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "search-select %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", paths.LogFile(), "write JSON logs to this file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(filterCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
