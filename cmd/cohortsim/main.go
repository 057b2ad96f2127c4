package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cohortsim",
		Short: "Multi-cohort synthetic survey data generator",
		Long: `cohortsim generates synthetic workplace survey data (job satisfaction,
intent to quit, age, organizational tenure) across firm-size cohorts,
each with its own correlation structure, for downstream turnover analysis.`,
		// Configuration errors exit 1 with a single error line, not the
		// usage text. main prints the error itself.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("cohortsim version %s\n", version)
			}
		},
	}
}
