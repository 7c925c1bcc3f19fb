package cmd

import (
	"github.com/abhisek/statgen/internal/contextdata"
	"github.com/abhisek/statgen/internal/difficulty"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "statgen",
	Short: "Statistics word-problem generator",
	Long:  "Statgen builds seeded, difficulty-calibrated statistics questions (mean/median/mode, trimmed mean, weighted mean, percentile rank) for printable assessments.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("levels", "", "Path to a YAML file overriding the difficulty table")
	rootCmd.PersistentFlags().String("data", "", "Path to a YAML file overriding context entities (names, places, ...)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveTable returns the difficulty table from --levels, or the built-in defaults.
func resolveTable(cmd *cobra.Command) (*difficulty.Table, error) {
	if p, _ := cmd.Flags().GetString("levels"); p != "" {
		return difficulty.LoadFile(p)
	}
	return difficulty.Default(), nil
}

// resolveProvider returns the context provider from --data, or the built-in fallback set.
func resolveProvider(cmd *cobra.Command) (contextdata.Provider, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return contextdata.LoadFile(p)
	}
	return contextdata.NewFallbackProvider(), nil
}
