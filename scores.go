package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/trvswgnr/gopher-maze/storage"
)

var (
	flagLimit int
	flagCopy  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the highest scoring runs recorded on this machine.

Examples:
  gopher-maze scores
  gopher-maze scores --limit 3 --copy`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagCopy, "copy", false, "Copy the table to the clipboard")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	table := formatRuns(runs)
	fmt.Fprint(cmd.OutOrStdout(), table)

	if flagCopy && len(runs) > 0 {
		if err := clipboard.WriteAll(table); err != nil {
			return fmt.Errorf("copy scores: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Copied to clipboard.")
	}
	return nil
}

func formatRuns(runs []storage.Run) string {
	if len(runs) == 0 {
		return "No runs recorded yet.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-4s  %s\n", "Rank", "Run")
	fmt.Fprintf(&b, "  %-4s  %s\n", "----", "---")
	for i, r := range runs {
		fmt.Fprintf(&b, "  %-4d  %s\n", i+1, r)
	}
	return b.String()
}
