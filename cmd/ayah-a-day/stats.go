package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hashim125/ayah-a-day/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats [surah]",
	Short: "Show per-surah verse counts and coverage",
	Long: `Stats prints one line per surah: verse count, first and last verse key,
and how many verses lack a translation or commentary. With a surah number
only that surah is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := engineConfig(cmd)
	ix, _, err := loadIndex(cfg.Data, os.Stderr)
	if err != nil {
		return err
	}

	stats := ix.Stats()
	if len(args) == 1 {
		surah, err := strconv.Atoi(args[0])
		if err != nil || surah < 1 || surah > types.SurahCount {
			return fmt.Errorf("invalid surah number %q (want 1..%d)", args[0], types.SurahCount)
		}
		var filtered []types.SurahStats
		for _, s := range stats {
			if s.Surah == surah {
				filtered = append(filtered, s)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("surah %d: %w", surah, types.ErrVerseNotFound)
		}
		stats = filtered
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return encodeJSON(os.Stdout, stats)
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-7s  %-8s  %-8s  %-16s  %s\n",
		"Surah", "Verses", "First", "Last", "No translation", "No commentary")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 72))
	total := 0
	for _, s := range stats {
		fmt.Fprintf(os.Stdout, "%-6d  %-7d  %-8s  %-8s  %-16d  %d\n",
			s.Surah, s.Verses, s.First, s.Last, s.MissingTranslation, s.MissingCommentary)
		total += s.Verses
	}
	fmt.Fprintf(os.Stdout, "\n%d surahs, %d verses\n", len(stats), total)
	return nil
}
