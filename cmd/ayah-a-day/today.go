package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Display the verse of the day",
	Long: `Today picks the verse of the day: the choice is derived from the calendar
date, so every run on the same day against the same datasets shows the
same verse. Use --date to ask for another day's verse.`,
	RunE: runToday,
}

func init() {
	todayCmd.Flags().String("date", "", "pick the verse for this date instead (YYYY-MM-DD)")
	todayCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	day := time.Now()
	if dateFlag, _ := cmd.Flags().GetString("date"); dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", dateFlag)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", dateFlag, err)
		}
		day = parsed
	}

	cfg := engineConfig(cmd)
	ix, _, err := loadIndex(cfg.Data, os.Stderr)
	if err != nil {
		return err
	}

	rec := ix.PickOfDay(day)
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return encodeJSON(os.Stdout, rec)
	}
	printVerse(os.Stdout, rec)
	return nil
}
