package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hashim125/ayah-a-day/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <verse-key>",
	Short: "Display one verse by its surah:ayah key",
	Long: `Show looks up a verse by its canonical key (for example "2:255") and
prints its Arabic text, translation, and commentary. With --context N the
N preceding and following verses of the same surah are shown as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().Int("context", 0, "also show N neighboring verses on each side")
	showCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	key, err := types.ParseVerseKey(args[0])
	if err != nil {
		return err
	}

	cfg := engineConfig(cmd)
	ix, _, err := loadIndex(cfg.Data, os.Stderr)
	if err != nil {
		return err
	}

	contextN, _ := cmd.Flags().GetInt("context")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if contextN > 0 {
		recs, err := ix.Context(key, contextN)
		if err != nil {
			return err
		}
		if jsonOutput {
			return encodeJSON(os.Stdout, recs)
		}
		for i, rec := range recs {
			if i > 0 {
				fmt.Println()
			}
			printVerse(os.Stdout, rec)
		}
		return nil
	}

	rec, err := ix.Get(key)
	if err != nil {
		return err
	}
	if jsonOutput {
		return encodeJSON(os.Stdout, rec)
	}
	printVerse(os.Stdout, rec)
	return nil
}
