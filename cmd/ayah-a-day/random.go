package main

import (
	"os"

	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Display a uniformly random verse",
	RunE:  runRandom,
}

func init() {
	randomCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, args []string) error {
	cfg := engineConfig(cmd)
	ix, _, err := loadIndex(cfg.Data, os.Stderr)
	if err != nil {
		return err
	}

	rec := ix.PickRandom()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return encodeJSON(os.Stdout, rec)
	}
	printVerse(os.Stdout, rec)
	return nil
}
