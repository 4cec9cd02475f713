package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hashim125/ayah-a-day/internal/search"
	"github.com/Hashim125/ayah-a-day/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search verses by text or verse reference",
	Long: `Search matches the query terms against the Arabic text, translation, and
commentary of every verse and ranks the hits. A query shaped like a verse
reference ("2:255" or "2:1-5") is resolved as a direct lookup instead.

Arabic terms match only in their exact stored form, vowel signs included.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("fields", "", "restrict matching to fields (comma-separated: arabic, translation, commentary)")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = use configured default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "also write results to a YAML file at this path")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := engineConfig(cmd)

	fieldsFlag, _ := cmd.Flags().GetString("fields")
	var names []string
	if fieldsFlag != "" {
		names = strings.Split(fieldsFlag, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
	}
	fields, err := types.ParseFields(names)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit == 0 {
		limit = cfg.Search.MaxResults
	}

	q := search.Query{
		Text:   strings.Join(args, " "),
		Fields: fields,
		Limit:  limit,
	}

	ix, _, err := loadIndex(cfg.Data, os.Stderr)
	if err != nil {
		return err
	}

	results, err := search.Search(ix, q)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := search.WriteResultsFile(savePath, q, results); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved results to %s\n", savePath)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return search.FormatJSON(results, os.Stdout)
	}
	search.FormatTable(results, ix, os.Stdout)
	return nil
}
