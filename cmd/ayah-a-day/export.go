package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Hashim125/ayah-a-day/internal/corpus"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full verse corpus to JSON or YAML",
	Long: `Export builds the index and writes every verse record, in canonical
order, to corpus.json or corpus.yaml in the data directory. Records carry
the verse key, sequence number, Arabic text, translation, and sanitized
commentary.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "json", "export format: json or yaml")
	exportCmd.Flags().String("out", "", "destination file (default <data-dir>/corpus.<format>)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	cfg := engineConfig(cmd)
	ix, _, err := loadIndex(cfg.Data, os.Stderr)
	if err != nil {
		return err
	}

	switch format {
	case "json", "":
		if out == "" {
			out = filepath.Join(cfg.Data.DataDir, "corpus.json")
		}
		err = corpus.ExportJSON(out, ix)
	case "yaml":
		if out == "" {
			out = filepath.Join(cfg.Data.DataDir, "corpus.yaml")
		}
		err = corpus.ExportYAML(out, ix)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d verses to %s\n", ix.Size(), out)
	return nil
}
