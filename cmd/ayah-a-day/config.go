package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Hashim125/ayah-a-day/internal/corpus"
	"github.com/Hashim125/ayah-a-day/internal/dataset"
	"github.com/Hashim125/ayah-a-day/pkg/types"
)

// engineConfig assembles the full engine configuration from viper
// (defaults, config file, AYAH_A_DAY_* environment) plus flag overrides.
func engineConfig(cmd *cobra.Command) types.EngineConfig {
	cfg := types.EngineConfig{
		Data: types.DataConfig{
			DataDir:         viper.GetString("data.dir"),
			ArabicFile:      viper.GetString("data.arabic_file"),
			TranslationFile: viper.GetString("data.translation_file"),
			CommentaryFile:  viper.GetString("data.commentary_file"),
		},
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:    viper.GetDuration("fetch.timeout"),
				UserAgent:  viper.GetString("fetch.user_agent"),
				MaxRetries: viper.GetInt("fetch.max_retries"),
			},
			ArabicURL:      viper.GetString("fetch.arabic_url"),
			TranslationURL: viper.GetString("fetch.translation_url"),
			CommentaryURL:  viper.GetString("fetch.commentary_url"),
			DownloadDelay:  viper.GetDuration("fetch.download_delay"),
		},
		Search: types.SearchConfig{
			MaxResults: viper.GetInt("search.max_results"),
		},
		Watch: types.WatchConfig{
			Debounce: viper.GetDuration("watch.debounce"),
		},
	}

	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.Data.DataDir = dir
	}
	return cfg
}

// loadIndex loads the datasets and builds the verse index, printing
// load warnings to w.
func loadIndex(cfg types.DataConfig, w io.Writer) (*corpus.Index, *types.IntegrityReport, error) {
	arabic, translation, commentary, err := dataset.Load(cfg, w)
	if err != nil {
		return nil, nil, err
	}
	return corpus.Build(arabic, translation, commentary)
}

// printVerse writes one verse in the standard display layout.
func printVerse(w io.Writer, rec types.VerseRecord) {
	fmt.Fprintf(w, "Verse %s\n", rec.Key)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintln(w, rec.Arabic)
	if rec.Translation != "" {
		fmt.Fprintf(w, "\n%s\n", rec.Translation)
	}
	if rec.Commentary != "" {
		fmt.Fprintf(w, "\n%s\n", rec.Commentary)
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
