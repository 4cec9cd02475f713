package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hashim125/ayah-a-day/internal/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the dataset files into the data directory",
	Long: `Fetch downloads the Arabic, translation, and commentary dataset files
from their configured URLs. Files already present are left untouched;
delete a file to force a fresh download.

Set the URLs in the config file or through AYAH_A_DAY_FETCH_* environment
variables; there are no built-in hosts.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	fetchCmd.Flags().Duration("delay", 0, "delay between consecutive downloads (default 1s)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := engineConfig(cmd)

	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		cfg.Fetch.Timeout = timeout
	}
	if delay, _ := cmd.Flags().GetDuration("delay"); delay > 0 {
		cfg.Fetch.DownloadDelay = delay
	}

	client := &http.Client{
		Timeout: cfg.Fetch.Timeout,
	}

	result := fetch.FetchAll(context.Background(), client, cfg.Fetch, cfg.Data, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d dataset file(s) failed to download", result.Failed)
	}
	return nil
}
