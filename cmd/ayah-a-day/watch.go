// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Hashim125/ayah-a-day/internal/corpus"
	"github.com/Hashim125/ayah-a-day/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the index resident and rebuild it when datasets change",
	Long: `Watch builds the index, then monitors the data directory and rebuilds
whenever a dataset file is replaced. Each successful rebuild atomically
swaps the served index; a failed rebuild keeps the previous one.

Runs until interrupted (Ctrl-C or SIGTERM).`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := engineConfig(cmd)

	ix, report, err := loadIndex(cfg.Data, os.Stderr)
	if err != nil {
		return err
	}
	handle := corpus.NewHandle(ix)
	fmt.Fprintf(os.Stdout, "Indexed %d verses from %s\n", ix.Size(), cfg.Data.DataDir)
	if !report.Clean() {
		fmt.Fprintf(os.Stdout, "Integrity gaps present; run validate for the full report\n")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	names := []string{
		cfg.Data.ArabicFile,
		cfg.Data.TranslationFile,
		cfg.Data.CommentaryFile,
	}
	changes, err := watch.Watch(ctx, cfg.Data.DataDir, names, cfg.Watch.Debounce)
	if err != nil {
		return fmt.Errorf("watching %s: %w", cfg.Data.DataDir, err)
	}

	fmt.Fprintf(os.Stdout, "Watching %s for dataset changes\n", cfg.Data.DataDir)
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stdout, "Shutting down")
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			next, nextReport, err := loadIndex(cfg.Data, os.Stderr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: rebuild failed, keeping previous index: %v\n", err)
				continue
			}
			handle.Publish(next)
			cur := handle.Current()
			fmt.Fprintf(os.Stdout, "Rebuilt index: %d verses (%d missing translation, %d missing commentary)\n",
				cur.Size(), len(nextReport.MissingTranslation), len(nextReport.MissingCommentary))
		}
	}
}
