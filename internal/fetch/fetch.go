// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the three dataset files into the data directory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Hashim125/ayah-a-day/internal/dataset"
	"github.com/Hashim125/ayah-a-day/pkg/types"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

const defaultMaxRetries = 5

// Result holds the outcome of a fetch run.
type Result struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Total returns the total number of files processed.
func (r Result) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any downloads failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// item pairs a dataset with its source URL and destination path.
type item struct {
	name string
	url  string
	dest string
}

// FetchAll downloads every configured dataset file, printing per-file
// status and returning a summary. Files already on disk are skipped,
// failures do not stop the remaining downloads, and a delay is applied
// between consecutive files.
func FetchAll(ctx context.Context, client *http.Client, cfg types.FetchConfig, data types.DataConfig, w io.Writer) Result {
	items := []item{
		{dataset.Arabic, cfg.ArabicURL, data.ArabicPath()},
		{dataset.Translation, cfg.TranslationURL, data.TranslationPath()},
		{dataset.Commentary, cfg.CommentaryURL, data.CommentaryPath()},
	}

	var result Result
	for i, it := range items {
		if i > 0 && cfg.DownloadDelay > 0 {
			time.Sleep(cfg.DownloadDelay)
		}
		if it.url == "" {
			fmt.Fprintf(w, "failed:  %s (no URL configured)\n", it.name)
			result.Failed++
			continue
		}
		skipped, err := fetchFile(ctx, client, it, cfg, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", it.name, err)
			result.Failed++
			continue
		}
		if skipped {
			result.Skipped++
		} else {
			result.Downloaded++
		}
	}

	fmt.Fprintf(w, "\nFetch summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}

// fetchFile downloads one dataset file to a temporary file and renames
// it into place on success. An existing destination file is never
// touched.
func fetchFile(ctx context.Context, client *http.Client, it item, cfg types.FetchConfig, w io.Writer) (skipped bool, err error) {
	if _, statErr := os.Stat(it.dest); statErr == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", filepath.Base(it.dest))
		return true, nil
	}

	dir := filepath.Dir(it.dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	fmt.Fprintf(w, "downloading: %s (%s)\n", filepath.Base(it.dest), it.name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, it.url, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := doWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return false, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("HTTP %d from %s", resp.StatusCode, it.url)
	}

	tmpFile, err := os.CreateTemp(dir, ".fetch-*.tmp")
	if err != nil {
		return false, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, it.dest); err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("renaming temp file: %w", err)
	}
	return false, nil
}

// doWithRetry executes an HTTP request and retries on HTTP 429 (Too
// Many Requests) with exponential backoff. The delay starts at
// RetryBaseDelay and doubles each attempt.
//
// When maxRetries is 0 the default (5) is used. On each 429 the
// response body is drained and closed before sleeping. If the context
// is cancelled during a backoff wait the function returns ctx.Err().
// After exhausting retries the last 429 response is returned so the
// caller can inspect it.
func doWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		// Exhausted retries — return the 429 response as-is.
		if attempt >= maxRetries {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
