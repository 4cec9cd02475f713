// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hashim125/ayah-a-day/pkg/types"
)

func init() {
	// Use a tiny base delay so tests finish quickly.
	RetryBaseDelay = 1 * time.Millisecond
}

func testConfigs(t *testing.T, baseURL string) (types.FetchConfig, types.DataConfig) {
	t.Helper()
	fetchCfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		ArabicURL:      baseURL + "/arabic",
		TranslationURL: baseURL + "/translation",
		CommentaryURL:  baseURL + "/commentary",
	}
	dataCfg := types.DataConfig{
		DataDir:         t.TempDir(),
		ArabicFile:      "qpc-hafs.json",
		TranslationFile: "en-taqi-usmani-simple.json",
		CommentaryFile:  "en-tafisr-ibn-kathir.json",
	}
	return fetchCfg, dataCfg
}

func datasetServer() *httptest.Server {
	mux := http.NewServeMux()
	for _, path := range []string{"/arabic", "/translation", "/commentary"} {
		mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"1:1": "text"}`))
		})
	}
	return httptest.NewServer(mux)
}

func TestFetchAllDownloads(t *testing.T) {
	ts := datasetServer()
	defer ts.Close()

	fetchCfg, dataCfg := testConfigs(t, ts.URL)

	var buf bytes.Buffer
	result := FetchAll(context.Background(), ts.Client(), fetchCfg, dataCfg, &buf)

	assert.Equal(t, 3, result.Downloaded)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 3, result.Total())
	assert.False(t, result.HasFailures())

	for _, path := range []string{dataCfg.ArabicPath(), dataCfg.TranslationPath(), dataCfg.CommentaryPath()} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"1:1": "text"}`, string(data))
	}

	assert.Contains(t, buf.String(), "downloading:")
	assert.Contains(t, buf.String(), "Fetch summary: 3 downloaded, 0 skipped, 0 failed")
}

func TestFetchAllSkipsExisting(t *testing.T) {
	ts := datasetServer()
	defer ts.Close()

	fetchCfg, dataCfg := testConfigs(t, ts.URL)
	require.NoError(t, os.WriteFile(dataCfg.ArabicPath(), []byte(`{"existing": true}`), 0o644))

	var buf bytes.Buffer
	result := FetchAll(context.Background(), ts.Client(), fetchCfg, dataCfg, &buf)

	assert.Equal(t, 2, result.Downloaded)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Failed)

	// The existing file is never overwritten.
	data, err := os.ReadFile(dataCfg.ArabicPath())
	require.NoError(t, err)
	assert.JSONEq(t, `{"existing": true}`, string(data))
	assert.Contains(t, buf.String(), "skipped: qpc-hafs.json (already exists)")
}

func TestFetchAllUnconfiguredURL(t *testing.T) {
	ts := datasetServer()
	defer ts.Close()

	fetchCfg, dataCfg := testConfigs(t, ts.URL)
	fetchCfg.TranslationURL = ""
	fetchCfg.CommentaryURL = ""

	var buf bytes.Buffer
	result := FetchAll(context.Background(), ts.Client(), fetchCfg, dataCfg, &buf)

	assert.Equal(t, 1, result.Downloaded)
	assert.Equal(t, 2, result.Failed)
	assert.True(t, result.HasFailures())
	assert.Contains(t, buf.String(), "no URL configured")
}

func TestFetchAllContinuesAfterFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/arabic", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"1:1": "text"}`))
	})
	mux.HandleFunc("/translation", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/commentary", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"1:1": "text"}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	fetchCfg, dataCfg := testConfigs(t, ts.URL)

	var buf bytes.Buffer
	result := FetchAll(context.Background(), ts.Client(), fetchCfg, dataCfg, &buf)

	assert.Equal(t, 2, result.Downloaded)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, buf.String(), "failed:  translation")
	assert.Contains(t, buf.String(), "HTTP 404")

	_, err := os.Stat(dataCfg.TranslationPath())
	assert.True(t, os.IsNotExist(err))
}

func TestFetchRetriesOn429(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/arabic", func(w http.ResponseWriter, _ *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"1:1": "text"}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	fetchCfg, dataCfg := testConfigs(t, ts.URL)
	fetchCfg.TranslationURL = ""
	fetchCfg.CommentaryURL = ""
	fetchCfg.MaxRetries = 5

	var buf bytes.Buffer
	result := FetchAll(context.Background(), ts.Client(), fetchCfg, dataCfg, &buf)

	assert.Equal(t, 1, result.Downloaded)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))

	_, err := os.Stat(dataCfg.ArabicPath())
	assert.NoError(t, err)
}

func TestFetchExhaustsRetries(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/arabic", func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	fetchCfg, dataCfg := testConfigs(t, ts.URL)
	fetchCfg.TranslationURL = ""
	fetchCfg.CommentaryURL = ""
	fetchCfg.MaxRetries = 2

	var buf bytes.Buffer
	result := FetchAll(context.Background(), ts.Client(), fetchCfg, dataCfg, &buf)

	assert.Equal(t, 1, result.Failed)
	// 1 initial + 2 retries = 3 total calls.
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Contains(t, buf.String(), "HTTP 429")
}

func TestFetchLeavesNoPartialFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/arabic", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	fetchCfg, dataCfg := testConfigs(t, ts.URL)
	fetchCfg.TranslationURL = ""
	fetchCfg.CommentaryURL = ""

	var buf bytes.Buffer
	result := FetchAll(context.Background(), ts.Client(), fetchCfg, dataCfg, &buf)

	assert.Equal(t, 1, result.Failed)

	entries, err := os.ReadDir(dataCfg.DataDir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temp file left behind: %s", e.Name())
	}
	_, statErr := os.Stat(dataCfg.ArabicPath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetchContextCancelledDuringBackoff(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/arabic", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	old := RetryBaseDelay
	RetryBaseDelay = 500 * time.Millisecond
	defer func() { RetryBaseDelay = old }()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	fetchCfg, dataCfg := testConfigs(t, ts.URL)
	fetchCfg.TranslationURL = ""
	fetchCfg.CommentaryURL = ""

	var buf bytes.Buffer
	result := FetchAll(ctx, ts.Client(), fetchCfg, dataCfg, &buf)

	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, buf.String(), "context deadline exceeded")
}
