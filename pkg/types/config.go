package types

import (
	"path/filepath"
	"time"
)

// HTTPConfig holds shared HTTP settings for commands that download datasets.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "ayah-a-day/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries is the number of retry attempts after rate-limited responses.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// DataConfig locates the three dataset files on disk.
type DataConfig struct {
	// DataDir is the directory holding the dataset files.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// ArabicFile is the Arabic text dataset file name. This is the anchor
	// dataset: its key set defines corpus membership.
	ArabicFile string `json:"arabic_file" yaml:"arabic_file"`

	// TranslationFile is the translation dataset file name.
	TranslationFile string `json:"translation_file" yaml:"translation_file"`

	// CommentaryFile is the commentary (tafsir) dataset file name.
	CommentaryFile string `json:"commentary_file" yaml:"commentary_file"`
}

// ArabicPath returns the full path of the anchor dataset file.
func (c DataConfig) ArabicPath() string {
	return filepath.Join(c.DataDir, c.ArabicFile)
}

// TranslationPath returns the full path of the translation dataset file.
func (c DataConfig) TranslationPath() string {
	return filepath.Join(c.DataDir, c.TranslationFile)
}

// CommentaryPath returns the full path of the commentary dataset file.
func (c DataConfig) CommentaryPath() string {
	return filepath.Join(c.DataDir, c.CommentaryFile)
}

// FetchConfig holds settings for the dataset fetch command.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// ArabicURL is the download URL for the Arabic dataset.
	ArabicURL string `json:"arabic_url" yaml:"arabic_url"`

	// TranslationURL is the download URL for the translation dataset.
	TranslationURL string `json:"translation_url" yaml:"translation_url"`

	// CommentaryURL is the download URL for the commentary dataset.
	CommentaryURL string `json:"commentary_url" yaml:"commentary_url"`

	// DownloadDelay is the delay between consecutive downloads (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`
}

// SearchConfig holds settings for verse search.
type SearchConfig struct {
	// MaxResults is the maximum number of results to return (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// WatchConfig holds settings for the dataset reload watcher.
type WatchConfig struct {
	// Debounce is the quiet period that coalesces a burst of file events
	// into a single rebuild (default 500ms).
	Debounce time.Duration `json:"debounce" yaml:"debounce"`
}

// EngineConfig groups all component configurations.
type EngineConfig struct {
	Data   DataConfig   `json:"data" yaml:"data"`
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
	Search SearchConfig `json:"search" yaml:"search"`
	Watch  WatchConfig  `json:"watch" yaml:"watch"`
}
