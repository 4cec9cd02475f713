// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ayah-a-day CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ayah-a-day CLI.
var rootCmd = &cobra.Command{
	Use:   "ayah-a-day",
	Short: "Verse index and search engine for the Quran",
	Long: `ayah-a-day builds an in-memory index of the Quran from three JSON
datasets (Arabic text, translation, commentary) and serves verse lookup,
full-text search, per-surah statistics, and deterministic daily picks.

Each operation is a subcommand: show, search, random, today, validate,
stats, export, fetch, and watch. Datasets live in the data directory and
are loaded fresh on every invocation; watch keeps a process resident and
rebuilds the index when the files change.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ayah-a-day.yaml or ~/.config/ayah-a-day/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding the dataset files (default: data)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ayah-a-day")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ayah-a-day"))
		}
	}

	viper.SetDefault("data.dir", "data")
	viper.SetDefault("data.arabic_file", "qpc-hafs.json")
	viper.SetDefault("data.translation_file", "en-taqi-usmani-simple.json")
	viper.SetDefault("data.commentary_file", "en-tafisr-ibn-kathir.json")
	viper.SetDefault("search.max_results", 20)
	viper.SetDefault("watch.debounce", "500ms")
	viper.SetDefault("fetch.timeout", "60s")
	viper.SetDefault("fetch.user_agent", "ayah-a-day/0.1")
	viper.SetDefault("fetch.max_retries", 5)
	viper.SetDefault("fetch.download_delay", "1s")
	viper.SetDefault("fetch.arabic_url", "")
	viper.SetDefault("fetch.translation_url", "")
	viper.SetDefault("fetch.commentary_url", "")

	viper.SetEnvPrefix("AYAH_A_DAY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
