//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Fetch builds the CLI and downloads the dataset files.
func Fetch() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "fetch")
}

// Validate builds the CLI and prints the dataset integrity report.
func Validate() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "validate")
}

// Today builds the CLI and prints the verse of the day.
func Today() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "today")
}
