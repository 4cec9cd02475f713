// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/Hashim125/ayah-a-day/pkg/types"
)

// WriteReportYAML writes an integrity report to path as YAML.
func WriteReportYAML(path string, report *types.IntegrityReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteReportJSON writes an integrity report to path as indented JSON.
func WriteReportJSON(path string, report *types.IntegrityReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the full corpus to path as indented JSON, one record
// per verse in canonical order, for host-side consumption.
func ExportJSON(path string, ix *Index) error {
	data, err := json.MarshalIndent(ix.records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportYAML writes the full corpus to path as YAML, one record per verse
// in canonical order.
func ExportYAML(path string, ix *Index) error {
	data, err := yaml.Marshal(ix.records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
