// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"fmt"
	"io"

	"github.com/Hashim125/ayah-a-day/internal/sanitize"
	"github.com/Hashim125/ayah-a-day/pkg/types"
)

// Validate re-derives an integrity report from the built index: field
// coverage, duplicate detection, the sequence bijection, canonical record
// order, and the sanitizer post-condition on commentary. Build already
// guarantees all of these, so a non-empty Inconsistencies list means a
// bug; load-time problems (malformed keys, schema gaps, unresolved
// references) live only on the report Build returned.
func (ix *Index) Validate() *types.IntegrityReport {
	report := &types.IntegrityReport{TotalVerses: len(ix.records)}
	seen := make(map[types.VerseKey]bool, len(ix.records))

	for i, rec := range ix.records {
		if seen[rec.Key] {
			report.DuplicateKeys = append(report.DuplicateKeys, rec.Key)
		}
		seen[rec.Key] = true

		if rec.Seq != i {
			report.Inconsistencies = append(report.Inconsistencies,
				fmt.Sprintf("record %s has sequence %d, want %d", rec.Key, rec.Seq, i))
		}
		if i > 0 && !ix.records[i-1].Key.Less(rec.Key) {
			report.Inconsistencies = append(report.Inconsistencies,
				fmt.Sprintf("record %s out of canonical order", rec.Key))
		}
		if clean := sanitize.Clean(rec.Commentary); clean != rec.Commentary {
			report.Inconsistencies = append(report.Inconsistencies,
				fmt.Sprintf("commentary for %s is not fully sanitized", rec.Key))
		}

		if rec.Translation == "" {
			report.MissingTranslation = append(report.MissingTranslation, rec.Key)
		}
		if rec.Commentary == "" {
			report.MissingCommentary = append(report.MissingCommentary, rec.Key)
		}
	}

	return report
}

// FormatReport writes a human-readable integrity summary to w.
func FormatReport(w io.Writer, report *types.IntegrityReport) {
	fmt.Fprintf(w, "Total verses:         %d\n", report.TotalVerses)
	fmt.Fprintf(w, "Missing translation:  %d\n", len(report.MissingTranslation))
	fmt.Fprintf(w, "Missing commentary:   %d\n", len(report.MissingCommentary))
	fmt.Fprintf(w, "Malformed keys:       %d\n", len(report.MalformedKeys))
	fmt.Fprintf(w, "Schema problems:      %d\n", len(report.SchemaProblems))
	fmt.Fprintf(w, "Unresolved refs:      %d\n", len(report.UnresolvedRefs))
	fmt.Fprintf(w, "Duplicate keys:       %d\n", len(report.DuplicateKeys))

	if len(report.Inconsistencies) > 0 {
		fmt.Fprintln(w, "\nInconsistencies:")
		for _, s := range report.Inconsistencies {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}

	if report.Clean() {
		fmt.Fprintln(w, "\nIntegrity: clean")
	} else {
		fmt.Fprintln(w, "\nIntegrity: gaps reported above")
	}
}
