// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MalformedKey records a dataset key skipped during a load because it did
// not parse as "surah:ayah".
type MalformedKey struct {
	// Source names the dataset the key came from.
	Source string `json:"source" yaml:"source"`

	// Key is the raw key text.
	Key string `json:"key" yaml:"key"`
}

// SchemaProblem records a dataset entry skipped because its value lacked a
// required field.
type SchemaProblem struct {
	// Source names the dataset the entry came from.
	Source string `json:"source" yaml:"source"`

	// Key is the verse key of the offending entry.
	Key VerseKey `json:"key" yaml:"key"`

	// Field is the required field that was missing.
	Field string `json:"field" yaml:"field"`
}

// IntegrityReport is the structured outcome of building and cross-checking
// the verse index. Gaps in the non-anchor datasets are reported here rather
// than failing the build; only an unusable anchor dataset is fatal.
type IntegrityReport struct {
	// TotalVerses is the number of records in the index, equal to the count
	// of unique keys in the anchor dataset.
	TotalVerses int `json:"total_verses" yaml:"total_verses"`

	// MissingTranslation lists keys with no usable translation text.
	MissingTranslation []VerseKey `json:"missing_translation,omitempty" yaml:"missing_translation,omitempty"`

	// MissingCommentary lists keys with no usable commentary text.
	MissingCommentary []VerseKey `json:"missing_commentary,omitempty" yaml:"missing_commentary,omitempty"`

	// MalformedKeys lists dataset keys skipped because they did not parse.
	MalformedKeys []MalformedKey `json:"malformed_keys,omitempty" yaml:"malformed_keys,omitempty"`

	// SchemaProblems lists entries skipped for missing required fields.
	SchemaProblems []SchemaProblem `json:"schema_problems,omitempty" yaml:"schema_problems,omitempty"`

	// DuplicateKeys lists keys that collided during the merge. The anchor
	// map has unique keys, so this stays empty; the validator asserts it.
	DuplicateKeys []VerseKey `json:"duplicate_keys,omitempty" yaml:"duplicate_keys,omitempty"`

	// UnresolvedRefs lists commentary entries whose verse references could
	// not be resolved to text (missing target or too-deep chain).
	UnresolvedRefs []VerseKey `json:"unresolved_refs,omitempty" yaml:"unresolved_refs,omitempty"`

	// Inconsistencies lists invariant violations found by post-build
	// validation: sequence numbering gaps, duplicate records, or commentary
	// that is not a fixpoint of sanitization. Empty for a healthy index.
	Inconsistencies []string `json:"inconsistencies,omitempty" yaml:"inconsistencies,omitempty"`
}

// Clean reports whether the corpus merged with no gaps or problems.
func (r *IntegrityReport) Clean() bool {
	return len(r.MissingTranslation) == 0 &&
		len(r.MissingCommentary) == 0 &&
		len(r.MalformedKeys) == 0 &&
		len(r.SchemaProblems) == 0 &&
		len(r.DuplicateKeys) == 0 &&
		len(r.UnresolvedRefs) == 0 &&
		len(r.Inconsistencies) == 0
}

// SurahStats summarizes one surah's coverage in the index.
type SurahStats struct {
	// Surah is the chapter number.
	Surah int `json:"surah" yaml:"surah"`

	// Verses is the number of verses the index holds for the surah.
	Verses int `json:"verses" yaml:"verses"`

	// First is the lowest key present in the surah.
	First VerseKey `json:"first" yaml:"first"`

	// Last is the highest key present in the surah.
	Last VerseKey `json:"last" yaml:"last"`

	// MissingTranslation counts verses in the surah with no translation text.
	MissingTranslation int `json:"missing_translation" yaml:"missing_translation"`

	// MissingCommentary counts verses in the surah with no commentary text.
	MissingCommentary int `json:"missing_commentary" yaml:"missing_commentary"`
}
