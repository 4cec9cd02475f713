// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Field names one searchable verse field.
type Field string

const (
	FieldArabic      Field = "arabic"
	FieldTranslation Field = "translation"
	FieldCommentary  Field = "commentary"
)

// AllFields lists the searchable fields in canonical order.
func AllFields() []Field {
	return []Field{FieldArabic, FieldTranslation, FieldCommentary}
}

// ParseFields validates a list of field names. An empty list is allowed and
// means all fields.
func ParseFields(names []string) ([]Field, error) {
	var fields []Field
	for _, n := range names {
		switch Field(n) {
		case FieldArabic, FieldTranslation, FieldCommentary:
			fields = append(fields, Field(n))
		default:
			return nil, fmt.Errorf("unknown search field %q (want arabic, translation, or commentary)", n)
		}
	}
	return fields, nil
}

// SearchResult represents one verse matched by a query. Results are
// computed per query from the in-memory index; nothing is written back
// to it.
type SearchResult struct {
	// Key identifies the matched verse.
	Key VerseKey `json:"key" yaml:"key"`

	// Seq is the verse's canonical sequence position, used for stable
	// tie-breaking and reproducible result order.
	Seq int `json:"seq" yaml:"seq"`

	// Score is a relevance value between 0.0 and 1.0.
	Score float64 `json:"score" yaml:"score"`

	// MatchedFields lists the fields the query matched, in canonical field order.
	MatchedFields []Field `json:"matched_fields" yaml:"matched_fields"`
}
