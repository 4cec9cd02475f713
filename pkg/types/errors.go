// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by index lookups and query validation.
var (
	// ErrVerseNotFound indicates a verse key absent from the built index.
	ErrVerseNotFound = errors.New("verse not found")

	// ErrEmptyQuery indicates a search query with no usable terms.
	ErrEmptyQuery = errors.New("query is empty")
)

// MalformedKeyError reports a key that does not parse as "surah:ayah".
type MalformedKeyError struct {
	// Source names the dataset the key came from ("arabic", "translation",
	// "commentary"); empty when the key came from caller input.
	Source string

	// Key is the raw key text as it appeared.
	Key string

	// Reason says what made the key unparsable.
	Reason string
}

func (e *MalformedKeyError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: malformed verse key %q: %s", e.Source, e.Key, e.Reason)
	}
	return fmt.Sprintf("malformed verse key %q: %s", e.Key, e.Reason)
}

// SchemaError reports a dataset entry whose key parses but whose value lacks
// a required field.
type SchemaError struct {
	// Source names the dataset the entry came from.
	Source string

	// Key is the verse key of the offending entry.
	Key VerseKey

	// Field is the required field that is missing or of the wrong type.
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: entry %s: missing required field %q", e.Source, e.Key, e.Field)
}
