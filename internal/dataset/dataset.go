// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset parses the three keyed JSON sources into typed per-verse
// fragments. Each source is an object keyed by "surah:ayah" strings; entry
// values vary by dataset and vintage, so parsing is tolerant: entries with
// malformed keys or missing required fields are skipped and recorded, never
// fatal. Only file-level problems (unreadable file, invalid JSON) surface
// as errors.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Hashim125/ayah-a-day/pkg/types"
)

// Dataset names as they appear in reports and error messages.
const (
	Arabic      = "arabic"
	Translation = "translation"
	Commentary  = "commentary"
)

// maxRefDepth bounds how many hops a commentary reference chain may take
// before resolution gives up.
const maxRefDepth = 3

// Source holds one parsed dataset: per-key text fragments plus the entries
// skipped or flagged during parsing.
type Source struct {
	// Name is the dataset name: arabic, translation, or commentary.
	Name string

	// Fragments maps each parsed key to its raw text fragment.
	Fragments map[types.VerseKey]string

	// Malformed lists keys that did not parse as "surah:ayah".
	Malformed []types.MalformedKey

	// Schema lists entries whose key parsed but whose value lacked the
	// required field for this dataset.
	Schema []types.SchemaProblem

	// Unresolved lists commentary keys whose verse references could not be
	// followed to text. Populated by ResolveReferences.
	Unresolved []types.VerseKey
}

// Len returns the number of usable fragments.
func (s *Source) Len() int {
	return len(s.Fragments)
}

// requiredField names the entry field each dataset must carry when the
// entry is an object rather than a bare string.
func requiredField(name string) string {
	if name == Translation {
		return "t"
	}
	return "text"
}

// rawEntry covers both object shapes found in the datasets: the Arabic and
// commentary files use {"text": ...}, the translation file uses {"t": ...}.
type rawEntry struct {
	Text *string `json:"text"`
	T    *string `json:"t"`
}

// LoadFile reads and parses one dataset file. Per-entry problems are
// recorded on the returned Source; only file-level problems are errors.
func LoadFile(path, name string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s dataset: %w", name, err)
	}
	return Parse(data, name)
}

// Parse parses one dataset from raw JSON bytes.
func Parse(data []byte, name string) (*Source, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s dataset: %w", name, err)
	}

	src := &Source{
		Name:      name,
		Fragments: make(map[types.VerseKey]string, len(raw)),
	}

	for keyText, value := range raw {
		key, err := types.ParseVerseKey(keyText)
		if err != nil {
			src.Malformed = append(src.Malformed, types.MalformedKey{Source: name, Key: keyText})
			continue
		}

		text, serr := parseEntry(value, key, name)
		if serr != nil {
			src.Schema = append(src.Schema, types.SchemaProblem{
				Source: serr.Source,
				Key:    serr.Key,
				Field:  serr.Field,
			})
			continue
		}
		src.Fragments[key] = text
	}

	sort.Slice(src.Malformed, func(i, j int) bool {
		return src.Malformed[i].Key < src.Malformed[j].Key
	})
	sort.Slice(src.Schema, func(i, j int) bool {
		return src.Schema[i].Key.Less(src.Schema[j].Key)
	})
	return src, nil
}

// parseEntry extracts the text fragment from one entry value. Entries are
// either bare JSON strings or objects carrying the dataset's text field;
// anything else fails with a SchemaError, which the caller records.
func parseEntry(value json.RawMessage, key types.VerseKey, name string) (string, *types.SchemaError) {
	serr := &types.SchemaError{Source: name, Key: key, Field: requiredField(name)}

	trimmed := strings.TrimSpace(string(value))
	if trimmed == "" {
		return "", serr
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", serr
		}
		return s, nil
	case '{':
		var entry rawEntry
		if err := json.Unmarshal(value, &entry); err != nil {
			return "", serr
		}
		if name == Translation {
			if entry.T == nil {
				return "", serr
			}
			return *entry.T, nil
		}
		if entry.Text == nil {
			return "", serr
		}
		return *entry.Text, nil
	default:
		// Numbers, booleans, nulls, arrays: no usable text.
		return "", serr
	}
}

// Load reads all three dataset files. A missing or unparsable translation
// or commentary file degrades to an empty Source with a warning on w; an
// unusable anchor (Arabic) file is fatal. Commentary references are
// resolved before returning.
func Load(cfg types.DataConfig, w io.Writer) (arabic, translation, commentary *Source, err error) {
	arabic, err = LoadFile(cfg.ArabicPath(), Arabic)
	if err != nil {
		return nil, nil, nil, err
	}
	fmt.Fprintf(w, "loaded %s: %d verses\n", Arabic, arabic.Len())

	translation = loadOrEmpty(cfg.TranslationPath(), Translation, w)
	commentary = loadOrEmpty(cfg.CommentaryPath(), Commentary, w)

	ResolveReferences(commentary)
	return arabic, translation, commentary, nil
}

// loadOrEmpty loads a non-anchor dataset, degrading to an empty Source on
// file-level failure so the merge can proceed and report the gap.
func loadOrEmpty(path, name string, w io.Writer) *Source {
	src, err := LoadFile(path, name)
	if err != nil {
		fmt.Fprintf(w, "warning: %v (continuing with empty %s dataset)\n", err, name)
		return &Source{Name: name, Fragments: map[types.VerseKey]string{}}
	}
	fmt.Fprintf(w, "loaded %s: %d entries\n", name, src.Len())
	return src
}

// ResolveReferences follows commentary entries that are verse references
// ("1:6" meaning "same commentary as 1:6") to their target text, chasing
// chains up to maxRefDepth hops. Entries that cannot be resolved are
// replaced with a bracketed placeholder and recorded on src.Unresolved.
func ResolveReferences(src *Source) {
	resolved := make(map[types.VerseKey]string, len(src.Fragments))
	for key := range src.Fragments {
		text, ok := resolveChain(src.Fragments, key, 0)
		resolved[key] = text
		if !ok {
			src.Unresolved = append(src.Unresolved, key)
		}
	}
	sort.Slice(src.Unresolved, func(i, j int) bool {
		return src.Unresolved[i].Less(src.Unresolved[j])
	})
	src.Fragments = resolved
}

func resolveChain(frags map[types.VerseKey]string, key types.VerseKey, depth int) (string, bool) {
	if depth >= maxRefDepth {
		return fmt.Sprintf("[tafsir reference chain too deep for %s]", key), false
	}

	text := frags[key]
	ref, isRef := referenceTarget(text)
	if !isRef {
		return text, true
	}

	target, err := types.ParseVerseKey(ref)
	if err != nil {
		return fmt.Sprintf("[referenced tafsir not found: %s]", ref), false
	}
	if _, ok := frags[target]; !ok {
		return fmt.Sprintf("[referenced tafsir not found: %s]", ref), false
	}
	return resolveChain(frags, target, depth+1)
}

// referenceTarget reports whether a commentary fragment is a verse
// reference rather than commentary text: short, contains a colon, and all
// digits once colons and dots are removed.
func referenceTarget(text string) (string, bool) {
	s := strings.TrimSpace(text)
	if !strings.Contains(s, ":") || len(s) >= 10 {
		return "", false
	}
	digits := strings.NewReplacer(":", "", ".", "").Replace(s)
	if digits == "" {
		return "", false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return s, true
}
