// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search ranks indexed verses against free-text queries and
// resolves verse-reference queries directly.
package search

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Hashim125/ayah-a-day/internal/corpus"
	"github.com/Hashim125/ayah-a-day/pkg/types"
)

// Query holds the search parameters.
type Query struct {
	// Text is the free-text query, or a verse reference like "2:255"
	// or "2:1-5".
	Text string

	// Fields restricts matching to the named fields. Empty means all.
	Fields []types.Field

	// Limit caps the number of returned results. Zero means no cap.
	Limit int
}

// IsEmpty reports whether the query contains no searchable text.
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.Text) == ""
}

// verseRef recognizes direct verse references: "2:255" or "2:1-5".
var verseRef = regexp.MustCompile(`^(\d+):(\d+)(?:-(\d+))?$`)

// fieldWeights bias ranking toward the translation, which is what most
// queries are written against. Arabic matches rank lowest because they
// require an exact substring of the vocalized text.
var fieldWeights = map[types.Field]float64{
	types.FieldTranslation: 1.0,
	types.FieldCommentary:  0.85,
	types.FieldArabic:      0.7,
}

// startBonusWindow is the span, in bytes, over which an early match
// position earns a small score bonus.
const startBonusWindow = 100.0

// Search matches the query against every verse in the index and returns
// results ordered by descending score, ties broken by canonical verse
// order. A query shaped like a verse reference is resolved as a direct
// lookup instead of a text match; absent references yield empty results,
// not an error.
func Search(ix *corpus.Index, q Query) ([]types.SearchResult, error) {
	if q.IsEmpty() {
		return nil, fmt.Errorf("search: %w", types.ErrEmptyQuery)
	}

	text := strings.TrimSpace(q.Text)
	if m := verseRef.FindStringSubmatch(text); m != nil {
		return capResults(lookupRef(ix, m), q.Limit), nil
	}

	fields := q.Fields
	if len(fields) == 0 {
		fields = types.AllFields()
	}
	tokens := strings.Fields(strings.ToLower(text))

	var results []types.SearchResult
	for _, rec := range ix.Records() {
		var best float64
		var matched []types.Field
		for _, f := range types.AllFields() {
			if !enabled(fields, f) {
				continue
			}
			score, ok := scoreField(fieldText(rec, f), tokens, fieldWeights[f])
			if !ok {
				continue
			}
			matched = append(matched, f)
			if score > best {
				best = score
			}
		}
		if len(matched) == 0 {
			continue
		}
		results = append(results, types.SearchResult{
			Key:           rec.Key,
			Seq:           rec.Seq,
			Score:         math.Min(1.0, best),
			MatchedFields: matched,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Seq < results[j].Seq
	})

	return capResults(results, q.Limit), nil
}

// lookupRef resolves a verse-reference query against the index. m is
// the verseRef submatch: surah, first ayah, optional last ayah.
func lookupRef(ix *corpus.Index, m []string) []types.SearchResult {
	surah, err1 := strconv.Atoi(m[1])
	from, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return nil
	}

	var recs []types.VerseRecord
	if m[3] == "" {
		rec, err := ix.Get(types.VerseKey{Surah: surah, Ayah: from})
		if err == nil {
			recs = append(recs, rec)
		}
	} else {
		to, err := strconv.Atoi(m[3])
		if err != nil {
			return nil
		}
		recs = ix.Range(surah, from, to)
	}

	results := make([]types.SearchResult, 0, len(recs))
	for _, rec := range recs {
		results = append(results, types.SearchResult{
			Key:   rec.Key,
			Seq:   rec.Seq,
			Score: 1.0,
		})
	}
	return results
}

// scoreField scores one field's text against the query tokens. The
// score is the matched-token fraction weighted by the field, plus a
// bonus of up to 0.05 for matches near the start of the text. The
// second return is false when no token matched.
func scoreField(text string, tokens []string, weight float64) (float64, bool) {
	if text == "" {
		return 0, false
	}

	matched := 0
	earliest := -1
	for _, tok := range tokens {
		idx := strings.Index(text, tok)
		if idx < 0 {
			continue
		}
		matched++
		if earliest < 0 || idx < earliest {
			earliest = idx
		}
	}
	if matched == 0 {
		return 0, false
	}

	score := float64(matched) / float64(len(tokens)) * weight
	if float64(earliest) < startBonusWindow {
		score += 0.05 * (1.0 - float64(earliest)/startBonusWindow)
	}
	return score, true
}

// fieldText returns the match haystack for one field. Translation and
// commentary are folded to lower case; Arabic has no case to fold and
// is matched as stored.
func fieldText(rec types.VerseRecord, f types.Field) string {
	switch f {
	case types.FieldArabic:
		return rec.Arabic
	case types.FieldTranslation:
		return strings.ToLower(rec.Translation)
	default:
		return strings.ToLower(rec.Commentary)
	}
}

func enabled(fields []types.Field, f types.Field) bool {
	for _, e := range fields {
		if e == f {
			return true
		}
	}
	return false
}

func capResults(results []types.SearchResult, limit int) []types.SearchResult {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}

// FormatTable writes results as a human-readable table to w. The index
// supplies the preview text for each hit.
func FormatTable(results []types.SearchResult, ix *corpus.Index, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No verses found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-8s  %-5s  %-30s  %s\n",
		"Rank", "Verse", "Score", "Matched", "Translation")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, r := range results {
		rec, err := ix.Get(r.Key)
		if err != nil {
			continue
		}
		preview := rec.Translation
		if preview == "" {
			preview = rec.Arabic
		}
		fmt.Fprintf(w, "%-4d  %-8s  %-5.2f  %-30s  %s\n",
			i+1, r.Key, r.Score, joinFields(r.MatchedFields), truncate(preview, 58))
	}

	fmt.Fprintf(w, "\n%d verses\n", len(results))
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(results []types.SearchResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func joinFields(fields []types.Field) string {
	if len(fields) == 0 {
		return "-"
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ",")
}

// truncate shortens s to max runes. Previews mix Arabic and English, so
// cutting on bytes would split a code point.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
