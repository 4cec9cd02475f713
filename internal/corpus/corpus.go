// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus merges the three parsed datasets into one immutable verse
// index and answers lookups against it. The Arabic dataset is the anchor:
// its key set defines corpus membership and sequence numbering. Gaps in the
// other two datasets degrade to empty fields and integrity warnings; only
// an unusable anchor fails a build. A built Index never changes, so any
// number of readers may query it concurrently without locking.
package corpus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Hashim125/ayah-a-day/internal/dataset"
	"github.com/Hashim125/ayah-a-day/internal/sanitize"
	"github.com/Hashim125/ayah-a-day/pkg/types"
)

// Index is the built, immutable verse corpus.
type Index struct {
	records []types.VerseRecord
	byKey   map[types.VerseKey]int
	bySurah map[int][]types.VerseKey
}

// Build merges the three datasets into an Index, anchored on the Arabic
// key set in canonical (surah, ayah) order. The returned report collects
// every gap and skipped entry; it is informational unless the anchor
// itself is empty, which is the one fatal case.
func Build(arabic, translation, commentary *dataset.Source) (*Index, *types.IntegrityReport, error) {
	if arabic == nil || arabic.Len() == 0 {
		return nil, nil, fmt.Errorf("anchor dataset is empty: no Arabic verses to index")
	}
	translation = orEmpty(translation, dataset.Translation)
	commentary = orEmpty(commentary, dataset.Commentary)

	keys := make([]types.VerseKey, 0, arabic.Len())
	for k := range arabic.Fragments {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	ix := &Index{
		records: make([]types.VerseRecord, 0, len(keys)),
		byKey:   make(map[types.VerseKey]int, len(keys)),
		bySurah: make(map[int][]types.VerseKey),
	}
	report := &types.IntegrityReport{TotalVerses: len(keys)}
	collectProblems(report, arabic, translation, commentary)

	for seq, key := range keys {
		rec := types.VerseRecord{
			Key:    key,
			Seq:    seq,
			Arabic: arabic.Fragments[key],
		}

		if tr := translation.Fragments[key]; strings.TrimSpace(tr) != "" {
			rec.Translation = tr
		} else {
			report.MissingTranslation = append(report.MissingTranslation, key)
		}

		rec.Commentary = sanitize.Clean(commentary.Fragments[key])
		if rec.Commentary == "" {
			report.MissingCommentary = append(report.MissingCommentary, key)
		}

		ix.byKey[key] = seq
		ix.records = append(ix.records, rec)
		ix.bySurah[key.Surah] = append(ix.bySurah[key.Surah], key)
	}

	return ix, report, nil
}

func orEmpty(src *dataset.Source, name string) *dataset.Source {
	if src != nil {
		return src
	}
	return &dataset.Source{Name: name, Fragments: map[types.VerseKey]string{}}
}

// collectProblems folds the per-source load problems into the report, in
// source order so reports are reproducible.
func collectProblems(report *types.IntegrityReport, sources ...*dataset.Source) {
	for _, src := range sources {
		report.MalformedKeys = append(report.MalformedKeys, src.Malformed...)
		report.SchemaProblems = append(report.SchemaProblems, src.Schema...)
		report.UnresolvedRefs = append(report.UnresolvedRefs, src.Unresolved...)
	}
}

// Size returns the number of verses in the corpus.
func (ix *Index) Size() int {
	return len(ix.records)
}

// Get returns the record for key.
func (ix *Index) Get(key types.VerseKey) (types.VerseRecord, error) {
	i, ok := ix.byKey[key]
	if !ok {
		return types.VerseRecord{}, fmt.Errorf("%s: %w", key, types.ErrVerseNotFound)
	}
	return ix.records[i], nil
}

// At returns the record at sequence position seq.
func (ix *Index) At(seq int) (types.VerseRecord, error) {
	if seq < 0 || seq >= len(ix.records) {
		return types.VerseRecord{}, fmt.Errorf("sequence %d: %w", seq, types.ErrVerseNotFound)
	}
	return ix.records[seq], nil
}

// Records returns the full corpus in canonical order. Callers must treat
// the returned slice as read-only.
func (ix *Index) Records() []types.VerseRecord {
	return ix.records
}

// Surahs lists the surah numbers present in the corpus, ascending.
func (ix *Index) Surahs() []int {
	surahs := make([]int, 0, len(ix.bySurah))
	for s := range ix.bySurah {
		surahs = append(surahs, s)
	}
	sort.Ints(surahs)
	return surahs
}

// SurahKeys returns the keys of one surah in ayah order. The result is
// read-only and empty for surahs not in the corpus.
func (ix *Index) SurahKeys(surah int) []types.VerseKey {
	return ix.bySurah[surah]
}

// Range returns the records of a surah with ayah numbers between from and
// to inclusive. Out-of-corpus surahs or empty windows yield an empty
// result, not an error.
func (ix *Index) Range(surah, from, to int) []types.VerseRecord {
	if from < 1 {
		from = 1
	}
	var out []types.VerseRecord
	for _, k := range ix.bySurah[surah] {
		if k.Ayah < from || k.Ayah > to {
			continue
		}
		out = append(out, ix.records[ix.byKey[k]])
	}
	return out
}

// Context returns the verse at key together with up to n neighbors on each
// side within the same surah, in ayah order.
func (ix *Index) Context(key types.VerseKey, n int) ([]types.VerseRecord, error) {
	if _, ok := ix.byKey[key]; !ok {
		return nil, fmt.Errorf("%s: %w", key, types.ErrVerseNotFound)
	}
	if n < 0 {
		n = 0
	}

	keys := ix.bySurah[key.Surah]
	pos := sort.Search(len(keys), func(i int) bool { return !keys[i].Less(key) })

	lo := pos - n
	if lo < 0 {
		lo = 0
	}
	hi := pos + n
	if hi > len(keys)-1 {
		hi = len(keys) - 1
	}

	out := make([]types.VerseRecord, 0, hi-lo+1)
	for _, k := range keys[lo : hi+1] {
		out = append(out, ix.records[ix.byKey[k]])
	}
	return out, nil
}

// Stats summarizes per-surah coverage, surahs ascending.
func (ix *Index) Stats() []types.SurahStats {
	stats := make([]types.SurahStats, 0, len(ix.bySurah))
	for _, surah := range ix.Surahs() {
		keys := ix.bySurah[surah]
		st := types.SurahStats{
			Surah:  surah,
			Verses: len(keys),
			First:  keys[0],
			Last:   keys[len(keys)-1],
		}
		for _, k := range keys {
			rec := ix.records[ix.byKey[k]]
			if rec.Translation == "" {
				st.MissingTranslation++
			}
			if rec.Commentary == "" {
				st.MissingCommentary++
			}
		}
		stats = append(stats, st)
	}
	return stats
}
