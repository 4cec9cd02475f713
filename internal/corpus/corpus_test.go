// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/Hashim125/ayah-a-day/internal/dataset"
	"github.com/Hashim125/ayah-a-day/internal/sanitize"
	"github.com/Hashim125/ayah-a-day/pkg/types"
)

func src(t *testing.T, name string, entries map[string]string) *dataset.Source {
	t.Helper()
	frags := make(map[types.VerseKey]string, len(entries))
	for k, v := range entries {
		key, err := types.ParseVerseKey(k)
		if err != nil {
			t.Fatalf("bad fixture key %q: %v", k, err)
		}
		frags[key] = v
	}
	return &dataset.Source{Name: name, Fragments: frags}
}

func mustKey(t *testing.T, s string) types.VerseKey {
	t.Helper()
	k, err := types.ParseVerseKey(s)
	if err != nil {
		t.Fatalf("bad key %q: %v", s, err)
	}
	return k
}

// testSources builds a small corpus: three verses of surah 1, three of
// surah 2 with a gap at 2:2, and one of surah 114. 2:3 lacks translation;
// 1:2 has blank commentary and 2:255 none at all.
func testSources(t *testing.T) (arabic, translation, commentary *dataset.Source) {
	t.Helper()
	arabic = src(t, dataset.Arabic, map[string]string{
		"1:1":   "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ",
		"1:2":   "الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِينَ",
		"1:3":   "الرَّحْمَٰنِ الرَّحِيمِ",
		"2:1":   "الم",
		"2:3":   "الَّذِينَ يُؤْمِنُونَ بِالْغَيْبِ",
		"2:255": "اللَّهُ لَا إِلَٰهَ إِلَّا هُوَ الْحَيُّ الْقَيُّومُ",
		"114:1": "قُلْ أَعُوذُ بِرَبِّ النَّاسِ",
	})
	translation = src(t, dataset.Translation, map[string]string{
		"1:1":   "In the name of Allah, the All-Merciful, the Very-Merciful.",
		"1:2":   "Praise belongs to Allah, the Lord of all the worlds.",
		"1:3":   "The All-Merciful, the Very-Merciful.",
		"2:1":   "Alif, Lam, Mim.",
		"2:255": "Allah: there is no god but He, the Living, the All-Sustaining.",
		"114:1": "Say, I seek refuge with the Lord of mankind.",
	})
	commentary = src(t, dataset.Commentary, map[string]string{
		"1:1":   "<p>Mercy is <b>central</b>.</p>",
		"1:2":   "   ",
		"1:3":   "Commentary on the attribute of mercy.",
		"2:1":   "On the disjoined letters.",
		"2:3":   "On belief in the unseen.",
		"114:1": "On seeking refuge.",
	})
	return arabic, translation, commentary
}

func buildTestIndex(t *testing.T) (*Index, *types.IntegrityReport) {
	t.Helper()
	ix, report, err := Build(testSources(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ix, report
}

// --- build ---

func TestBuildSequence(t *testing.T) {
	ix, _ := buildTestIndex(t)

	if got := ix.Size(); got != 7 {
		t.Fatalf("Size() = %d, want 7", got)
	}

	wantOrder := []string{"1:1", "1:2", "1:3", "2:1", "2:3", "2:255", "114:1"}
	for i, ks := range wantOrder {
		rec, err := ix.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if rec.Seq != i {
			t.Errorf("At(%d).Seq = %d, want %d", i, rec.Seq, i)
		}
		if rec.Key.String() != ks {
			t.Errorf("At(%d).Key = %s, want %s", i, rec.Key, ks)
		}
	}
}

func TestBuildReport(t *testing.T) {
	_, report := buildTestIndex(t)

	if got := report.TotalVerses; got != 7 {
		t.Errorf("TotalVerses = %d, want 7", got)
	}

	wantMissingTr := []types.VerseKey{{Surah: 2, Ayah: 3}}
	if !reflect.DeepEqual(report.MissingTranslation, wantMissingTr) {
		t.Errorf("MissingTranslation = %v, want %v", report.MissingTranslation, wantMissingTr)
	}

	wantMissingCm := []types.VerseKey{{Surah: 1, Ayah: 2}, {Surah: 2, Ayah: 255}}
	if !reflect.DeepEqual(report.MissingCommentary, wantMissingCm) {
		t.Errorf("MissingCommentary = %v, want %v", report.MissingCommentary, wantMissingCm)
	}

	if len(report.DuplicateKeys) != 0 {
		t.Errorf("DuplicateKeys = %v, want none", report.DuplicateKeys)
	}
	if report.Clean() {
		t.Error("report.Clean() = true for a corpus with known gaps")
	}
}

func TestBuildSanitizesCommentary(t *testing.T) {
	ix, _ := buildTestIndex(t)

	rec, err := ix.Get(mustKey(t, "1:1"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Commentary != "Mercy is central." {
		t.Errorf("Commentary = %q, want %q", rec.Commentary, "Mercy is central.")
	}
}

func TestBuildEmptyAnchor(t *testing.T) {
	if _, _, err := Build(nil, nil, nil); err == nil {
		t.Error("Build(nil anchor) succeeded, want error")
	}

	empty := &dataset.Source{Name: dataset.Arabic, Fragments: map[types.VerseKey]string{}}
	if _, _, err := Build(empty, nil, nil); err == nil {
		t.Error("Build(empty anchor) succeeded, want error")
	}
}

// --- lookups ---

func TestGet(t *testing.T) {
	ix, _ := buildTestIndex(t)

	rec, err := ix.Get(mustKey(t, "2:255"))
	if err != nil {
		t.Fatalf("Get(2:255): %v", err)
	}
	if rec.Translation != "Allah: there is no god but He, the Living, the All-Sustaining." {
		t.Errorf("unexpected translation %q", rec.Translation)
	}
	if rec.Commentary != "" {
		t.Errorf("Commentary = %q, want empty (absent from dataset)", rec.Commentary)
	}

	_, err = ix.Get(mustKey(t, "3:1"))
	if !errors.Is(err, types.ErrVerseNotFound) {
		t.Errorf("Get(3:1) error = %v, want ErrVerseNotFound", err)
	}
}

func TestAtBounds(t *testing.T) {
	ix, _ := buildTestIndex(t)

	for _, seq := range []int{-1, 7, 100} {
		if _, err := ix.At(seq); !errors.Is(err, types.ErrVerseNotFound) {
			t.Errorf("At(%d) error = %v, want ErrVerseNotFound", seq, err)
		}
	}
}

func TestRange(t *testing.T) {
	ix, _ := buildTestIndex(t)

	tests := []struct {
		name     string
		surah    int
		from, to int
		want     []string
	}{
		{"whole surah", 2, 1, 255, []string{"2:1", "2:3", "2:255"}},
		{"window with gap", 2, 2, 254, []string{"2:3"}},
		{"empty window", 2, 4, 200, nil},
		{"single", 1, 2, 2, []string{"1:2"}},
		{"inverted", 1, 3, 1, nil},
		{"absent surah", 99, 1, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Range(tt.surah, tt.from, tt.to)
			var keys []string
			for _, rec := range got {
				keys = append(keys, rec.Key.String())
			}
			if !reflect.DeepEqual(keys, tt.want) {
				t.Errorf("Range(%d, %d, %d) = %v, want %v", tt.surah, tt.from, tt.to, keys, tt.want)
			}
		})
	}
}

func TestContext(t *testing.T) {
	ix, _ := buildTestIndex(t)

	got, err := ix.Context(mustKey(t, "2:3"), 1)
	if err != nil {
		t.Fatalf("Context: %v", err)
	}
	var keys []string
	for _, rec := range got {
		keys = append(keys, rec.Key.String())
	}
	// Neighbors are by position within the surah, so the gap at 2:2 does
	// not shrink the window.
	want := []string{"2:1", "2:3", "2:255"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Context(2:3, 1) = %v, want %v", keys, want)
	}

	if _, err := ix.Context(mustKey(t, "3:1"), 1); !errors.Is(err, types.ErrVerseNotFound) {
		t.Errorf("Context(3:1) error = %v, want ErrVerseNotFound", err)
	}
}

func TestSurahs(t *testing.T) {
	ix, _ := buildTestIndex(t)

	if got := ix.Surahs(); !reflect.DeepEqual(got, []int{1, 2, 114}) {
		t.Errorf("Surahs() = %v, want [1 2 114]", got)
	}

	keys := ix.SurahKeys(2)
	want := []types.VerseKey{{Surah: 2, Ayah: 1}, {Surah: 2, Ayah: 3}, {Surah: 2, Ayah: 255}}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("SurahKeys(2) = %v, want %v", keys, want)
	}

	if got := ix.SurahKeys(99); len(got) != 0 {
		t.Errorf("SurahKeys(99) = %v, want empty", got)
	}
}

func TestStats(t *testing.T) {
	ix, _ := buildTestIndex(t)

	stats := ix.Stats()
	if len(stats) != 3 {
		t.Fatalf("len(Stats()) = %d, want 3", len(stats))
	}

	s1 := stats[0]
	if s1.Surah != 1 || s1.Verses != 3 || s1.First.String() != "1:1" || s1.Last.String() != "1:3" {
		t.Errorf("surah 1 stats = %+v", s1)
	}
	if s1.MissingCommentary != 1 {
		t.Errorf("surah 1 MissingCommentary = %d, want 1", s1.MissingCommentary)
	}

	s2 := stats[1]
	if s2.Surah != 2 || s2.MissingTranslation != 1 || s2.MissingCommentary != 1 {
		t.Errorf("surah 2 stats = %+v", s2)
	}
}

// --- selectors ---

func TestPickOfDayDeterministic(t *testing.T) {
	ix, _ := buildTestIndex(t)

	day := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	first := ix.PickOfDay(day)
	second := ix.PickOfDay(day)
	if first.Key != second.Key {
		t.Errorf("PickOfDay twice for one date: %s then %s", first.Key, second.Key)
	}

	// Clock time within the day is irrelevant.
	evening := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	if got := ix.PickOfDay(evening); got.Key != first.Key {
		t.Errorf("PickOfDay ignores time of day: %s vs %s", got.Key, first.Key)
	}

	// A fresh build of the same corpus picks the same verse.
	again, _, err := Build(testSources(t))
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if got := again.PickOfDay(day); got.Key != first.Key {
		t.Errorf("PickOfDay not stable across identical builds: %s vs %s", got.Key, first.Key)
	}
}

func TestPickRandomBounds(t *testing.T) {
	ix, _ := buildTestIndex(t)

	for i := 0; i < 50; i++ {
		rec := ix.PickRandom()
		if rec.Seq < 0 || rec.Seq >= ix.Size() {
			t.Fatalf("PickRandom returned out-of-range Seq %d", rec.Seq)
		}
		if _, err := ix.Get(rec.Key); err != nil {
			t.Fatalf("PickRandom returned unknown key %s", rec.Key)
		}
	}
}

// --- validation ---

func TestValidateCleanIndex(t *testing.T) {
	ix, buildReport := buildTestIndex(t)

	recheck := ix.Validate()
	if len(recheck.Inconsistencies) != 0 {
		t.Errorf("Inconsistencies = %v, want none", recheck.Inconsistencies)
	}
	if len(recheck.DuplicateKeys) != 0 {
		t.Errorf("DuplicateKeys = %v, want none", recheck.DuplicateKeys)
	}

	// The recheck re-derives the same coverage gaps Build reported.
	if !reflect.DeepEqual(recheck.MissingTranslation, buildReport.MissingTranslation) {
		t.Errorf("MissingTranslation: recheck %v, build %v",
			recheck.MissingTranslation, buildReport.MissingTranslation)
	}
	if !reflect.DeepEqual(recheck.MissingCommentary, buildReport.MissingCommentary) {
		t.Errorf("MissingCommentary: recheck %v, build %v",
			recheck.MissingCommentary, buildReport.MissingCommentary)
	}
}

// --- export ---

func TestExportJSON(t *testing.T) {
	ix, _ := buildTestIndex(t)

	path := filepath.Join(t.TempDir(), "corpus.json")
	if err := ExportJSON(path, ix); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var records []types.VerseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(records) != ix.Size() {
		t.Errorf("got %d records, want %d", len(records), ix.Size())
	}
	if records[0].Key.String() != "1:1" || records[len(records)-1].Key.String() != "114:1" {
		t.Errorf("records out of canonical order: first %s, last %s",
			records[0].Key, records[len(records)-1].Key)
	}
}

func TestExportYAML(t *testing.T) {
	ix, _ := buildTestIndex(t)

	path := filepath.Join(t.TempDir(), "corpus.yaml")
	if err := ExportYAML(path, ix); err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var records []types.VerseRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if len(records) != ix.Size() {
		t.Errorf("got %d records, want %d", len(records), ix.Size())
	}
}

func TestWriteReportFiles(t *testing.T) {
	_, report := buildTestIndex(t)
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "report.yaml")
	if err := WriteReportYAML(yamlPath, report); err != nil {
		t.Fatalf("WriteReportYAML: %v", err)
	}
	data, err := os.ReadFile(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	var fromYAML types.IntegrityReport
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if fromYAML.TotalVerses != report.TotalVerses {
		t.Errorf("TotalVerses = %d, want %d", fromYAML.TotalVerses, report.TotalVerses)
	}

	jsonPath := filepath.Join(dir, "report.json")
	if err := WriteReportJSON(jsonPath, report); err != nil {
		t.Fatalf("WriteReportJSON: %v", err)
	}
	data, err = os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var fromJSON types.IntegrityReport
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !reflect.DeepEqual(fromJSON.MissingTranslation, report.MissingTranslation) {
		t.Errorf("MissingTranslation = %v, want %v",
			fromJSON.MissingTranslation, report.MissingTranslation)
	}
}

// --- serialization ---

func TestRecordRoundTrip(t *testing.T) {
	ix, _ := buildTestIndex(t)

	rec, err := ix.Get(mustKey(t, "1:1"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back types.VerseRecord
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(rec, back) {
		t.Errorf("round trip changed record:\n  before %+v\n  after  %+v", rec, back)
	}

	// Stored fields are already clean, so sanitizing them again is a no-op.
	if got := sanitize.Clean(back.Commentary); got != back.Commentary {
		t.Errorf("Clean(commentary) = %q, want unchanged %q", got, back.Commentary)
	}
	if got := sanitize.Clean(back.Translation); got != back.Translation {
		t.Errorf("Clean(translation) = %q, want unchanged %q", got, back.Translation)
	}
}
