// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the ayah-a-day engine.
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// SurahCount is the number of surahs in the Quran.
const SurahCount = 114

// VerseKey identifies a single verse as a (surah, ayah) pair, rendered
// canonically as "surah:ayah" (e.g. "2:255"). Keys order by surah, then ayah.
type VerseKey struct {
	// Surah is the chapter number, 1..114.
	Surah int

	// Ayah is the verse number within the surah, 1-based.
	Ayah int
}

// ParseVerseKey parses a "surah:ayah" string. The surah must be in 1..114
// and the ayah positive; anything else returns a *MalformedKeyError.
func ParseVerseKey(s string) (VerseKey, error) {
	surahStr, ayahStr, ok := strings.Cut(s, ":")
	if !ok {
		return VerseKey{}, &MalformedKeyError{Key: s, Reason: "want surah:ayah"}
	}
	surah, err := strconv.Atoi(surahStr)
	if err != nil {
		return VerseKey{}, &MalformedKeyError{Key: s, Reason: "surah is not a number"}
	}
	ayah, err := strconv.Atoi(ayahStr)
	if err != nil {
		return VerseKey{}, &MalformedKeyError{Key: s, Reason: "ayah is not a number"}
	}
	if surah < 1 || surah > SurahCount {
		return VerseKey{}, &MalformedKeyError{Key: s, Reason: fmt.Sprintf("surah out of range 1..%d", SurahCount)}
	}
	if ayah < 1 {
		return VerseKey{}, &MalformedKeyError{Key: s, Reason: "ayah must be positive"}
	}
	return VerseKey{Surah: surah, Ayah: ayah}, nil
}

// String renders the key canonically as "surah:ayah".
func (k VerseKey) String() string {
	return strconv.Itoa(k.Surah) + ":" + strconv.Itoa(k.Ayah)
}

// Less reports whether k precedes other in canonical corpus order.
func (k VerseKey) Less(other VerseKey) bool {
	if k.Surah != other.Surah {
		return k.Surah < other.Surah
	}
	return k.Ayah < other.Ayah
}

// IsZero reports whether the key is the zero value.
func (k VerseKey) IsZero() bool {
	return k.Surah == 0 && k.Ayah == 0
}

// MarshalText implements encoding.TextMarshaler so JSON renders keys as "surah:ayah".
func (k VerseKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *VerseKey) UnmarshalText(text []byte) error {
	parsed, err := ParseVerseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML renders the key as a "surah:ayah" scalar.
func (k VerseKey) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML parses a "surah:ayah" scalar.
func (k *VerseKey) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseVerseKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// VerseRecord is the unified record for one verse, assembled once during an
// index build and never mutated afterward.
type VerseRecord struct {
	// Key identifies the verse.
	Key VerseKey `json:"key" yaml:"key"`

	// Seq is the 0-based position in canonical surah/ayah order. Across a
	// built index the Seq values form a contiguous 0..N-1 range.
	Seq int `json:"seq" yaml:"seq"`

	// Arabic is the verbatim Arabic text, diacritics included.
	Arabic string `json:"arabic" yaml:"arabic"`

	// Translation is the plain-text translation. Empty when the translation
	// dataset has no usable entry for the key.
	Translation string `json:"translation" yaml:"translation"`

	// Commentary is the sanitized plain-text commentary (tafsir). Empty when
	// the commentary dataset has no usable entry for the key.
	Commentary string `json:"commentary" yaml:"commentary"`
}
