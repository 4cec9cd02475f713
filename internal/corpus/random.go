// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"hash/fnv"
	"math/rand/v2"
	"time"

	"github.com/Hashim125/ayah-a-day/pkg/types"
)

// dayFmt renders the calendar date that selects the daily verse.
const dayFmt = "2006-01-02"

// PickRandom returns a uniformly random verse. Every call draws fresh
// randomness; successive calls are independent.
func (ix *Index) PickRandom() types.VerseRecord {
	return ix.records[rand.IntN(len(ix.records))]
}

// PickOfDay returns the verse of the day for t's calendar date. The choice
// is a pure function of the built corpus and the date, so every caller
// sees the same verse on the same day: the date string hashes (FNV-1a)
// onto a sequence position.
func (ix *Index) PickOfDay(t time.Time) types.VerseRecord {
	h := fnv.New64a()
	h.Write([]byte(t.Format(dayFmt)))
	return ix.records[int(h.Sum64()%uint64(len(ix.records)))]
}
