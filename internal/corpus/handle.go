// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import "sync/atomic"

// Handle publishes the active Index to concurrent readers. Reads are
// lock-free; a reload builds a replacement Index off to the side and makes
// it visible with a single atomic swap, so in-flight queries against the
// old Index complete unaffected and no reader ever observes a partially
// built one.
type Handle struct {
	current atomic.Pointer[Index]
}

// NewHandle returns a Handle serving ix.
func NewHandle(ix *Index) *Handle {
	h := &Handle{}
	h.current.Store(ix)
	return h
}

// Current returns the Index readers should query. The returned Index never
// changes; a later Publish does not affect it.
func (h *Handle) Current() *Index {
	return h.current.Load()
}

// Publish atomically replaces the active Index and returns the previous
// one.
func (h *Handle) Publish(ix *Index) *Index {
	return h.current.Swap(ix)
}
