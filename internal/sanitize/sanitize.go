// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sanitize strips embedded markup from commentary text, producing
// plain display text.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled expressions, applied in order by cleanOnce.
var (
	scriptTag    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag  = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	htmlComments = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockTags    = regexp.MustCompile(`(?i)</?(p|div|h[1-6]|ul|ol|li|tr|td|th|table|blockquote|pre|br|hr)\b[^>]*/?>`)
	allTags      = regexp.MustCompile(`<[^>]+>`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// maxPasses bounds the fixpoint iteration in Clean. Entity decoding can
// reveal further markup ("&lt;b&gt;" decodes to "<b>"), so a single pass is
// not always enough; real commentary stabilizes within two.
const maxPasses = 6

// Clean converts markup-bearing text into plain display text: tags are
// stripped (script/style/noscript bodies removed entirely, block tags
// replaced by a space so adjacent paragraphs do not run together),
// character entities are decoded, whitespace runs collapse to single
// spaces, and the ends are trimmed.
//
// Clean is total and idempotent: it never fails on malformed or unbalanced
// markup, and sanitizing already-sanitized text is a no-op.
func Clean(s string) string {
	for i := 0; i < maxPasses; i++ {
		next := cleanOnce(s)
		if next == s {
			return s
		}
		s = next
	}
	return s
}

func cleanOnce(s string) string {
	if s == "" {
		return ""
	}
	s = scriptTag.ReplaceAllString(s, "")
	s = styleTag.ReplaceAllString(s, "")
	s = noscriptTag.ReplaceAllString(s, "")
	s = htmlComments.ReplaceAllString(s, "")
	s = blockTags.ReplaceAllString(s, " ")
	s = allTags.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, " ", " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
