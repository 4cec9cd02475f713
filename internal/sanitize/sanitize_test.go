package sanitize

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "In the name of Allah, the Most Merciful.",
			want: "In the name of Allah, the Most Merciful.",
		},
		{
			name: "inline tags stripped without splitting words",
			in:   "<p>Mercy is <b>central</b>.</p>",
			want: "Mercy is central.",
		},
		{
			name: "block tags separate paragraphs",
			in:   "<p>First thought.</p><p>Second thought.</p>",
			want: "First thought. Second thought.",
		},
		{
			name: "script body removed entirely",
			in:   `before<script type="text/javascript">alert("x")</script>after`,
			want: "beforeafter",
		},
		{
			name: "style body removed entirely",
			in:   "a<style>.c { color: red }</style>b",
			want: "ab",
		},
		{
			name: "comments removed",
			in:   "keep <!-- drop this --> this",
			want: "keep this",
		},
		{
			name: "named entities decoded",
			in:   "mercy &amp; guidance &quot;for all&quot;",
			want: `mercy & guidance "for all"`,
		},
		{
			name: "numeric entities decoded",
			in:   "&#77;ercy",
			want: "Mercy",
		},
		{
			name: "nbsp becomes plain space",
			in:   "one&nbsp;&nbsp;two",
			want: "one two",
		},
		{
			name: "whitespace collapsed and trimmed",
			in:   "  scattered \t\n  words  ",
			want: "scattered words",
		},
		{
			name: "unbalanced markup best effort",
			in:   "<p>unclosed <em>emphasis",
			want: "unclosed emphasis",
		},
		{
			name: "entity-encoded markup fully resolved",
			in:   "&lt;b&gt;bold&lt;/b&gt;",
			want: "bold",
		},
		{
			name: "br breaks words apart",
			in:   "line one<br/>line two",
			want: "line one line two",
		},
		{
			name: "attributes do not leak",
			in:   `<div class="tafsir" id="t1">text</div>`,
			want: "text",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.in)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Clean must be a no-op on its own output, whatever the input was.
func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"<p>Mercy is <b>central</b>.</p>",
		"&lt;b&gt;bold&lt;/b&gt;",
		"&amp;amp;lt;div&amp;amp;gt;",
		"plain already-clean text",
		"  <div> mixed &nbsp; <em>content</em>\n</div>  ",
		"",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
