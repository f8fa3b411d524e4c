package domain

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "simple_title",
			title:    "Coffee From Huila",
			expected: "coffee-from-huila",
		},
		{
			name:     "punctuation_stripped",
			title:    "Why Geisha?! A Tasting",
			expected: "why-geisha-a-tasting",
		},
		{
			name:     "repeated_whitespace",
			title:    "Washed   vs\tNatural",
			expected: "washed-vs-natural",
		},
		{
			name:     "dashes_collapsed",
			title:    "Roast - Light",
			expected: "roast-light",
		},
		{
			name:     "non_ascii_letters_removed",
			title:    "Café de Nariño",
			expected: "caf-de-nario",
		},
		{
			name:     "underscores_kept",
			title:    "cold_brew 101",
			expected: "cold_brew-101",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.title))
		})
	}
}

func TestExcerpt(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		maxChars int
		expected string
	}{
		{
			name:     "tags_removed",
			content:  "<p>Hello <strong>origins</strong></p>",
			maxChars: 100,
			expected: "Hello origins",
		},
		{
			name:     "entities_decoded",
			content:  "<p>Beans &amp; brews</p>",
			maxChars: 100,
			expected: "Beans & brews",
		},
		{
			name:     "truncated",
			content:  "<p>abcdefghij</p>",
			maxChars: 4,
			expected: "abcd",
		},
		{
			name:     "empty",
			content:  "",
			maxChars: 100,
			expected: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Excerpt(tc.content, tc.maxChars))
		})
	}
}

func TestExcerpt_CountsCharactersNotBytes(t *testing.T) {
	content := "<h1>" + strings.Repeat("ñ", 300) + "</h1>"

	excerpt := Excerpt(content, ListExcerptLength)

	assert.Equal(t, ListExcerptLength, utf8.RuneCountInString(excerpt))
	assert.NotContains(t, excerpt, "<")
}

func TestSanitizeContent_RemovesScripts(t *testing.T) {
	sanitized := SanitizeContent(`<p>Origins</p><script>alert(1)</script>`)

	assert.Contains(t, sanitized, "<p>Origins</p>")
	assert.NotContains(t, sanitized, "script")
}

func TestExcerpt_EscapedMarkupNeverBecomesTags(t *testing.T) {
	tag := regexp.MustCompile(`<[a-zA-Z/!]`)

	cases := []struct {
		name    string
		content string
		prefix  string
	}{
		{
			name:    "escaped_script",
			content: SanitizeContent("<p>Use the &lt;script&gt; tag sparingly</p>"),
			prefix:  "Use the",
		},
		{
			name:    "escaped_inline_markup",
			content: "<p>&lt;b&gt;Bold&lt;/b&gt; claims about Huila</p>",
			prefix:  "Bold claims about Huila",
		},
		{
			name:    "double_escaped",
			content: "<p>&amp;lt;img src=x onerror=alert(1)&amp;gt; Tolima</p>",
			prefix:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			excerpt := Excerpt(tc.content, FeaturedExcerptLength)
			assert.False(t, tag.MatchString(excerpt), "excerpt contains markup: %q", excerpt)
			assert.True(t, strings.HasPrefix(excerpt, tc.prefix), "excerpt: %q", excerpt)
		})
	}
}

func TestExcerpt_KeepsLiteralComparisons(t *testing.T) {
	assert.Equal(t, "Altitude 1800 < 2000 m", Excerpt("<p>Altitude 1800 &lt; 2000 m</p>", ListExcerptLength))
}
