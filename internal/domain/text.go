package domain

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const (
	ListExcerptLength     = 100
	FeaturedExcerptLength = 150
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugNonWord    = regexp.MustCompile(`[^\w-]+`)
	slugDashes     = regexp.MustCompile(`--+`)
)

// Slugify derives the URL slug for an article title.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugNonWord.ReplaceAllString(slug, "")
	return slugDashes.ReplaceAllString(slug, "-")
}

var (
	stripPolicy   = bluemonday.StrictPolicy()
	contentPolicy = bluemonday.UGCPolicy()
)

// maxStripPasses bounds plainText on pathologically nested escaping.
const maxStripPasses = 4

// Excerpt strips all markup from content and truncates the text to at most maxChars characters.
func Excerpt(content string, maxChars int) string {
	text := plainText(content)

	runes := []rune(text)
	if len(runes) > maxChars {
		runes = runes[:maxChars]
	}
	return string(runes)
}

// plainText strips markup and decodes entities. Decoding can turn escaped text such as
// "&lt;script&gt;" back into a tag, so stripping repeats until the text is stable.
func plainText(content string) string {
	stripped := stripPolicy.Sanitize(content)
	for range maxStripPasses {
		text := html.UnescapeString(stripped)
		next := stripPolicy.Sanitize(text)
		if next == stripped {
			return text
		}
		stripped = next
	}
	return stripped
}

// SanitizeContent removes scripts and other unsafe markup from author-supplied article HTML.
func SanitizeContent(content string) string {
	return contentPolicy.Sanitize(content)
}
