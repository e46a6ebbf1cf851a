// Package textx contains the text helpers the client applies to content
// before it is sent to the API or printed: slugs, excerpts, reading time and
// simple field validation.
package textx

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	nonSlugRe    = regexp.MustCompile(`[^\w\s-]`)
	separatorsRe = regexp.MustCompile(`[\s_-]+`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const wordsPerMinute = 200

// Slug lowercases text and joins its words with single dashes.
//
//	Slug("  Hello, Go World! ") == "hello-go-world"
func Slug(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonSlugRe.ReplaceAllString(s, "")
	s = separatorsRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Truncate cuts text to maxLen runes and appends "..." when it was longer.
func Truncate(text string, maxLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxLen])) + "..."
}

// StripHTML removes anything that looks like a tag.
func StripHTML(html string) string {
	return htmlTagRe.ReplaceAllString(html, "")
}

// Excerpt builds a plain-text preview of content.
func Excerpt(content string, maxLen int) string {
	return Truncate(StripHTML(content), maxLen)
}

// ReadingTime estimates minutes needed to read content, rounded up.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	return int(math.Ceil(float64(words) / wordsPerMinute))
}

// FormatReadingTime renders minutes the way post lists show them.
func FormatReadingTime(minutes float64) string {
	if minutes < 1 {
		return "< 1 min read"
	}
	return fmt.Sprintf("%d min read", int(math.Ceil(minutes)))
}

// FormatNumber abbreviates large counters: 1500 -> "1.5K", 2000000 -> "2.0M".
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// ValidEmail reports whether s has the shape local@domain.tld.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidPassword reports whether s is long enough to be accepted by the API.
func ValidPassword(s string) bool {
	return len(s) >= 6
}

// Blank reports whether s is empty after trimming.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
