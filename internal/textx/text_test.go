package textx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Hello, Go World! ", "hello-go-world"},
		{"React 19 -- what's new?", "react-19-whats-new"},
		{"snake_case_title", "snake-case-title"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "hello...", Truncate("hello world", 6))
	assert.Equal(t, "привет...", Truncate("привет мир", 6))
}

func TestExcerpt_StripsTags(t *testing.T) {
	got := Excerpt("<p>Go <b>is</b> fun</p>", 200)
	assert.Equal(t, "Go is fun", got)
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 0, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("one two three"))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("word ", 201)))
}

func TestFormatReadingTime(t *testing.T) {
	assert.Equal(t, "< 1 min read", FormatReadingTime(0.4))
	assert.Equal(t, "3 min read", FormatReadingTime(2.1))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1.5K", FormatNumber(1500))
	assert.Equal(t, "2.0M", FormatNumber(2_000_000))
}

func TestValidation(t *testing.T) {
	assert.True(t, ValidEmail("admin@techblog.com"))
	assert.False(t, ValidEmail("admin@techblog"))
	assert.False(t, ValidEmail("ad min@techblog.com"))

	assert.True(t, ValidPassword("admin123"))
	assert.False(t, ValidPassword("12345"))

	assert.True(t, Blank("  \t"))
	assert.False(t, Blank(" a "))
}
