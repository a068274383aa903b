package dto

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTagsTrimsAndDropsEmpty(t *testing.T) {
	got := NormalizeTags("tafsir,  quran , , sejarah,")

	assert.Equal(t, []string{"tafsir", "quran", "sejarah"}, got)
}

func TestNormalizeTagsCapsLengthAndCount(t *testing.T) {
	long := strings.Repeat("a", 80)
	raw := long + "," + strings.Repeat("x,", 30)

	got := NormalizeTags(raw)

	assert.Len(t, got, 20)
	assert.Len(t, got[0], 50)
}

func TestNormalizeTagsTruncatesMultibyteOnRuneBoundary(t *testing.T) {
	// 51 karakter, 101 byte: potongan byte mentah akan membelah rune
	long := "a" + strings.Repeat("é", 50)

	got := NormalizeTags(long)

	assert.Len(t, got, 1)
	assert.True(t, utf8.ValidString(got[0]))
	assert.Equal(t, 50, utf8.RuneCountInString(got[0]))
	assert.Equal(t, "a"+strings.Repeat("é", 49), got[0])
}

func TestNormalizeTagsEmptyInput(t *testing.T) {
	assert.Empty(t, NormalizeTags(""))
	assert.Empty(t, NormalizeTags("  ,  ,  "))
}
