package dto

import (
	"strings"
	"unicode/utf8"
)

const (
	maxTags   = 20
	maxTagLen = 50
)

// NormalizeTags: "tafsir, quran , , sejarah" → ["tafsir","quran","sejarah"].
// Tiap tag dipotong 50 karakter, maksimum 20 tag.
func NormalizeTags(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t == "" {
			continue
		}
		// batas dihitung per karakter, bukan byte: tag Arab/latin
		// beraksen tidak boleh terpotong di tengah rune
		if utf8.RuneCountInString(t) > maxTagLen {
			t = string([]rune(t)[:maxTagLen])
		}
		out = append(out, t)
		if len(out) == maxTags {
			break
		}
	}
	return out
}
