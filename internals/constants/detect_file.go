package constants

import (
	"path/filepath"
	"sort"
	"strings"
)

// Tipe konten yang didukung
const (
	ContentTypeBook  = "book"
	ContentTypeAudio = "audio"
	ContentTypeVideo = "video"
)

var ContentTypes = []string{ContentTypeBook, ContentTypeAudio, ContentTypeVideo}

// Bahasa yang didukung untuk metadata konten
var ContentLanguages = []string{
	"English", "Arabic", "Urdu", "Turkish", "Malay", "Indonesian", "French", "Spanish",
}

// Batas ukuran upload
const (
	MaxContentFileSize = int64(500 * 1024 * 1024) // 500MB file utama
	MaxCoverImageSize  = int64(10 * 1024 * 1024)  // 10MB cover
)

// Ekstensi yang diizinkan per tipe konten
var allowedExtByType = map[string]map[string]struct{}{
	ContentTypeBook: {
		".pdf": {}, ".epub": {}, ".doc": {}, ".docx": {},
	},
	ContentTypeAudio: {
		".mp3": {}, ".wav": {}, ".ogg": {}, ".m4a": {},
	},
	ContentTypeVideo: {
		".mp4": {}, ".webm": {}, ".mov": {},
	},
}

var allowedCoverExt = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".webp": {},
}

// ValidContentType cek tipe konten dikenal
func ValidContentType(t string) bool {
	_, ok := allowedExtByType[t]
	return ok
}

// ValidContentLanguage cek bahasa dikenal
func ValidContentLanguage(lang string) bool {
	for _, l := range ContentLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// AllowedFileExt cek ekstensi file utama sesuai tipe konten
func AllowedFileExt(contentType, filename string) bool {
	exts, ok := allowedExtByType[contentType]
	if !ok {
		return false
	}
	_, ok = exts[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// AllowedCoverExt cek ekstensi cover image
func AllowedCoverExt(filename string) bool {
	_, ok := allowedCoverExt[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// AllowedExtList daftar ekstensi utk pesan error
func AllowedExtList(contentType string) string {
	exts, ok := allowedExtByType[contentType]
	if !ok {
		return ""
	}
	out := make([]string, 0, len(exts))
	for e := range exts {
		out = append(out, e)
	}
	// urutan stabil untuk pesan error
	sort.Strings(out)
	return strings.Join(out, ", ")
}
