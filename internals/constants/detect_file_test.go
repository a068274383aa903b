package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedFileExtPerType(t *testing.T) {
	assert.True(t, AllowedFileExt(ContentTypeBook, "tafsir-ibn-kathir.pdf"))
	assert.True(t, AllowedFileExt(ContentTypeBook, "kitab.EPUB"))
	assert.True(t, AllowedFileExt(ContentTypeAudio, "murottal.mp3"))
	assert.True(t, AllowedFileExt(ContentTypeVideo, "kajian.mp4"))

	// ekstensi valid tapi salah tipe
	assert.False(t, AllowedFileExt(ContentTypeBook, "murottal.mp3"))
	assert.False(t, AllowedFileExt(ContentTypeAudio, "kitab.pdf"))

	assert.False(t, AllowedFileExt(ContentTypeBook, "malware.exe"))
	assert.False(t, AllowedFileExt("poster", "gambar.png"))
	assert.False(t, AllowedFileExt(ContentTypeBook, "tanpa-ekstensi"))
}

func TestAllowedCoverExt(t *testing.T) {
	assert.True(t, AllowedCoverExt("cover.jpg"))
	assert.True(t, AllowedCoverExt("cover.JPEG"))
	assert.True(t, AllowedCoverExt("cover.png"))
	assert.True(t, AllowedCoverExt("cover.webp"))
	assert.False(t, AllowedCoverExt("cover.gif"))
	assert.False(t, AllowedCoverExt("cover.pdf"))
}

func TestValidContentTypeAndLanguage(t *testing.T) {
	for _, ct := range ContentTypes {
		assert.True(t, ValidContentType(ct))
	}
	assert.False(t, ValidContentType("magazine"))

	assert.True(t, ValidContentLanguage("Arabic"))
	assert.True(t, ValidContentLanguage("Indonesian"))
	assert.False(t, ValidContentLanguage("arabic")) // case-sensitive
	assert.False(t, ValidContentLanguage("Klingon"))
}

func TestAllowedExtListStableOrder(t *testing.T) {
	assert.Equal(t, ".doc, .docx, .epub, .pdf", AllowedExtList(ContentTypeBook))
	assert.Equal(t, "", AllowedExtList("magazine"))
}
