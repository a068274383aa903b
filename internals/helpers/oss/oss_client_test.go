package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeyFromURL(t *testing.T) {
	key, err := ExtractKeyFromURL("https://bucket.oss-ap-southeast-5.aliyuncs.com/contributors/u1/book/tafsir.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "contributors/u1/book/tafsir.pdf", key)

	// query string signed URL dibuang
	key, err = ExtractKeyFromURL("https://bucket.oss.aliyuncs.com/covers/a.webp?Expires=1&Signature=xyz")
	assert.NoError(t, err)
	assert.Equal(t, "covers/a.webp", key)

	// key polos lolos apa adanya
	key, err = ExtractKeyFromURL("contributors/u1/book/tafsir.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "contributors/u1/book/tafsir.pdf", key)

	// leading slash dibersihkan
	key, err = ExtractKeyFromURL("/covers/a.webp")
	assert.NoError(t, err)
	assert.Equal(t, "covers/a.webp", key)

	_, err = ExtractKeyFromURL("")
	assert.Error(t, err)

	_, err = ExtractKeyFromURL("https://host-only.aliyuncs.com")
	assert.Error(t, err)
}

func TestResolveSignedURLGracefulOnNilService(t *testing.T) {
	// tanpa OSS terkonfigurasi, URL turun jadi kosong — bukan error
	assert.Equal(t, "", ResolveSignedURL(nil, "covers/a.webp", 0))
}
