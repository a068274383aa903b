// internals/helpers/oss/oss_signed_url.go
package helper

import (
	"log"
	"time"
)

// ResolveSignedURL: ubah key/URL tersimpan jadi signed URL berbatas waktu.
// Gagal resolve TIDAK mematikan listing — kembalikan string kosong,
// pemanggil menampilkan "tautan tidak tersedia".
func ResolveSignedURL(svc *OSSService, urlOrKey string, ttl time.Duration) string {
	if svc == nil || urlOrKey == "" {
		return ""
	}
	key, err := ExtractKeyFromURL(urlOrKey)
	if err != nil {
		log.Printf("[OSS] extract key gagal: %v", err)
		return ""
	}
	signed, err := svc.SignedURL(key, ttl)
	if err != nil {
		log.Printf("[OSS] sign url gagal (key=%s): %v", key, err)
		return ""
	}
	return signed
}

// ResolveSignedURLs: versi banyak key sekaligus (urutan dipertahankan)
func ResolveSignedURLs(svc *OSSService, urlOrKeys []string, ttl time.Duration) []string {
	out := make([]string, len(urlOrKeys))
	for i, u := range urlOrKeys {
		out[i] = ResolveSignedURL(svc, u, ttl)
	}
	return out
}
