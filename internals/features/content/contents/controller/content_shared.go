package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"fikrislam_backend/internals/configs"
	"fikrislam_backend/internals/features/content/contents/model"
	helperOSS "fikrislam_backend/internals/helpers/oss"
)

func signedTTL() time.Duration {
	return configs.SignedURLTTL()
}

func resolveOptional(svc *helperOSS.OSSService, key *string, ttl time.Duration) string {
	if key == nil || *key == "" {
		return ""
	}
	return helperOSS.ResolveSignedURL(svc, *key, ttl)
}

// cleanupContentObjects menghapus objek file & cover di OSS setelah row
// terhapus. Best-effort: kegagalan hanya dicatat, response tetap sukses.
func cleanupContentObjects(c *fiber.Ctx, svc *helperOSS.OSSService, m *model.ContentModel) {
	if svc == nil || m == nil {
		return
	}
	keys := []string{m.ContentFileURL}
	if m.ContentCoverImageURL != nil {
		keys = append(keys, *m.ContentCoverImageURL)
	}
	for _, k := range keys {
		if k == "" {
			continue
		}
		if err := svc.DeleteObject(c.UserContext(), k); err != nil {
			log.Printf("[WARN] gagal hapus objek OSS %s (path=%s): %v", k, c.Path(), err)
		}
	}
}
