package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "fikrislam_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler bersihkan token blacklist kadaluarsa tiap jam
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			n, err := authRepo.PurgeExpiredBlacklist(db)
			if err != nil {
				log.Printf("[ERROR] purge blacklist: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("🧹 Blacklist cleanup: %d token dihapus", n)
			}
		}
	}()
}
