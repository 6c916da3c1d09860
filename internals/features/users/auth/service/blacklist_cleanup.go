package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "ktagkk_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanup menghapus permanen entry blacklist yang sudah
// lewat exp-nya, tiap interval. Jalan sebagai goroutine sampai proses mati.
func StartBlacklistCleanup(db *gorm.DB, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Unscoped().
				Where("expired_at < ?", time.Now()).
				Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Println("[ERROR] Cleanup blacklist gagal:", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("🧹 Cleanup blacklist: %d token kadaluarsa dihapus", res.RowsAffected)
			}
		}
	}()
}
