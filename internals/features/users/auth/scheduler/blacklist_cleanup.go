package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "edulink_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler reaps blacklist rows and refresh tokens
// whose expiry has passed. Runs hourly for the process lifetime.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now().UTC()

			res := db.Where("expires_at < ?", now).Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Println("[ERROR] blacklist cleanup:", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup: %d rows removed", res.RowsAffected)
			}

			if err := db.Where("expires_at < ?", now).
				Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
				log.Println("[ERROR] refresh token cleanup:", err)
			}
		}
	}()
}
