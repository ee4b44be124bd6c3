package seeds

import (
	"log"

	"gorm.io/gorm"

	"edulink_backend/internals/configs"
	schoolSeeds "edulink_backend/internals/seeds/schools"
	userSeeds "edulink_backend/internals/seeds/users"
)

// RunAllSeeds bootstraps the first tenant and its admin. Controlled by env so
// production boots skip it unless asked.
func RunAllSeeds(db *gorm.DB) {
	if configs.GetEnv("SEED_ON_BOOT", "false") != "true" {
		return
	}

	school, err := schoolSeeds.SeedDefaultSchool(db, configs.GetEnv("SEED_SCHOOL_NAME", "Demo School"))
	if err != nil {
		log.Println("[ERROR] seed school:", err)
		return
	}

	adminPassword := configs.GetEnv("SEED_ADMIN_PASSWORD", "")
	if adminPassword == "" {
		log.Println("[WARN] SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return
	}
	if err := userSeeds.SeedAdminUser(
		db,
		school.SchoolID,
		configs.GetEnv("SEED_ADMIN_NAME", "Administrator"),
		configs.GetEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
		adminPassword,
	); err != nil {
		log.Println("[ERROR] seed admin:", err)
	}
}
