package users

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "edulink_backend/internals/features/users/auth/model"
)

// SeedAdminUser creates the first admin of a school if the email is not
// taken. The password arrives from env, never from source.
func SeedAdminUser(db *gorm.DB, schoolID uuid.UUID, name, email, password string) error {
	var count int64
	if err := db.Model(&authModel.UserModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := authModel.UserModel{
		UserSchoolID: &schoolID,
		UserName:     name,
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     "admin",
		UserIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("[SEED] created admin user %s", admin.UserEmail)
	return nil
}
