package schools

import (
	"log"

	"gorm.io/gorm"

	schoolModel "edulink_backend/internals/features/school/schools/model"
)

// SeedDefaultSchool inserts the bootstrap tenant if no school exists yet and
// returns it. Idempotent on school name.
func SeedDefaultSchool(db *gorm.DB, name string) (*schoolModel.SchoolModel, error) {
	var existing schoolModel.SchoolModel
	err := db.Where("school_name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	school := schoolModel.SchoolModel{SchoolName: name}
	if err := db.Create(&school).Error; err != nil {
		return nil, err
	}
	log.Printf("[SEED] created school %q (%s)", school.SchoolName, school.SchoolID)
	return &school, nil
}
