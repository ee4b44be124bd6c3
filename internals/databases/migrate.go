package databases

import (
	"log"

	assignmentModel "edulink_backend/internals/features/school/assignments/model"
	chapterModel "edulink_backend/internals/features/school/chapters/model"
	classModel "edulink_backend/internals/features/school/classes/model"
	contentModel "edulink_backend/internals/features/school/contents/model"
	diaryModel "edulink_backend/internals/features/school/diary/model"
	lessonModel "edulink_backend/internals/features/school/lessons/model"
	questionModel "edulink_backend/internals/features/school/questionbank/model"
	schoolModel "edulink_backend/internals/features/school/schools/model"
	subjectModel "edulink_backend/internals/features/school/subjects/model"
	authModel "edulink_backend/internals/features/users/auth/model"
	teacherModel "edulink_backend/internals/features/users/teachers/model"
)

// AutoMigrate keeps the schema in sync on boot. Parents migrate before the
// tables that reference them.
func AutoMigrate() {
	if DB == nil {
		log.Fatal("[FATAL] AutoMigrate called before ConnectDB")
	}

	err := DB.AutoMigrate(
		&schoolModel.SchoolModel{},
		&authModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&authModel.RefreshTokenModel{},
		&teacherModel.TeacherModel{},

		&classModel.ClassModel{},
		&subjectModel.SubjectModel{},
		&chapterModel.ChapterModel{},
		&lessonModel.LessonModel{},

		&assignmentModel.AssignmentModel{},
		&assignmentModel.SubmissionModel{},

		&diaryModel.HomeworkModel{},
		&diaryModel.RemarkModel{},

		&contentModel.ContentModel{},
		&questionModel.QuestionModel{},
	)
	if err != nil {
		log.Fatalf("[FATAL] migration failed: %v", err)
	}
	log.Println("[INFO] database migration complete")
}
