package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edulink_backend/internals/constants"
	assignmentRoute "edulink_backend/internals/features/school/assignments/route"
	chapterRoute "edulink_backend/internals/features/school/chapters/route"
	classRoute "edulink_backend/internals/features/school/classes/route"
	contentRoute "edulink_backend/internals/features/school/contents/route"
	diaryRoute "edulink_backend/internals/features/school/diary/route"
	lessonRoute "edulink_backend/internals/features/school/lessons/route"
	questionRoute "edulink_backend/internals/features/school/questionbank/route"
	reportRoute "edulink_backend/internals/features/school/reports/route"
	subjectRoute "edulink_backend/internals/features/school/subjects/route"
	authRoute "edulink_backend/internals/features/users/auth/route"
	teacherRoute "edulink_backend/internals/features/users/teachers/route"
	authMiddleware "edulink_backend/internals/middlewares/auth"
)

// SetupRoutes wires the whole HTTP surface.
//
//	/api/auth  public auth endpoints
//	/api       authenticated, any resolved role (planner proxy lives here)
//	/api/u     staff pages (teacher and admin)
//	/api/t     teacher-owned writes
//	/api/a     admin-only management
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	staff := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("staff pages"), constants.StaffRoles...),
	)

	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(db),
	)

	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
	)

	log.Println("[INFO] Setting up school feature routes...")
	classRoute.ClassRoutes(staff, admin, db)
	subjectRoute.SubjectRoutes(staff, admin, db)
	chapterRoute.ChapterRoutes(staff, admin, db)
	lessonRoute.LessonRoutes(staff, db)
	lessonRoute.PlannerRoutes(api, db)
	assignmentRoute.AssignmentRoutes(staff, teacher, db)
	diaryRoute.DiaryRoutes(staff, teacher, db)
	contentRoute.ContentRoutes(staff, teacher, db)
	questionRoute.QuestionBankRoutes(staff, db)
	reportRoute.ReportRoutes(staff, db)

	log.Println("[INFO] Setting up admin user routes...")
	teacherRoute.TeacherAdminRoutes(admin, db)
}
