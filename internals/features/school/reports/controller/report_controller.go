package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "edulink_backend/internals/features/school/assignments/model"
	chapterModel "edulink_backend/internals/features/school/chapters/model"
	classModel "edulink_backend/internals/features/school/classes/model"
	contentModel "edulink_backend/internals/features/school/contents/model"
	lessonModel "edulink_backend/internals/features/school/lessons/model"
	reportDTO "edulink_backend/internals/features/school/reports/dto"
	subjectModel "edulink_backend/internals/features/school/subjects/model"
	teacherModel "edulink_backend/internals/features/users/teachers/model"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
	"edulink_backend/internals/helpers/resolve"
)

type ReportController struct {
	DB       *gorm.DB
	Resolver *resolve.Resolver
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Resolver: resolve.NewResolver(db)}
}

// ChapterPerformance lists every chapter of the school (optionally one
// subject) with its lesson, assignment, and submission counts.
func (h *ReportController) ChapterPerformance(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	q := h.DB.Model(&chapterModel.ChapterModel{}).
		Where("chapter_school_id = ?", schoolID)
	if subjectID := c.Query("subject_id"); subjectID != "" {
		if _, perr := uuid.Parse(subjectID); perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		q = q.Where("chapter_subject_id = ?", subjectID)
	}

	var chapters []chapterModel.ChapterModel
	if err := q.Order("chapter_order_index ASC").Find(&chapters).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load chapters")
	}
	if len(chapters) == 0 {
		return helper.JsonOK(c, "OK", []reportDTO.ChapterPerformance{})
	}

	chapterIDs := make([]uuid.UUID, 0, len(chapters))
	for _, ch := range chapters {
		chapterIDs = append(chapterIDs, ch.ChapterID)
	}

	type countRow struct {
		ChapterID uuid.UUID `gorm:"column:chapter_id"`
		N         int64     `gorm:"column:n"`
	}
	collect := func(rows []countRow) map[uuid.UUID]int64 {
		m := make(map[uuid.UUID]int64, len(rows))
		for _, r := range rows {
			m[r.ChapterID] = r.N
		}
		return m
	}

	var lessonRows []countRow
	if err := h.DB.Model(&lessonModel.LessonModel{}).
		Select("lesson_chapter_id AS chapter_id, COUNT(*) AS n").
		Where("lesson_chapter_id IN ?", chapterIDs).
		Group("lesson_chapter_id").
		Scan(&lessonRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count lessons")
	}

	var assignmentRows []countRow
	if err := h.DB.Model(&assignmentModel.AssignmentModel{}).
		Select("assignment_chapter_id AS chapter_id, COUNT(*) AS n").
		Where("assignment_chapter_id IN ?", chapterIDs).
		Group("assignment_chapter_id").
		Scan(&assignmentRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count assignments")
	}

	type submissionCountRow struct {
		ChapterID uuid.UUID `gorm:"column:chapter_id"`
		N         int64     `gorm:"column:n"`
		Graded    int64     `gorm:"column:graded"`
	}
	var submissionRows []submissionCountRow
	if err := h.DB.Model(&assignmentModel.SubmissionModel{}).
		Select("assignments.assignment_chapter_id AS chapter_id, COUNT(*) AS n, "+
			"COUNT(*) FILTER (WHERE submission_status = ?) AS graded", assignmentModel.SubmissionStatusGraded).
		Joins("JOIN assignments ON assignments.assignment_id = assignment_submitted.submission_assignment_id").
		Where("assignments.assignment_chapter_id IN ?", chapterIDs).
		Group("assignments.assignment_chapter_id").
		Scan(&submissionRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}

	lessonCounts := collect(lessonRows)
	assignmentCounts := collect(assignmentRows)
	submissionCounts := make(map[uuid.UUID]int64, len(submissionRows))
	gradedCounts := make(map[uuid.UUID]int64, len(submissionRows))
	for _, r := range submissionRows {
		submissionCounts[r.ChapterID] = r.N
		gradedCounts[r.ChapterID] = r.Graded
	}

	refs := make([]resolve.Ref, 0, len(chapters))
	for _, ch := range chapters {
		refs = append(refs, resolve.Ref{Kind: resolve.KindSubject, ID: ch.ChapterSubjectID})
	}
	resolved := h.Resolver.ResolveAll(c.UserContext(), refs)

	out := make([]reportDTO.ChapterPerformance, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, reportDTO.ChapterPerformance{
			ChapterID:       ch.ChapterID,
			ChapterName:     ch.ChapterName,
			SubjectID:       ch.ChapterSubjectID,
			SubjectName:     resolve.Name(resolved, resolve.KindSubject, &ch.ChapterSubjectID),
			LessonCount:     lessonCounts[ch.ChapterID],
			AssignmentCount: assignmentCounts[ch.ChapterID],
			SubmissionCount: submissionCounts[ch.ChapterID],
			GradedCount:     gradedCounts[ch.ChapterID],
			PendingCount:    submissionCounts[ch.ChapterID] - gradedCounts[ch.ChapterID],
		})
	}
	return helper.JsonOK(c, "OK", out)
}

// Overview returns the headline numbers shown on the reports landing page.
func (h *ReportController) Overview(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	var out reportDTO.SchoolOverview
	counts := []struct {
		model any
		where string
		dst   *int64
	}{
		{&classModel.ClassModel{}, "class_school_id = ?", &out.ClassCount},
		{&subjectModel.SubjectModel{}, "subject_school_id = ?", &out.SubjectCount},
		{&teacherModel.TeacherModel{}, "teacher_school_id = ?", &out.TeacherCount},
		{&assignmentModel.AssignmentModel{}, "assignment_school_id = ?", &out.AssignmentCount},
		{&contentModel.ContentModel{}, "content_school_id = ?", &out.ContentCount},
	}
	for _, cnt := range counts {
		if err := h.DB.Model(cnt.model).Where(cnt.where, schoolID).Count(cnt.dst).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build overview")
		}
	}
	return helper.JsonOK(c, "OK", out)
}
