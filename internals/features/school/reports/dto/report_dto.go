package dto

import "github.com/google/uuid"

// ChapterPerformance aggregates one chapter's activity for the reports page.
type ChapterPerformance struct {
	ChapterID   uuid.UUID `json:"chapter_id"`
	ChapterName string    `json:"chapter_name"`
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name"`

	LessonCount     int64 `json:"lesson_count"`
	AssignmentCount int64 `json:"assignment_count"`
	SubmissionCount int64 `json:"submission_count"`
	GradedCount     int64 `json:"graded_count"`
	PendingCount    int64 `json:"pending_count"`
}

type SchoolOverview struct {
	ClassCount      int64 `json:"class_count"`
	SubjectCount    int64 `json:"subject_count"`
	TeacherCount    int64 `json:"teacher_count"`
	AssignmentCount int64 `json:"assignment_count"`
	ContentCount    int64 `json:"content_count"`
}
