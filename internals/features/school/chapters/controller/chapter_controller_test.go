package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	chapterDTO "edulink_backend/internals/features/school/chapters/dto"
	helperAuth "edulink_backend/internals/helpers/auth"
	"edulink_backend/internals/helpers/resolve"
)

type stubLookup struct {
	names map[resolve.Ref]string
}

func (s stubLookup) LookupName(_ context.Context, ref resolve.Ref) (string, error) {
	if name, ok := s.names[ref]; ok {
		return name, nil
	}
	return "", gorm.ErrRecordNotFound
}

func newChapterTestApp(t *testing.T, schoolID, userID uuid.UUID, lookup resolve.NameLookup) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	h := &ChapterController{
		DB:        gdb,
		Validator: validator.New(),
		Resolver:  &resolve.Resolver{Lookup: lookup},
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		helperAuth.SetUserContext(c, helperAuth.UserContext{
			UserID:   userID,
			Role:     "admin",
			SchoolID: &schoolID,
		})
		return c.Next()
	})
	app.Post("/chapters", h.Create)
	app.Get("/chapters", h.List)

	return app, mock
}

// Creating a chapter stamps the caller's school and user onto the row, and
// the subsequent list comes back sorted by subject name then order index.
func TestChapterCreateThenList(t *testing.T) {
	schoolID := uuid.New()
	userID := uuid.New()
	subjectID := uuid.New()
	chapterID := uuid.New()

	lookup := stubLookup{names: map[resolve.Ref]string{
		{Kind: resolve.KindSubject, ID: subjectID}: "Mathematics",
	}}
	app, mock := newChapterTestApp(t, schoolID, userID, lookup)

	/* ----- create ----- */

	mock.ExpectQuery(`SELECT count\(\*\) FROM "subjects"`).
		WithArgs(subjectID, schoolID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "chapters"`).
		WithArgs(schoolID, subjectID, "Algebra Basics", nil, 1, userID, nil).
		WillReturnRows(sqlmock.NewRows([]string{"chapter_id", "chapter_created_at", "chapter_updated_at"}).
			AddRow(chapterID, time.Now(), time.Now()))
	mock.ExpectCommit()

	body := `{"subject_id":"` + subjectID.String() + `","chapter_name":"Algebra Basics","order_index":1}`
	req := httptest.NewRequest(http.MethodPost, "/chapters", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Success bool                       `json:"success"`
		Data    chapterDTO.ChapterResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.True(t, created.Success)
	assert.Equal(t, schoolID, created.Data.SchoolID)
	assert.Equal(t, subjectID, created.Data.SubjectID)
	assert.Equal(t, "Algebra Basics", created.Data.ChapterName)
	assert.Equal(t, 1, created.Data.OrderIndex)

	/* ----- list ----- */

	now := time.Now()
	secondID := uuid.New()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "chapters"`).
		WithArgs(schoolID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`FROM "chapters" LEFT JOIN subjects .+ ORDER BY subjects\.subject_name ASC, chapters\.chapter_order_index ASC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"chapter_id", "chapter_school_id", "chapter_subject_id",
			"chapter_name", "chapter_order_index", "chapter_created_at",
		}).
			AddRow(chapterID, schoolID, subjectID, "Algebra Basics", 1, now).
			AddRow(secondID, schoolID, subjectID, "Linear Equations", 2, now))

	listReq := httptest.NewRequest(http.MethodGet, "/chapters", nil)
	listResp, err := app.Test(listReq, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, listResp.StatusCode)

	var listed struct {
		Success bool                         `json:"success"`
		Data    []chapterDTO.ChapterResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&listed))
	require.Len(t, listed.Data, 2)

	// DB sort order is preserved and the new chapter is present with its
	// subject name denormalized
	assert.Equal(t, chapterID, listed.Data[0].ChapterID)
	assert.Equal(t, 1, listed.Data[0].OrderIndex)
	assert.Equal(t, "Mathematics", listed.Data[0].SubjectName)
	assert.Equal(t, secondID, listed.Data[1].ChapterID)
	assert.Equal(t, 2, listed.Data[1].OrderIndex)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// A subject outside the caller's school cannot be referenced.
func TestChapterCreateRejectsForeignSubject(t *testing.T) {
	schoolID := uuid.New()
	userID := uuid.New()
	subjectID := uuid.New()

	app, mock := newChapterTestApp(t, schoolID, userID, stubLookup{})

	mock.ExpectQuery(`SELECT count\(\*\) FROM "subjects"`).
		WithArgs(subjectID, schoolID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	body := `{"subject_id":"` + subjectID.String() + `","chapter_name":"Orphan","order_index":0}`
	req := httptest.NewRequest(http.MethodPost, "/chapters", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
