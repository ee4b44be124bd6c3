package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "edulink_backend/internals/features/users/auth/model"
	teacherDTO "edulink_backend/internals/features/users/teachers/dto"
	teacherModel "edulink_backend/internals/features/users/teachers/model"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
	"edulink_backend/internals/helpers/resolve"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
	Resolver  *resolve.Resolver
}

func NewTeacherController(db *gorm.DB, v interface{ Struct(any) error }) *TeacherController {
	return &TeacherController{DB: db, Validator: v, Resolver: resolve.NewResolver(db)}
}

/* =========================================================
   CREATE — makes the login account and the teacher record
========================================================= */

func (h *TeacherController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	var req teacherDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	password := req.Password
	if password == "" {
		password = uuid.NewString()
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	var created teacherModel.TeacherModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&authModel.UserModel{}).
			Where("lower(user_email) = ?", req.TeacherEmail).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Email already registered")
		}

		user := authModel.UserModel{
			UserName:     req.TeacherName,
			UserEmail:    req.TeacherEmail,
			UserPassword: string(hashed),
			UserRole:     "teacher",
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		created = teacherModel.TeacherModel{
			TeacherSchoolID:   &schoolID,
			TeacherUserID:     user.UserID,
			TeacherName:       req.TeacherName,
			TeacherEmail:      req.TeacherEmail,
			TeacherCode:       req.TeacherCode,
			TeacherClassIDs:   teacherDTO.ToStringArray(req.ClassIDs),
			TeacherSubjectIDs: teacherDTO.ToStringArray(req.SubjectIDs),
		}
		return tx.Create(&created).Error
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}

	return helper.JsonCreated(c, "Teacher created", teacherDTO.NewTeacherResponse(created))
}

/* =========================================================
   LIST — school-scoped, with class/subject names resolved
========================================================= */

func (h *TeacherController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	q := h.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_school_id = ?", schoolID)
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var rows []teacherModel.TeacherModel
	if err := q.Order("teacher_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load teachers")
	}

	// collect every class/subject reference across the page, resolve once
	var refs []resolve.Ref
	for _, t := range rows {
		for _, cid := range t.TeacherClassIDs {
			if id, perr := uuid.Parse(cid); perr == nil {
				refs = append(refs, resolve.Ref{Kind: resolve.KindClass, ID: id})
			}
		}
		for _, sid := range t.TeacherSubjectIDs {
			if id, perr := uuid.Parse(sid); perr == nil {
				refs = append(refs, resolve.Ref{Kind: resolve.KindSubject, ID: id})
			}
		}
	}
	resolved := h.Resolver.ResolveAll(c.UserContext(), refs)

	out := make([]teacherDTO.TeacherResponse, 0, len(rows))
	for _, t := range rows {
		resp := teacherDTO.NewTeacherResponse(t)
		for _, cid := range t.TeacherClassIDs {
			id, perr := uuid.Parse(cid)
			if perr != nil {
				resp.ClassNames = append(resp.ClassNames, resolve.Fallback(resolve.KindClass))
				continue
			}
			resp.ClassNames = append(resp.ClassNames, resolve.Name(resolved, resolve.KindClass, &id))
		}
		for _, sid := range t.TeacherSubjectIDs {
			id, perr := uuid.Parse(sid)
			if perr != nil {
				resp.SubjectNames = append(resp.SubjectNames, resolve.Fallback(resolve.KindSubject))
				continue
			}
			resp.SubjectNames = append(resp.SubjectNames, resolve.Name(resolved, resolve.KindSubject, &id))
		}
		out = append(out, resp)
	}

	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   GET / UPDATE / DELETE
========================================================= */

func (h *TeacherController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	var row teacherModel.TeacherModel
	dberr := h.DB.Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		First(&row).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load teacher")
	}
	return helper.JsonOK(c, "OK", teacherDTO.NewTeacherResponse(row))
}

func (h *TeacherController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	var req teacherDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row teacherModel.TeacherModel
	dberr := h.DB.Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		First(&row).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load teacher")
	}

	if req.TeacherName != nil {
		row.TeacherName = *req.TeacherName
	}
	if req.TeacherCode != nil {
		row.TeacherCode = *req.TeacherCode
	}
	if req.ClassIDs != nil {
		row.TeacherClassIDs = teacherDTO.ToStringArray(*req.ClassIDs)
	}
	if req.SubjectIDs != nil {
		row.TeacherSubjectIDs = teacherDTO.ToStringArray(*req.SubjectIDs)
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.JsonUpdated(c, "Teacher updated", teacherDTO.NewTeacherResponse(row))
}

func (h *TeacherController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	res := h.DB.Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
		Delete(&teacherModel.TeacherModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"teacher_id": id})
}
