package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classDTO "edulink_backend/internals/features/school/classes/dto"
	classModel "edulink_backend/internals/features/school/classes/model"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
)

type ClassController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewClassController(db *gorm.DB, v interface{ Struct(any) error }) *ClassController {
	return &ClassController{DB: db, Validator: v}
}

func (h *ClassController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	ent := classModel.ClassModel{
		ClassSchoolID:  schoolID,
		ClassName:      req.ClassName,
		ClassCreatedBy: &userID,
	}
	if err := h.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save class")
	}
	return helper.JsonCreated(c, "Class created", classDTO.NewClassResponse(ent))
}

func (h *ClassController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	q := h.DB.Model(&classModel.ClassModel{}).Where("class_school_id = ?", schoolID)
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var rows []classModel.ClassModel
	if err := q.Order("class_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load classes")
	}

	out := make([]classDTO.ClassResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, classDTO.NewClassResponse(r))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (h *ClassController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row classModel.ClassModel
	dberr := h.DB.Where("class_id = ? AND class_school_id = ?", id, schoolID).First(&row).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load class")
	}

	if req.ClassName != nil {
		row.ClassName = *req.ClassName
	}
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}
	return helper.JsonUpdated(c, "Class updated", classDTO.NewClassResponse(row))
}

func (h *ClassController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	res := h.DB.Where("class_id = ? AND class_school_id = ?", id, schoolID).
		Delete(&classModel.ClassModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonDeleted(c, "Class deleted", fiber.Map{"class_id": id})
}
