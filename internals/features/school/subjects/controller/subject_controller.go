package controller

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "edulink_backend/internals/features/school/subjects/dto"
	subjectModel "edulink_backend/internals/features/school/subjects/model"
	helper "edulink_backend/internals/helpers"
	helperAuth "edulink_backend/internals/helpers/auth"
	helperOSS "edulink_backend/internals/helpers/oss"
	"edulink_backend/internals/helpers/resolve"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
	Resolver  *resolve.Resolver
}

func NewSubjectController(db *gorm.DB, v interface{ Struct(any) error }) *SubjectController {
	return &SubjectController{DB: db, Validator: v, Resolver: resolve.NewResolver(db)}
}

// pickImageFile: multipart field "image" with "file" as legacy fallback.
func pickImageFile(c *fiber.Ctx, names ...string) *multipart.FileHeader {
	for _, n := range names {
		if fh, err := c.FormFile(n); err == nil && fh != nil {
			return fh
		}
	}
	return nil
}

/* =========================================================
   CREATE — optional multipart image, stored as webp
========================================================= */

func (h *SubjectController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	ent := subjectModel.SubjectModel{
		SubjectSchoolID:    schoolID,
		SubjectName:        req.SubjectName,
		SubjectDescription: req.Description,
		SubjectClassIDs:    subjectDTO.ToStringArray(req.ClassIDs),
		SubjectCreatedBy:   &userID,
	}
	if err := h.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save subject")
	}

	// optional image upload; a failed upload leaves the subject without an
	// image rather than rolling the create back
	if fh := pickImageFile(c, "image", "file"); fh != nil {
		if svc, oerr := helperOSS.NewOSSServiceFromEnv(""); oerr == nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 45*time.Second)
			defer cancel()
			if url, uerr := svc.UploadImageAsWebP(ctx, "subjects", schoolID, fh); uerr == nil {
				ent.SubjectImageURL = &url
				if serr := h.DB.Model(&ent).
					Update("subject_image_url", url).Error; serr != nil {
					log.Println("[ERROR] persist subject image url:", serr)
				}
			} else {
				log.Println("[WARN] subject image upload:", uerr)
			}
		} else {
			log.Println("[WARN] OSS unavailable:", oerr)
		}
	}

	return helper.JsonCreated(c, "Subject created", subjectDTO.NewSubjectResponse(ent))
}

/* =========================================================
   LIST — ?class_id= narrows via the reference array
========================================================= */

func (h *SubjectController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_school_id = ?", schoolID)
	if classID := c.Query("class_id"); classID != "" {
		if _, perr := uuid.Parse(classID); perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		// array-contains on the class reference array
		q = q.Where("? = ANY(subject_class_ids)", classID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count subjects")
	}

	var rows []subjectModel.SubjectModel
	if err := q.Order("subject_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subjects")
	}

	var refs []resolve.Ref
	for _, s := range rows {
		for _, cid := range s.SubjectClassIDs {
			if id, perr := uuid.Parse(cid); perr == nil {
				refs = append(refs, resolve.Ref{Kind: resolve.KindClass, ID: id})
			}
		}
	}
	resolved := h.Resolver.ResolveAll(c.UserContext(), refs)

	out := make([]subjectDTO.SubjectResponse, 0, len(rows))
	for _, s := range rows {
		resp := subjectDTO.NewSubjectResponse(s)
		for _, cid := range s.SubjectClassIDs {
			id, perr := uuid.Parse(cid)
			if perr != nil {
				resp.ClassNames = append(resp.ClassNames, resolve.Fallback(resolve.KindClass))
				continue
			}
			resp.ClassNames = append(resp.ClassNames, resolve.Name(resolved, resolve.KindClass, &id))
		}
		out = append(out, resp)
	}

	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   UPDATE / DELETE
========================================================= */

func (h *SubjectController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var row subjectModel.SubjectModel
	dberr := h.DB.Where("subject_id = ? AND subject_school_id = ?", id, schoolID).First(&row).Error
	if errors.Is(dberr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	if dberr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subject")
	}

	if req.SubjectName != nil {
		row.SubjectName = *req.SubjectName
	}
	if req.Description != nil {
		row.SubjectDescription = req.Description
	}
	if req.ClassIDs != nil {
		row.SubjectClassIDs = subjectDTO.ToStringArray(*req.ClassIDs)
	}

	if fh := pickImageFile(c, "image", "file"); fh != nil {
		if svc, oerr := helperOSS.NewOSSServiceFromEnv(""); oerr == nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 45*time.Second)
			defer cancel()
			if url, uerr := svc.UploadImageAsWebP(ctx, "subjects", schoolID, fh); uerr == nil {
				row.SubjectImageURL = &url
			} else {
				log.Println("[WARN] subject image upload:", uerr)
			}
		}
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.JsonUpdated(c, "Subject updated", subjectDTO.NewSubjectResponse(row))
}

func (h *SubjectController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	res := h.DB.Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		Delete(&subjectModel.SubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.JsonDeleted(c, "Subject deleted", fiber.Map{"subject_id": id})
}
