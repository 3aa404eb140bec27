// file: internals/features/college/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/constants"
	lessonModel "collegeschedule_backend/internals/features/college/lessons/model"
	scheduleModel "collegeschedule_backend/internals/features/college/schedules/model"
	"collegeschedule_backend/internals/features/college/subjects/dto"
	"collegeschedule_backend/internals/features/college/subjects/model"
	helper "collegeschedule_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB, v *validator.Validate) *SubjectController {
	if v == nil {
		v = helper.Validator()
	}
	return &SubjectController{DB: db, Validate: v}
}

// GET /subjects?q=
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(helper.ReqCtx(c)).Model(&model.SubjectModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		s := "%" + strings.ToLower(q) + "%"
		db = db.Where("LOWER(subject_name) LIKE ? OR LOWER(subject_code) LIKE ?", s, s)
	}
	var rows []model.SubjectModel
	if err := db.Order("subject_code ASC, subject_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch subjects")
	}
	return helper.JsonOK(c, "OK", dto.NewSubjectResponses(rows))
}

// GET /subjects/:id
func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var m model.SubjectModel
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).First(&m, "subject_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.NewSubjectResponse(&m))
}

// POST /subjects
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).Create(&m).Error; err != nil {
		log.Printf("[ERROR] create subject: %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Subject created", dto.NewSubjectResponse(&m))
}

// PUT|PATCH /subjects/:id
func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(helper.ReqCtx(c))
	var m model.SubjectModel
	if err := db.First(&m, "subject_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Subject updated", dto.NewSubjectResponse(&m))
}

// DELETE /subjects/:id
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	err = ctl.DB.WithContext(helper.ReqCtx(c)).Transaction(func(tx *gorm.DB) error {
		var m model.SubjectModel
		if err := tx.First(&m, "subject_id = ?", id).Error; err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&lessonModel.LessonModel{}).Where("lesson_subject_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(http.StatusConflict, constants.StillReferenced("subject", "lessons"))
		}
		if err := tx.Model(&scheduleModel.ScheduleModel{}).Where("schedule_subject_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(http.StatusConflict, constants.StillReferenced("subject", "schedules"))
		}
		return tx.Delete(&m).Error
	})
	var fe *fiber.Error
	switch {
	case err == nil:
	case errors.As(err, &fe):
		return helper.JsonError(c, fe.Code, fe.Message)
	default:
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Subject deleted", fiber.Map{"id": id})
}
