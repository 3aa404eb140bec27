// file: internals/features/college/teachers/controller/teacher_controller.go
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
	lessonDTO "collegeschedule_backend/internals/features/college/lessons/dto"
	lessonModel "collegeschedule_backend/internals/features/college/lessons/model"
	lessonService "collegeschedule_backend/internals/features/college/lessons/service"
	scheduleModel "collegeschedule_backend/internals/features/college/schedules/model"
	scheduleService "collegeschedule_backend/internals/features/college/schedules/service"
	"collegeschedule_backend/internals/features/college/teachers/dto"
	"collegeschedule_backend/internals/features/college/teachers/model"
	helper "collegeschedule_backend/internals/helpers"
	"collegeschedule_backend/internals/helpers/dbtime"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	if v == nil {
		v = helper.Validator()
	}
	return &TeacherController{DB: db, Validate: v}
}

// GET /teachers?q&subject
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(helper.ReqCtx(c)).Model(&model.TeacherModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		s := "%" + strings.ToLower(q) + "%"
		db = db.Where(`LOWER(teacher_first_name) LIKE ? OR LOWER(teacher_last_name) LIKE ? OR teacher_iin LIKE ?`, s, s, s)
	}
	if subj := strings.TrimSpace(c.Query("subject")); subj != "" {
		// teacher_subjects is text[]; match any element case-insensitively
		db = db.Where("EXISTS (SELECT 1 FROM unnest(teacher_subjects) s WHERE LOWER(s) = LOWER(?))", subj)
	}

	var rows []model.TeacherModel
	if err := db.Order("teacher_last_name ASC, teacher_first_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch teachers")
	}
	return helper.JsonOK(c, "OK", dto.NewTeacherResponses(rows))
}

// GET /teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var m model.TeacherModel
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).First(&m, "teacher_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.NewTeacherResponse(&m))
}

// GET /teachers/:iin/schedule
func (ctl *TeacherController) Schedule(c *fiber.Ctx) error {
	iin := strings.TrimSpace(c.Params("iin"))
	ctx := helper.ReqCtx(c)

	var m model.TeacherModel
	if err := ctl.DB.WithContext(ctx).First(&m, "teacher_iin = ?", iin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Teacher not found")
		}
		return helper.WritePGError(c, err)
	}

	tid := m.TeacherID
	schedules, err := scheduleService.FindWithRefs(ctx, ctl.DB, scheduleService.ScheduleFilter{TeacherID: &tid})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch schedules")
	}

	from := dbtime.WeekStart(dbtime.NowInCollege())
	to := from.AddDate(0, 0, 6)
	lessons, err := lessonService.FindWithRefs(ctx, ctl.DB, lessonDTO.LessonFilter{TeacherID: &tid, StartDate: &from, EndDate: &to})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch lessons")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"teacher":   dto.NewTeacherResponse(&m),
		"schedules": schedules,
		"lessons":   lessons,
	})
}

// POST /teachers
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).Create(&m).Error; err != nil {
		log.Printf("[ERROR] create teacher: %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Teacher created", dto.NewTeacherResponse(&m))
}

// PUT|PATCH /teachers/:id
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(helper.ReqCtx(c))
	var m model.TeacherModel
	if err := db.First(&m, "teacher_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Teacher updated", dto.NewTeacherResponse(&m))
}

// DELETE /teachers/:id
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	err = ctl.DB.WithContext(helper.ReqCtx(c)).Transaction(func(tx *gorm.DB) error {
		var m model.TeacherModel
		if err := tx.First(&m, "teacher_id = ?", id).Error; err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&scheduleModel.ScheduleModel{}).Where("schedule_teacher_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(http.StatusConflict, constants.StillReferenced("teacher", "schedules"))
		}
		if err := tx.Model(&lessonModel.LessonModel{}).Where("lesson_teacher_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(http.StatusConflict, constants.StillReferenced("teacher", "lessons"))
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"id": id})
}
