// file: internals/features/college/lessons/controller/lesson_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/features/college/lessons/dto"
	"collegeschedule_backend/internals/features/college/lessons/model"
	"collegeschedule_backend/internals/features/college/lessons/service"
	helper "collegeschedule_backend/internals/helpers"
	"collegeschedule_backend/internals/helpers/dbtime"
)

type LessonController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLessonController(db *gorm.DB, v *validator.Validate) *LessonController {
	if v == nil {
		v = helper.Validator()
	}
	return &LessonController{DB: db, Validate: v}
}

func writeErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.WritePGError(c, err)
}

/* =======================================================
   READ
   ======================================================= */

// GET /lessons?date|start_date&end_date&group_id&teacher_id&shift
func (ctl *LessonController) List(c *fiber.Ctx) error {
	var q dto.ListLessonsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid query")
	}
	f, err := q.ToFilter()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	out, err := service.FindWithRefs(helper.ReqCtx(c), ctl.DB, f)
	if err != nil {
		log.Printf("[ERROR] list lessons: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch lessons")
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /lessons/available: templates only.
func (ctl *LessonController) Available(c *fiber.Ctx) error {
	ctx := helper.ReqCtx(c)
	var rows []model.LessonModel
	if err := ctl.DB.WithContext(ctx).
		Where("lesson_date IS NULL").
		Order("lesson_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch lessons")
	}
	out, err := service.WithRefs(ctx, ctl.DB, rows)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch lessons")
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /lessons/date/:date?shift=
func (ctl *LessonController) ByDate(c *fiber.Ctx) error {
	d, err := dbtime.ParseDate(c.Params("date"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD")
	}
	f := dto.LessonFilter{Date: &d, Shift: c.QueryInt("shift", 0)}
	out, err := service.FindWithRefs(helper.ReqCtx(c), ctl.DB, f)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch lessons")
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /lessons/:id
func (ctl *LessonController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	ctx := helper.ReqCtx(c)
	var m model.LessonModel
	if err := ctl.DB.WithContext(ctx).First(&m, "lesson_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	out, err := service.WithRefs(ctx, ctl.DB, []model.LessonModel{m})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", out[0])
}

/* =======================================================
   WRITE
   ======================================================= */

// POST /lessons
func (ctl *LessonController) Create(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ctx := helper.ReqCtx(c)
	if err := service.EnsureRefsExist(ctx, ctl.DB, m.LessonGroupID, m.LessonTeacherID, m.LessonSubjectID); err != nil {
		return writeErr(c, err)
	}
	if err := ctl.DB.WithContext(ctx).Create(&m).Error; err != nil {
		log.Printf("[ERROR] create lesson: %v", err)
		return helper.WritePGError(c, err)
	}
	out, err := service.WithRefs(ctx, ctl.DB, []model.LessonModel{m})
	if err != nil {
		return helper.JsonCreated(c, "Lesson created", dto.NewLessonResponse(&m, nil))
	}
	return helper.JsonCreated(c, "Lesson created", out[0])
}

// PUT|PATCH /lessons/:id
func (ctl *LessonController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req dto.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := helper.ReqCtx(c)
	db := ctl.DB.WithContext(ctx)
	var m model.LessonModel
	if err := db.First(&m, "lesson_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := service.EnsureRefsExist(ctx, ctl.DB, m.LessonGroupID, m.LessonTeacherID, m.LessonSubjectID); err != nil {
		return writeErr(c, err)
	}
	if err := db.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	out, err := service.WithRefs(ctx, ctl.DB, []model.LessonModel{m})
	if err != nil {
		return helper.JsonUpdated(c, "Lesson updated", dto.NewLessonResponse(&m, nil))
	}
	return helper.JsonUpdated(c, "Lesson updated", out[0])
}

// DELETE /lessons/:id
func (ctl *LessonController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(helper.ReqCtx(c)).Delete(&model.LessonModel{}, "lesson_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Lesson not found")
	}
	return helper.JsonDeleted(c, "Lesson deleted", fiber.Map{"id": id})
}
