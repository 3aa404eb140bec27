// file: internals/features/college/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/constants"
	lessonService "collegeschedule_backend/internals/features/college/lessons/service"
	"collegeschedule_backend/internals/features/college/schedules/dto"
	"collegeschedule_backend/internals/features/college/schedules/model"
	"collegeschedule_backend/internals/features/college/schedules/service"
	helper "collegeschedule_backend/internals/helpers"
)

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB, v *validator.Validate) *ScheduleController {
	if v == nil {
		v = helper.Validator()
	}
	return &ScheduleController{DB: db, Validate: v}
}

func (ctl *ScheduleController) respond(c *fiber.Ctx, f service.ScheduleFilter) error {
	out, err := service.FindWithRefs(helper.ReqCtx(c), ctl.DB, f)
	if err != nil {
		log.Printf("[ERROR] list schedules: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch schedules")
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /schedules?group_id&teacher_id&shift
func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	shift := c.QueryInt("shift", 0)
	if shift != 0 && !constants.IsValidShift(shift) {
		return helper.JsonError(c, http.StatusBadRequest, "shift must be 1 or 2")
	}
	return ctl.respond(c, service.ScheduleFilter{
		GroupID:   helper.QueryUUID(c, "group_id"),
		TeacherID: helper.QueryUUID(c, "teacher_id"),
		Shift:     shift,
	})
}

// GET /schedules/day/:day
func (ctl *ScheduleController) ByDay(c *fiber.Ctx) error {
	day, err := strconv.Atoi(c.Params("day"))
	if err != nil || !constants.IsValidWeekday(day) {
		return helper.JsonError(c, http.StatusBadRequest, "day must be 1..7")
	}
	return ctl.respond(c, service.ScheduleFilter{DayOfWeek: day, Shift: c.QueryInt("shift", 0)})
}

// GET /schedules/:id
func (ctl *ScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	ctx := helper.ReqCtx(c)
	var m model.ScheduleModel
	if err := ctl.DB.WithContext(ctx).First(&m, "schedule_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	out, err := service.WithRefs(ctx, ctl.DB, []model.ScheduleModel{m})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", out[0])
}

// POST /schedules
func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
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
	if err := lessonService.EnsureRefsExist(ctx, ctl.DB, m.ScheduleGroupID, m.ScheduleTeacherID, m.ScheduleSubjectID); err != nil {
		return writeErr(c, err)
	}
	if err := ctl.DB.WithContext(ctx).Create(&m).Error; err != nil {
		log.Printf("[ERROR] create schedule: %v", err)
		return helper.WritePGError(c, err)
	}
	out, err := service.WithRefs(ctx, ctl.DB, []model.ScheduleModel{m})
	if err != nil {
		return helper.JsonCreated(c, "Schedule created", dto.NewScheduleResponse(&m, nil))
	}
	return helper.JsonCreated(c, "Schedule created", out[0])
}

// PUT|PATCH /schedules/:id
func (ctl *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := helper.ReqCtx(c)
	db := ctl.DB.WithContext(ctx)
	var m model.ScheduleModel
	if err := db.First(&m, "schedule_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := lessonService.EnsureRefsExist(ctx, ctl.DB, m.ScheduleGroupID, m.ScheduleTeacherID, m.ScheduleSubjectID); err != nil {
		return writeErr(c, err)
	}
	if err := db.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Schedule updated", dto.NewScheduleResponse(&m, nil))
}

// DELETE /schedules/:id
func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(helper.ReqCtx(c)).Delete(&model.ScheduleModel{}, "schedule_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Schedule not found")
	}
	return helper.JsonDeleted(c, "Schedule deleted", fiber.Map{"id": id})
}

func writeErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.WritePGError(c, err)
}
