// file: internals/features/college/time_slots/controller/time_slot_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/constants"
	lessonModel "collegeschedule_backend/internals/features/college/lessons/model"
	"collegeschedule_backend/internals/features/college/time_slots/dto"
	"collegeschedule_backend/internals/features/college/time_slots/model"
	helper "collegeschedule_backend/internals/helpers"
)

type TimeSlotController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimeSlotController(db *gorm.DB, v *validator.Validate) *TimeSlotController {
	if v == nil {
		v = helper.Validator()
	}
	return &TimeSlotController{DB: db, Validate: v}
}

// GET /time-slots?shift&is_active
func (ctl *TimeSlotController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(helper.ReqCtx(c)).Model(&model.TimeSlotModel{})

	if s := strings.TrimSpace(c.Query("shift")); s != "" {
		shift, err := strconv.Atoi(s)
		if err != nil || !constants.IsValidShift(shift) {
			return helper.JsonError(c, http.StatusBadRequest, "shift must be 1 or 2")
		}
		db = db.Where("time_slot_shift = ?", shift)
	}
	if s := strings.TrimSpace(c.Query("is_active")); s != "" {
		active, err := strconv.ParseBool(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "is_active must be a boolean")
		}
		db = db.Where("time_slot_is_active = ?", active)
	}

	var rows []model.TimeSlotModel
	if err := db.Order("time_slot_start_time ASC, time_slot_shift ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch time slots")
	}
	return helper.JsonOK(c, "OK", dto.NewTimeSlotResponses(rows))
}

// GET /time-slots/:id
func (ctl *TimeSlotController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var m model.TimeSlotModel
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).First(&m, "time_slot_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.NewTimeSlotResponse(&m))
}

// POST /time-slots
func (ctl *TimeSlotController) Create(c *fiber.Ctx) error {
	var req dto.CreateTimeSlotRequest
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
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).Create(&m).Error; err != nil {
		log.Printf("[ERROR] create time slot: %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Time slot created", dto.NewTimeSlotResponse(&m))
}

// PUT|PATCH /time-slots/:id
func (ctl *TimeSlotController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req dto.UpdateTimeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(helper.ReqCtx(c))
	var m model.TimeSlotModel
	if err := db.First(&m, "time_slot_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := db.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Time slot updated", dto.NewTimeSlotResponse(&m))
}

// DELETE /time-slots/:id: refused while any lesson uses the same start/end.
func (ctl *TimeSlotController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	err = ctl.DB.WithContext(helper.ReqCtx(c)).Transaction(func(tx *gorm.DB) error {
		var m model.TimeSlotModel
		if err := tx.First(&m, "time_slot_id = ?", id).Error; err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&lessonModel.LessonModel{}).
			Where("lesson_start_time = ? AND lesson_end_time = ?", m.TimeSlotStartTime, m.TimeSlotEndTime).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fiber.NewError(http.StatusConflict, constants.StillReferenced("time slot", "lessons"))
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
	return helper.JsonDeleted(c, "Time slot deleted", fiber.Map{"id": id})
}
