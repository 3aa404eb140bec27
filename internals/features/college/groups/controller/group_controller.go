// file: internals/features/college/groups/controller/group_controller.go
package controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"collegeschedule_backend/internals/constants"
	"collegeschedule_backend/internals/features/college/groups/dto"
	"collegeschedule_backend/internals/features/college/groups/model"
	lessonModel "collegeschedule_backend/internals/features/college/lessons/model"
	scheduleModel "collegeschedule_backend/internals/features/college/schedules/model"
	studentModel "collegeschedule_backend/internals/features/college/students/model"
	helper "collegeschedule_backend/internals/helpers"
)

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGroupController(db *gorm.DB, v *validator.Validate) *GroupController {
	if v == nil {
		v = helper.Validator()
	}
	return &GroupController{DB: db, Validate: v}
}

/* =======================================================
   READ
   ======================================================= */

// GET /groups?q=
func (ctl *GroupController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(helper.ReqCtx(c)).Model(&model.GroupModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		s := "%" + strings.ToLower(q) + "%"
		db = db.Where("LOWER(group_name) LIKE ? OR LOWER(COALESCE(group_code,'')) LIKE ?", s, s)
	}

	var rows []model.GroupModel
	if err := db.Order("group_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch groups")
	}
	return helper.JsonOK(c, "OK", dto.NewGroupResponses(rows))
}

// GET /groups/:id
func (ctl *GroupController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var m model.GroupModel
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).First(&m, "group_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.NewGroupResponse(&m))
}

/* =======================================================
   WRITE
   ======================================================= */

// POST /groups
func (ctl *GroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).Create(&m).Error; err != nil {
		log.Printf("[ERROR] create group: %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Group created", dto.NewGroupResponse(&m))
}

// PUT|PATCH /groups/:id
func (ctl *GroupController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(helper.ReqCtx(c))
	var m model.GroupModel
	if err := db.First(&m, "group_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	req.Apply(&m)
	if err := db.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Group updated", dto.NewGroupResponse(&m))
}

// DELETE /groups/:id
func (ctl *GroupController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	err = ctl.DB.WithContext(helper.ReqCtx(c)).Transaction(func(tx *gorm.DB) error {
		var m model.GroupModel
		if err := tx.First(&m, "group_id = ?", id).Error; err != nil {
			return err
		}
		guards := []struct {
			by    string
			model any
			col   string
		}{
			{"students", &studentModel.StudentModel{}, "student_group_id"},
			{"schedules", &scheduleModel.ScheduleModel{}, "schedule_group_id"},
			{"lessons", &lessonModel.LessonModel{}, "lesson_group_id"},
		}
		for _, g := range guards {
			var n int64
			if err := tx.Model(g.model).Where(g.col+" = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return fiber.NewError(http.StatusConflict, constants.StillReferenced("group", g.by))
			}
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Group deleted", fiber.Map{"id": id})
}
