package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupModel "collegeschedule_backend/internals/features/college/groups/model"
	teacherModel "collegeschedule_backend/internals/features/college/teachers/model"
	"collegeschedule_backend/internals/features/college/timetable/dto"
	"collegeschedule_backend/internals/features/college/timetable/service"
	helper "collegeschedule_backend/internals/helpers"
	"collegeschedule_backend/internals/helpers/dbtime"
)

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimetableController(db *gorm.DB, v *validator.Validate) *TimetableController {
	if v == nil {
		v = helper.Validator()
	}
	return &TimetableController{DB: db, Validate: v}
}

func (ctl *TimetableController) build(c *fiber.Ctx, q dto.TimetableQuery) (dto.Timetable, int, error) {
	ref := dbtime.NowInCollege()
	if strings.TrimSpace(q.Week) != "" {
		t, err := dbtime.ParseDate(q.Week)
		if err != nil {
			return dto.Timetable{}, http.StatusBadRequest, dto.ErrBadWeek
		}
		ref = t
	}
	tt, err := service.Build(helper.ReqCtx(c), ctl.DB, q, ref)
	switch {
	case errors.Is(err, service.ErrOwnerNotFound):
		return tt, http.StatusNotFound, err
	case err != nil:
		log.Printf("[ERROR] build timetable %s/%s: %v", q.Type, q.ID, err)
		return tt, http.StatusInternalServerError, errors.New("Failed to build timetable")
	}
	return tt, http.StatusOK, nil
}

// GET /api/public/timetable?type=group|teacher&id=&shift=&week=
func (ctl *TimetableController) Get(c *fiber.Ctx) error {
	var q dto.TimetableQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid query")
	}
	if err := ctl.Validate.Struct(&q); err != nil {
		return helper.ValidationError(c, err)
	}
	tt, status, err := ctl.build(c, q)
	if err != nil {
		return helper.JsonError(c, status, err.Error())
	}
	return helper.JsonOK(c, "OK", tt)
}

// GET /timetable renders the same data; without a valid query it shows only the pickers.
func (ctl *TimetableController) Page(c *fiber.Ctx) error {
	ctx := helper.ReqCtx(c)
	var (
		groups   []groupModel.GroupModel
		teachers []teacherModel.TeacherModel
	)
	if err := ctl.DB.WithContext(ctx).Order("group_name ASC").Find(&groups).Error; err != nil {
		log.Printf("[ERROR] timetable page groups: %v", err)
	}
	if err := ctl.DB.WithContext(ctx).Order("teacher_last_name ASC, teacher_first_name ASC").Find(&teachers).Error; err != nil {
		log.Printf("[ERROR] timetable page teachers: %v", err)
	}

	var q dto.TimetableQuery
	_ = c.QueryParser(&q)
	if q.Type == "" {
		q.Type = dto.TypeGroup
	}
	data := fiber.Map{
		"Title":    "Timetable",
		"Query":    q,
		"Groups":   groups,
		"Teachers": teachers,
	}
	if strings.TrimSpace(q.ID) != "" {
		if err := ctl.Validate.Struct(&q); err != nil {
			data["Banner"] = "Choose a group or a teacher"
		} else if tt, _, err := ctl.build(c, q); err != nil {
			data["Banner"] = err.Error()
		} else {
			data["Timetable"] = tt
		}
	}
	return c.Render("timetable", data, "layouts/main")
}
