// file: internals/features/college/students/controller/student_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupDTO "collegeschedule_backend/internals/features/college/groups/dto"
	groupModel "collegeschedule_backend/internals/features/college/groups/model"
	lessonDTO "collegeschedule_backend/internals/features/college/lessons/dto"
	lessonService "collegeschedule_backend/internals/features/college/lessons/service"
	scheduleService "collegeschedule_backend/internals/features/college/schedules/service"
	"collegeschedule_backend/internals/features/college/students/dto"
	"collegeschedule_backend/internals/features/college/students/model"
	helper "collegeschedule_backend/internals/helpers"
	"collegeschedule_backend/internals/helpers/dbtime"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	if v == nil {
		v = helper.Validator()
	}
	return &StudentController{DB: db, Validate: v}
}

func (ctl *StudentController) groupsByID(c *fiber.Ctx, ids []uuid.UUID) (map[uuid.UUID]groupDTO.GroupResponse, error) {
	out := map[uuid.UUID]groupDTO.GroupResponse{}
	if len(ids) == 0 {
		return out, nil
	}
	var gs []groupModel.GroupModel
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).Where("group_id IN ?", ids).Find(&gs).Error; err != nil {
		return nil, err
	}
	for i := range gs {
		out[gs[i].GroupID] = groupDTO.NewGroupResponse(&gs[i])
	}
	return out, nil
}

func (ctl *StudentController) groupExists(c *fiber.Ctx, id uuid.UUID) error {
	var n int64
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).Model(&groupModel.GroupModel{}).
		Where("group_id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fiber.NewError(http.StatusBadRequest, "group not found")
	}
	return nil
}

func (ctl *StudentController) one(c *fiber.Ctx, m *model.StudentModel) (dto.StudentResponse, error) {
	groups, err := ctl.groupsByID(c, []uuid.UUID{m.StudentGroupID})
	if err != nil {
		return dto.StudentResponse{}, err
	}
	var g *groupDTO.GroupResponse
	if v, ok := groups[m.StudentGroupID]; ok {
		g = &v
	}
	return dto.NewStudentResponse(m, g), nil
}

/* =======================================================
   READ
   ======================================================= */

// GET /students?group_id&q&page&per_page
func (ctl *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.WithContext(helper.ReqCtx(c)).Model(&model.StudentModel{})
	if gid := helper.QueryUUID(c, "group_id"); gid != nil {
		db = db.Where("student_group_id = ?", *gid)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		s := "%" + strings.ToLower(q) + "%"
		db = db.Where(`LOWER(student_first_name) LIKE ? OR LOWER(student_last_name) LIKE ? OR student_iin LIKE ?`, s, s, s)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to count students")
	}

	var rows []model.StudentModel
	if err := db.Order("student_last_name ASC, student_first_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch students")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.StudentGroupID)
	}
	groups, err := ctl.groupsByID(c, ids)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch groups")
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for i := range rows {
		var g *groupDTO.GroupResponse
		if v, ok := groups[rows[i].StudentGroupID]; ok {
			g = &v
		}
		out = append(out, dto.NewStudentResponse(&rows[i], g))
	}

	pg := helper.BuildPagination(total, p, len(out))
	return helper.JsonList(c, "OK", out, &pg)
}

// GET /students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var m model.StudentModel
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).First(&m, "student_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	out, err := ctl.one(c, &m)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /students/:iin/schedule: weekly schedule of the student's group plus this week's lessons.
func (ctl *StudentController) Schedule(c *fiber.Ctx) error {
	iin := strings.TrimSpace(c.Params("iin"))
	ctx := helper.ReqCtx(c)

	var m model.StudentModel
	if err := ctl.DB.WithContext(ctx).First(&m, "student_iin = ?", iin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Student not found")
		}
		return helper.WritePGError(c, err)
	}
	student, err := ctl.one(c, &m)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	gid := m.StudentGroupID
	schedules, err := scheduleService.FindWithRefs(ctx, ctl.DB, scheduleService.ScheduleFilter{GroupID: &gid})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch schedules")
	}

	from := dbtime.WeekStart(dbtime.NowInCollege())
	to := from.AddDate(0, 0, 6)
	lessons, err := lessonService.FindWithRefs(ctx, ctl.DB, lessonDTO.LessonFilter{GroupID: &gid, StartDate: &from, EndDate: &to})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch lessons")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"student":   student,
		"schedules": schedules,
		"lessons":   lessons,
	})
}

/* =======================================================
   WRITE
   ======================================================= */

// POST /students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.groupExists(c, m.StudentGroupID); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(helper.ReqCtx(c)).Create(&m).Error; err != nil {
		log.Printf("[ERROR] create student: %v", err)
		return helper.WritePGError(c, err)
	}
	out, _ := ctl.one(c, &m)
	return helper.JsonCreated(c, "Student created", out)
}

// PUT|PATCH /students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	db := ctl.DB.WithContext(helper.ReqCtx(c))
	var m model.StudentModel
	if err := db.First(&m, "student_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	req.Apply(&m)
	if req.GroupID != nil {
		if err := ctl.groupExists(c, m.StudentGroupID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if err := db.Save(&m).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	out, _ := ctl.one(c, &m)
	return helper.JsonUpdated(c, "Student updated", out)
}

// DELETE /students/:id
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(helper.ReqCtx(c)).Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Student not found")
	}
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"id": id})
}
