// file: internals/features/college/statistics/controller/statistics_controller.go
package controller

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonService "collegeschedule_backend/internals/features/college/lessons/service"
	"collegeschedule_backend/internals/features/college/statistics/dto"
	"collegeschedule_backend/internals/features/college/statistics/service"
	helper "collegeschedule_backend/internals/helpers"
	"collegeschedule_backend/internals/helpers/dbtime"
)

type StatisticsController struct {
	DB *gorm.DB
}

func NewStatisticsController(db *gorm.DB) *StatisticsController {
	return &StatisticsController{DB: db}
}

// GET /statistics/lessons?start_date&end_date&group_id&teacher_id
func (ctl *StatisticsController) Lessons(c *fiber.Ctx) error {
	var q dto.StatisticsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid query")
	}
	f, err := q.ToFilter(dbtime.NowInCollege())
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	stats, err := service.Compute(helper.ReqCtx(c), ctl.DB, f)
	if err != nil {
		log.Printf("[ERROR] lesson statistics: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to compute statistics")
	}
	return helper.JsonOK(c, "OK", stats)
}

// GET /statistics/lessons/export: same filters, XLSX download.
func (ctl *StatisticsController) Export(c *fiber.Ctx) error {
	var q dto.StatisticsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid query")
	}
	f, err := q.ToFilter(dbtime.NowInCollege())
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ctx := helper.ReqCtx(c)
	stats, err := service.Compute(ctx, ctl.DB, f)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to compute statistics")
	}
	lessons, err := lessonService.FindWithRefs(ctx, ctl.DB, f)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to fetch lessons")
	}

	wb, err := service.BuildLessonWorkbook(stats, lessons)
	if err != nil {
		log.Printf("[ERROR] build workbook: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to build workbook")
	}
	defer wb.Close()

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to write workbook")
	}
	c.Attachment(dto.ExportFileName(stats.Period))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
