package controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"collegeschedule_backend/internals/constants"
	"collegeschedule_backend/internals/features/board/dto"
	"collegeschedule_backend/internals/features/board/engine"
	"collegeschedule_backend/internals/features/board/model"
	statsDTO "collegeschedule_backend/internals/features/college/statistics/dto"
	authService "collegeschedule_backend/internals/features/users/auth/service"
	helper "collegeschedule_backend/internals/helpers"
	"collegeschedule_backend/internals/helpers/dbtime"
	"collegeschedule_backend/internals/helpers/flash"
)

const boardPath = "/admin/board"

// HistorySource is the read side used by the history page.
type HistorySource interface {
	Statistics(ctx context.Context, q model.LessonQuery) (statsDTO.LessonStatistics, error)
	Lessons(ctx context.Context, q model.LessonQuery) ([]model.LessonRecord, error)
}

type BoardController struct {
	Boards        *engine.Boards
	Toasts        flash.Store
	HistorySource HistorySource
	Validate      *validator.Validate
}

func NewBoardController(boards *engine.Boards, toasts flash.Store, history HistorySource, v *validator.Validate) *BoardController {
	if v == nil {
		v = helper.Validator()
	}
	return &BoardController{Boards: boards, Toasts: toasts, HistorySource: history, Validate: v}
}

/* =========================================================
   Helpers
   ========================================================= */

func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) ||
		c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

func owner(c *fiber.Ctx) string {
	if sess, ok := authService.FromCtx(c); ok {
		return sess.Username
	}
	return ""
}

func (bc *BoardController) board(c *fiber.Ctx) *engine.Board {
	b := bc.Boards.Get(owner(c))
	_ = b.EnsureLoaded(helper.ReqCtx(c)) // failures land in the banner
	return b
}

func (bc *BoardController) toasts(c *fiber.Ctx) []flash.Toast {
	list, err := bc.Toasts.List(helper.ReqCtx(c), owner(c))
	if err != nil {
		log.Printf("[WARN] list toasts: %v", err)
	}
	if list == nil {
		list = []flash.Toast{}
	}
	return list
}

func statusFor(err error) int {
	var apiErr *model.APIError
	switch {
	case errors.Is(err, engine.ErrDuplicate):
		return fiber.StatusConflict
	case errors.Is(err, engine.ErrUnknownLesson):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrTimeout):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, model.ErrUnreachable):
		return fiber.StatusBadGateway
	case errors.As(err, &apiErr):
		if apiErr.Status >= http.StatusInternalServerError {
			return fiber.StatusBadGateway
		}
		return apiErr.Status
	}
	return fiber.StatusBadRequest
}

// isBoardRefusal is true for errors the board raises before calling the backend;
// those carry no toast of their own.
func isBoardRefusal(err error) bool {
	return errors.Is(err, engine.ErrUnknownLesson) ||
		errors.Is(err, engine.ErrNotTemplate) ||
		errors.Is(err, engine.ErrEmptyEdit)
}

// done answers an action: JSON state for API callers, a redirect back to the board for forms.
func (bc *BoardController) done(c *fiber.Ctx, b *engine.Board, err error) error {
	if wantsJSON(c) {
		if err != nil {
			return helper.JsonError(c, statusFor(err), engine.Describe(err))
		}
		return helper.JsonOK(c, "OK", fiber.Map{"board": b.Snapshot(), "toasts": bc.toasts(c)})
	}
	return c.Redirect(boardPath, fiber.StatusSeeOther)
}

/* =========================================================
   Pages
   ========================================================= */

// GET /admin/board?weekday=&shift=
func (bc *BoardController) Page(c *fiber.Ctx) error {
	var q dto.ViewQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	if err := bc.Validate.Struct(&q); err != nil {
		return helper.ValidationError(c, err)
	}
	// every page load re-reads lessons; failures land in the banner
	b := bc.Boards.Get(owner(c))
	cur := b.Snapshot()
	wd, sh := q.Weekday, q.Shift
	if wd == 0 {
		wd = cur.Weekday
	}
	if sh == 0 {
		sh = cur.Shift
	}
	_ = b.Open(helper.ReqCtx(c), wd, sh)

	weekdays := make([]fiber.Map, 0, len(constants.BoardWeekdays))
	for _, d := range constants.BoardWeekdays {
		weekdays = append(weekdays, fiber.Map{"Value": d, "Name": constants.WeekdayName(d)})
	}
	shifts := make([]fiber.Map, 0, len(constants.Shifts))
	for _, s := range constants.Shifts {
		shifts = append(shifts, fiber.Map{"Value": s, "Name": constants.ShiftName(s)})
	}

	return c.Render("board", fiber.Map{
		"Title":    "Schedule board",
		"Username": owner(c),
		"Board":    b.Snapshot(),
		"Toasts":   bc.toasts(c),
		"Weekdays": weekdays,
		"Shifts":   shifts,
	}, "layouts/main")
}

// GET /admin/board/state
func (bc *BoardController) State(c *fiber.Ctx) error {
	b := bc.Boards.Get(owner(c))
	_ = b.Refresh(helper.ReqCtx(c))
	return helper.JsonOK(c, "OK", fiber.Map{"board": b.Snapshot(), "toasts": bc.toasts(c)})
}

// POST /admin/board/reload
func (bc *BoardController) Reload(c *fiber.Ctx) error {
	b := bc.Boards.Get(owner(c))
	return bc.done(c, b, b.Load(helper.ReqCtx(c)))
}

/* =========================================================
   Actions
   ========================================================= */

// POST /admin/board/select/:id
func (bc *BoardController) Select(c *fiber.Ctx) error {
	b := bc.board(c)
	_, err := b.Select(c.Params("id"))
	if err != nil && !wantsJSON(c) {
		engine.FlashNotifier{Store: bc.Toasts, Owner: owner(c)}.
			Notify(helper.ReqCtx(c), flash.LevelError, engine.Describe(err))
	}
	return bc.done(c, b, err)
}

// POST /admin/board/cancel
func (bc *BoardController) Cancel(c *fiber.Ctx) error {
	b := bc.board(c)
	b.Cancel()
	return bc.done(c, b, nil)
}

// POST /admin/board/assign/:slotId
func (bc *BoardController) Assign(c *fiber.Ctx) error {
	b := bc.board(c)
	return bc.done(c, b, b.Assign(helper.ReqCtx(c), c.Params("slotId")))
}

// POST /admin/board/unassign/:id
func (bc *BoardController) Unassign(c *fiber.Ctx) error {
	b := bc.board(c)
	return bc.done(c, b, b.Unassign(helper.ReqCtx(c), c.Params("id")))
}

// POST /admin/board/templates
func (bc *BoardController) CreateTemplate(c *fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	b := bc.board(c)
	if err := bc.Validate.Struct(&req); err != nil {
		if wantsJSON(c) {
			return helper.ValidationError(c, err)
		}
		engine.FlashNotifier{Store: bc.Toasts, Owner: owner(c)}.
			Notify(helper.ReqCtx(c), flash.LevelError, "Group, teacher, subject and room are required")
		return c.Redirect(boardPath, fiber.StatusSeeOther)
	}
	return bc.done(c, b, b.CreateTemplate(helper.ReqCtx(c), req.ToInput()))
}

// POST /admin/board/lessons/:id
func (bc *BoardController) UpdateLesson(c *fiber.Ctx) error {
	var req dto.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	b := bc.board(c)
	if err := bc.Validate.Struct(&req); err != nil {
		if wantsJSON(c) {
			return helper.ValidationError(c, err)
		}
		engine.FlashNotifier{Store: bc.Toasts, Owner: owner(c)}.
			Notify(helper.ReqCtx(c), flash.LevelError, "Group, teacher and subject must be picked from the lists")
		return c.Redirect(boardPath, fiber.StatusSeeOther)
	}
	err := b.EditLesson(helper.ReqCtx(c), c.Params("id"), req.ToPatch())
	if isBoardRefusal(err) && !wantsJSON(c) {
		engine.FlashNotifier{Store: bc.Toasts, Owner: owner(c)}.
			Notify(helper.ReqCtx(c), flash.LevelError, engine.Describe(err))
	}
	return bc.done(c, b, err)
}

// POST /admin/board/templates/:id/delete
func (bc *BoardController) DeleteTemplate(c *fiber.Ctx) error {
	b := bc.board(c)
	err := b.DeleteTemplate(helper.ReqCtx(c), c.Params("id"))
	if isBoardRefusal(err) && !wantsJSON(c) {
		engine.FlashNotifier{Store: bc.Toasts, Owner: owner(c)}.
			Notify(helper.ReqCtx(c), flash.LevelError, engine.Describe(err))
	}
	return bc.done(c, b, err)
}

// POST /admin/board/toasts/:id/dismiss
func (bc *BoardController) DismissToast(c *fiber.Ctx) error {
	if err := bc.Toasts.Dismiss(helper.ReqCtx(c), owner(c), c.Params("id")); err != nil {
		log.Printf("[WARN] dismiss toast: %v", err)
	}
	if wantsJSON(c) {
		return helper.JsonOK(c, "Dismissed", bc.toasts(c))
	}
	return c.Redirect(boardPath, fiber.StatusSeeOther)
}

/* =========================================================
   History
   ========================================================= */

// GET /admin/history?start_date&end_date&group_id&teacher_id
func (bc *BoardController) History(c *fiber.Ctx) error {
	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	data := fiber.Map{
		"Title":    "Lesson history",
		"Username": owner(c),
		"Query":    q,
	}

	f, err := statsDTO.StatisticsQuery{
		StartDate: q.StartDate, EndDate: q.EndDate, GroupID: q.GroupID, TeacherID: q.TeacherID,
	}.ToFilter(dbtime.NowInCollege())
	if err != nil {
		data["Banner"] = err.Error()
		return c.Status(fiber.StatusBadRequest).Render("history", data, "layouts/main")
	}
	period := statsDTO.NewPeriod(f)
	lq := model.LessonQuery{
		StartDate: period.StartDate,
		EndDate:   period.EndDate,
		GroupID:   strings.TrimSpace(q.GroupID),
		TeacherID: strings.TrimSpace(q.TeacherID),
	}
	data["Period"] = period

	ctx := helper.ReqCtx(c)
	stats, err := bc.HistorySource.Statistics(ctx, lq)
	if err != nil {
		data["Banner"] = "Failed to load statistics: " + engine.Describe(err)
		return c.Render("history", data, "layouts/main")
	}
	records, err := bc.HistorySource.Lessons(ctx, lq)
	if err != nil {
		data["Banner"] = "Failed to load lessons: " + engine.Describe(err)
		return c.Render("history", data, "layouts/main")
	}

	b := bc.board(c)
	snap := b.Snapshot()
	data["Stats"] = stats
	data["Lessons"] = b.Cards(records)
	data["Groups"] = snap.Groups
	data["Teachers"] = snap.Teachers
	data["Weekdays"] = weekdayCounts(stats)
	ev := url.Values{"start_date": {period.StartDate}, "end_date": {period.EndDate}}
	if lq.GroupID != "" {
		ev.Set("group_id", lq.GroupID)
	}
	if lq.TeacherID != "" {
		ev.Set("teacher_id", lq.TeacherID)
	}
	data["ExportURL"] = "/api/v1/statistics/lessons/export?" + ev.Encode()

	if wantsJSON(c) {
		return helper.JsonOK(c, "OK", fiber.Map{"statistics": stats, "lessons": data["Lessons"]})
	}
	return c.Render("history", data, "layouts/main")
}

type dayCount struct {
	Name  string
	Count int64
}

// weekdayCounts orders the by-day map Monday..Sunday for the template.
func weekdayCounts(s statsDTO.LessonStatistics) []dayCount {
	out := make([]dayCount, 0, 7)
	for d := constants.Monday; d <= constants.Sunday; d++ {
		name := constants.WeekdayName(d)
		out = append(out, dayCount{Name: name, Count: s.ByDayOfWeek[name]})
	}
	return out
}
