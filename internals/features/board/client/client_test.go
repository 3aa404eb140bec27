package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegeschedule_backend/internals/features/board/model"
	helper "collegeschedule_backend/internals/helpers"
)

func serve(t *testing.T, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String() + "/api/v1"
}

func testApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api/v1")

	api.Get("/groups", func(c *fiber.Ctx) error {
		return helper.JsonList(c, "ok", []fiber.Map{{"id": "g1", "name": "CS-21"}}, nil)
	})
	api.Get("/time-slots", func(c *fiber.Ctx) error {
		if c.Query("is_active") != "true" {
			return helper.JsonError(c, fiber.StatusBadRequest, "expected is_active")
		}
		return helper.JsonList(c, "ok", []fiber.Map{
			{"id": "s1", "shift": 1, "start_time": "09:00", "end_time": "09:45", "label": "09:00-09:45", "is_active": true},
		}, nil)
	})
	api.Get("/lessons", func(c *fiber.Ctx) error {
		return helper.JsonList(c, "ok", []fiber.Map{
			{"id": "l1", "group_id": "g1", "teacher_id": "t1", "subject_id": "s1", "room": "101",
				"date": "2024-06-12", "start_time": "09:00", "end_time": "09:45", "shift": c.QueryInt("shift", 1)},
		}, nil)
	})
	api.Post("/lessons", func(c *fiber.Ctx) error {
		return helper.JsonValidationError(c, map[string][]string{
			"room":     {"required"},
			"end_time": {"must be after start_time"},
		})
	})
	api.Delete("/lessons/:id", func(c *fiber.Ctx) error {
		if c.Params("id") == "gone" {
			return helper.JsonError(c, fiber.StatusNotFound, "lesson not found")
		}
		return helper.JsonDeleted(c, "deleted", fiber.Map{"id": c.Params("id")})
	})
	api.Put("/lessons/:id", func(c *fiber.Ctx) error {
		var body map[string]any
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "bad body")
		}
		if _, sent := body["group_id"]; sent {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id must not be sent")
		}
		return helper.JsonUpdated(c, "updated", fiber.Map{
			"id": c.Params("id"), "group_id": "g1", "teacher_id": "t1", "subject_id": "s1", "room": body["room"],
		})
	})
	api.Get("/teachers", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("<html>maintenance</html>")
	})
	api.Get("/subjects", func(c *fiber.Ctx) error {
		time.Sleep(300 * time.Millisecond)
		return helper.JsonList(c, "ok", []fiber.Map{}, nil)
	})
	return app
}

func TestClientDecodesEnvelope(t *testing.T) {
	c := New(serve(t, testApp()), 2*time.Second)
	ctx := context.Background()

	groups, err := c.Groups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "CS-21", groups[0].Name)

	slots, err := c.ActiveTimeSlots(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.True(t, slots[0].IsActive)

	lessons, err := c.Lessons(ctx, model.LessonQuery{Shift: 2})
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	require.NotNil(t, lessons[0].Shift)
	assert.Equal(t, 2, *lessons[0].Shift)

	l, err := model.Classify(lessons[0])
	require.NoError(t, err)
	assert.IsType(t, model.Instance{}, l)

	assert.NoError(t, c.DeleteLesson(ctx, "l1"))
}

func TestClientMapsErrors(t *testing.T) {
	c := New(serve(t, testApp()), 100*time.Millisecond)
	ctx := context.Background()

	_, err := c.CreateLesson(ctx, model.LessonInput{})
	var apiErr *model.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, fiber.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "end_time: must be after start_time; room: required", apiErr.Message)

	err = c.DeleteLesson(ctx, "gone")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, fiber.StatusNotFound, apiErr.Status)

	_, err = c.Subjects(ctx)
	assert.ErrorIs(t, err, model.ErrTimeout)
}

func TestClientUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := New("http://"+addr+"/api/v1", time.Second)
	_, err = c.Groups(context.Background())
	assert.ErrorIs(t, err, model.ErrUnreachable)
}

func TestClientUpdateSendsOnlyPatchedFields(t *testing.T) {
	c := New(serve(t, testApp()), 2*time.Second)
	room := "204"

	rec, err := c.UpdateLesson(context.Background(), "l1", model.LessonPatch{Room: &room})
	require.NoError(t, err)
	assert.Equal(t, "l1", rec.ID)
	assert.Equal(t, "204", rec.Room)
}

func TestClientRejectsUnparsableSuccessBody(t *testing.T) {
	c := New(serve(t, testApp()), 2*time.Second)

	teachers, err := c.Teachers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode GET /teachers")
	assert.Empty(t, teachers)

	var apiErr *model.APIError
	assert.False(t, errors.As(err, &apiErr))
}
