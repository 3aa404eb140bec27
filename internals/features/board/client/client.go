// Package client talks to the college REST API (/api/v1) on behalf of the admin board.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"collegeschedule_backend/internals/features/board/model"
	statsDTO "collegeschedule_backend/internals/features/college/statistics/dto"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client with a fixed per-request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope is the {success, message, data, errors} body every endpoint answers with.
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(method, path, err)
	}

	var env envelope
	var envErr error
	if len(raw) > 0 {
		envErr = sonic.Unmarshal(raw, &env)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &model.APIError{Status: resp.StatusCode, Message: errorMessage(env)}
	}
	if envErr != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, envErr)
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := sonic.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func transportError(method, path string, err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return fmt.Errorf("%s %s: %w", method, path, model.ErrTimeout)
	}
	return fmt.Errorf("%s %s: %w (%v)", method, path, model.ErrUnreachable, err)
}

// errorMessage folds field errors into one line, fields sorted.
func errorMessage(env envelope) string {
	if len(env.Errors) == 0 {
		return env.Message
	}
	fields := make([]string, 0, len(env.Errors))
	for f := range env.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(env.Errors[f], ", "))
	}
	return strings.Join(parts, "; ")
}

/* =========================================================
   Endpoints
   ========================================================= */

func (c *Client) Groups(ctx context.Context) ([]model.Group, error) {
	var out []model.Group
	err := c.do(ctx, http.MethodGet, "/groups", nil, nil, &out)
	return out, err
}

func (c *Client) Teachers(ctx context.Context) ([]model.Teacher, error) {
	var out []model.Teacher
	err := c.do(ctx, http.MethodGet, "/teachers", nil, nil, &out)
	return out, err
}

func (c *Client) Subjects(ctx context.Context) ([]model.Subject, error) {
	var out []model.Subject
	err := c.do(ctx, http.MethodGet, "/subjects", nil, nil, &out)
	return out, err
}

func (c *Client) ActiveTimeSlots(ctx context.Context) ([]model.TimeSlot, error) {
	var out []model.TimeSlot
	q := url.Values{"is_active": {"true"}}
	err := c.do(ctx, http.MethodGet, "/time-slots", q, nil, &out)
	return out, err
}

func lessonValues(q model.LessonQuery) url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if strings.TrimSpace(val) != "" {
			v.Set(k, val)
		}
	}
	set("start_date", q.StartDate)
	set("end_date", q.EndDate)
	set("group_id", q.GroupID)
	set("teacher_id", q.TeacherID)
	if q.Shift != 0 {
		v.Set("shift", strconv.Itoa(q.Shift))
	}
	return v
}

func (c *Client) Lessons(ctx context.Context, q model.LessonQuery) ([]model.LessonRecord, error) {
	var out []model.LessonRecord
	err := c.do(ctx, http.MethodGet, "/lessons", lessonValues(q), nil, &out)
	return out, err
}

func (c *Client) AvailableLessons(ctx context.Context) ([]model.LessonRecord, error) {
	var out []model.LessonRecord
	err := c.do(ctx, http.MethodGet, "/lessons/available", nil, nil, &out)
	return out, err
}

func (c *Client) CreateLesson(ctx context.Context, in model.LessonInput) (model.LessonRecord, error) {
	var out model.LessonRecord
	err := c.do(ctx, http.MethodPost, "/lessons", nil, in, &out)
	return out, err
}

// UpdateLesson sends a partial update; the backend keeps fields the patch leaves nil.
func (c *Client) UpdateLesson(ctx context.Context, id string, p model.LessonPatch) (model.LessonRecord, error) {
	var out model.LessonRecord
	err := c.do(ctx, http.MethodPut, "/lessons/"+url.PathEscape(id), nil, p, &out)
	return out, err
}

func (c *Client) DeleteLesson(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/lessons/"+url.PathEscape(id), nil, nil, nil)
}

// Statistics feeds the history page; q uses the same filters as /lessons.
func (c *Client) Statistics(ctx context.Context, q model.LessonQuery) (statsDTO.LessonStatistics, error) {
	var out statsDTO.LessonStatistics
	v := lessonValues(q)
	v.Del("shift")
	err := c.do(ctx, http.MethodGet, "/statistics/lessons", v, nil, &out)
	return out, err
}
