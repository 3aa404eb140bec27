package engine

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"collegeschedule_backend/internals/constants"
	"collegeschedule_backend/internals/features/board/model"
)

var (
	ErrDuplicate      = errors.New("lesson already present in slot")
	ErrNoSelection    = errors.New("no lesson template selected")
	ErrUnknownLesson  = errors.New("lesson not found on the board")
	ErrSlotNotInShift = errors.New("time slot does not belong to the current shift")
	ErrBadView        = errors.New("weekday must be 1..7 and shift 1 or 2")
	ErrNotTemplate    = errors.New("a lesson template has no date or time")
	ErrEmptyEdit      = errors.New("nothing to update")
)

// Describe turns any board or backend error into the text shown to the admin.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *model.APIError
	switch {
	case errors.Is(err, ErrDuplicate):
		return constants.MsgDuplicateInSlot
	case errors.Is(err, model.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, model.ErrUnreachable):
		return "backend unreachable"
	case errors.As(err, &apiErr):
		switch {
		case apiErr.Status == http.StatusNotFound:
			return "resource not found"
		case apiErr.Status >= http.StatusInternalServerError:
			return "server error"
		case strings.TrimSpace(apiErr.Message) != "":
			return apiErr.Message
		default:
			return "request rejected"
		}
	case errors.Is(err, ErrNoSelection), errors.Is(err, ErrUnknownLesson),
		errors.Is(err, ErrSlotNotInShift), errors.Is(err, ErrBadView), errors.Is(err, ErrNotTemplate),
		errors.Is(err, ErrEmptyEdit):
		return err.Error()
	}
	return "unexpected error"
}
