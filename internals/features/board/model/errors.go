package model

import (
	"errors"
	"fmt"
)

var (
	ErrTimeout     = errors.New("request timed out")
	ErrUnreachable = errors.New("backend unreachable")
)

// APIError is a non-2xx answer from the REST backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend answered %d", e.Status)
	}
	return fmt.Sprintf("backend answered %d: %s", e.Status, e.Message)
}
