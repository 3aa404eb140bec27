package helper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapPGError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{gorm.ErrRecordNotFound, http.StatusNotFound},
		{fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), http.StatusConflict},
		{&pgconn.PgError{Code: "23503"}, http.StatusBadRequest},
		{&pgconn.PgError{Code: "23514"}, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		got, _ := MapPGError(tc.err)
		assert.Equal(t, tc.want, got, tc.err.Error())
	}
}

type sample struct {
	Start string `json:"start_time" validate:"required,hhmm"`
	IIN   string `json:"iin"        validate:"required,iin"`
}

func TestValidatorTags(t *testing.T) {
	v := Validator()
	assert.NoError(t, v.Struct(sample{Start: "09:30", IIN: "123456789012"}))

	verr := v.Struct(sample{Start: "25:00", IIN: "12345"})
	require.Error(t, verr)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return ValidationError(c, verr) })
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body ErrorResponse
	require.NoError(t, sonic.Unmarshal(raw, &body))
	assert.Equal(t, "validation failed", body.Message)
	assert.Equal(t, []string{"hhmm"}, body.Errors["start_time"])
	assert.Equal(t, []string{"iin"}, body.Errors["iin"])
}
