package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapPGError maps SQLSTATE codes to HTTP status + message.
// 23505 = unique_violation, 23503 = foreign_key_violation, 23514 = check_violation.
func MapPGError(err error) (int, string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "record not found"
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return http.StatusConflict, "Duplicate data (unique violation)."
		case "23503":
			return http.StatusBadRequest, "Referenced record not found (FK violation)."
		case "23514":
			return http.StatusBadRequest, "Value rejected by check constraint."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
