package helper

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"collegeschedule_backend/internals/helpers/dbtime"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with json field names and the
// project tags registered:
//
//	hhmm – "HH:MM" time of day
//	iin  – 12-digit national id
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, err := dbtime.ParseHM(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("iin", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if len(s) != 12 {
				return false
			}
			for _, r := range s {
				if r < '0' || r > '9' {
					return false
				}
			}
			return true
		})
		validate = v
	})
	return validate
}
