package validation

import (
	"mordomia/internal/entity"
	"time"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the calendar tags used by request DTOs:
// "date" (YYYY-MM-DD) and "month" (YYYY-MM).
func New() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("date", layoutValidator(entity.DateLayout))
	_ = v.RegisterValidation("month", layoutValidator(entity.MonthLayout))

	return v
}

func layoutValidator(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(layout, fl.Field().String())
		return err == nil
	}
}
