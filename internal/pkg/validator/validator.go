package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/tourguide-client/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// tour_category: walking, cycling, mixed, "all" или пустая строка.
	_ = validate.RegisterValidation("tour_category", func(fl validator.FieldLevel) bool {
		return domain.ValidCategory(fl.Field().String())
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
