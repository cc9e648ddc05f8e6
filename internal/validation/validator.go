package validation

import (
	"regexp"

	"github.com/caterquest/caterquest/internal/models"
	"github.com/go-playground/validator/v10"
)

var phone = regexp.MustCompile(`^\+?\d{7,15}$`)

// New создает валидатор с доменными правилами: роль учетной записи и телефон.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phone.MatchString(fl.Field().String())
	})
	return v
}
