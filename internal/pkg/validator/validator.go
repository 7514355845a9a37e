package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры запроса по тегам validate.
// Доменные проверки (категории, координаты, диапазоны дат) живут
// в обработчиках
func Validate(s interface{}) error {
	return validate.Struct(s)
}
