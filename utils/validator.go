package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JulieDelts/OnlineLearningPlatform/domain"
)

// RegisterCustomValidations registers custom validation rules.
func RegisterCustomValidations(v *validator.Validate) {
	v.RegisterValidation("role", validateRole)
}

func validateRole(fl validator.FieldLevel) bool {
	return domain.IsValidRole(fl.Field().String())
}

func TranslateValidationError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var messages []string
		for _, fe := range ve {
			field := fe.Field()
			switch fe.Tag() {
			case "required":
				messages = append(messages, field+" is required")
			case "email":
				messages = append(messages, "invalid email format")
			case "uuid":
				messages = append(messages, field+" must be a valid UUID")
			case "min":
				messages = append(messages, field+" must be at least "+fe.Param()+" characters")
			case "max":
				messages = append(messages, field+" must be at most "+fe.Param()+" characters")
			case "gt":
				messages = append(messages, field+" must be greater than "+fe.Param())
			case "gte":
				messages = append(messages, field+" must be greater than or equal to "+fe.Param())
			case "lte":
				messages = append(messages, field+" must be less than or equal to "+fe.Param())
			case "role":
				messages = append(messages, field+" must be one of: student, teacher, admin")
			default:
				messages = append(messages, field+" is invalid")
			}
		}
		return strings.Join(messages, ", ")
	}
	return err.Error()
}
