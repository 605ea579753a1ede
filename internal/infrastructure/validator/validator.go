package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/openforum/likeservice/internal/domain/entity"
)

// AppValidator wraps a validator.Validate instance for request validation.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator with the custom rules registered.
func NewValidator() *AppValidator {
	v := validator.New()
	_ = v.RegisterValidation("posttype", postTypeFL)
	return &AppValidator{validate: v}
}

// ValidateStruct validates a request struct against its validate tags.
func (av *AppValidator) ValidateStruct(s interface{}) error {
	return av.validate.Struct(s)
}

// RegisterCustomValidators registers custom validation functions with the Gin
// binding validator, so bound DTOs can use them in binding tags.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("posttype", postTypeFL)
	}
}

// postTypeFL accepts only the supported post kinds, in any letter case.
func postTypeFL(fl validator.FieldLevel) bool {
	_, ok := entity.ParsePostType(fl.Field().String())
	return ok
}
