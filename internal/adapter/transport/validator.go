package transport

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/coursecraft/coursecraft/internal/core"
)

// RegisterValidations installs the domain value validations used by the
// request DTO binding tags.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("lessontype", func(fl validator.FieldLevel) bool {
		return core.LessonType(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("courselevel", func(fl validator.FieldLevel) bool {
		return core.CourseLevel(fl.Field().String()).Valid()
	})
}
