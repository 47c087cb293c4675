package models

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Bar-council enrollment ids vary by state ("MH/123/2015", "DL-2019",
// "ADV2020XYZ"); only the character set and a minimum length are enforced.
var enrollmentIDPattern = regexp.MustCompile(`^[A-Za-z0-9/_-]{3,64}$`)

// RegisterValidators wires the custom binding rules into gin's validator
// engine. Safe to call more than once.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("enrollment", func(fl validator.FieldLevel) bool {
			return enrollmentIDPattern.MatchString(fl.Field().String())
		})
	}
}
