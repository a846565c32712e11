package forms

import (
	"github.com/go-playground/validator/v10"
)

// RegisterForm carries the student's full desired selection, not a
// delta. An empty list is valid and drops every subscription.
type RegisterForm struct {
	Subjects []int64 `json:"subjects" binding:"omitempty,dive,subjectId" example:"101,104,230"`
}

var SubjectId validator.Func = func(fl validator.FieldLevel) bool {
	id, ok := fl.Field().Interface().(int64)
	return ok && id > 0
}
