package server

import (
	"github.com/CPU-commits/Intranet_BRegistration/forms"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func InitValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("subjectId", forms.SubjectId)
	}
}
