package handler

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/serviceflow/serviceflow-api/internal/modules/model"
)

func init() {
	registerValidators()
}

// registerValidators lets binding tags such as required see through
// LocalTime to the wall clock it wraps.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if t, ok := field.Interface().(model.LocalTime); ok && !t.IsZero() {
			return t.Time
		}
		return nil
	}, model.LocalTime{})
}
