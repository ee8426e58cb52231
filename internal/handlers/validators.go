package handlers

import (
	"github.com/SscSPs/finance_dashboard_app/internal/utils/dates"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators wires domain-specific binding rules into gin's
// validator engine.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// txndate accepts any date string the statement parser recognizes.
		_ = v.RegisterValidation("txndate", func(fl validator.FieldLevel) bool {
			_, ok := dates.ParseDate(fl.Field().String())
			return ok
		})
	}
}
