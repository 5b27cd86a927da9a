package handlers

import (
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators installs binding-level validators used by request
// DTOs. Safe to call more than once.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("eventtype", func(fl validator.FieldLevel) bool {
		return domain.IsValidEventType(domain.EventType(fl.Field().String()))
	})
}
