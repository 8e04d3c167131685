// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Deal codes are short human-readable identifiers used in URLs alongside
// UUIDs, so the charset stays URL-safe and the length capped at 16.
var dealCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,16}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("deal_code", validateDealCode)
	}
}

func validateDealCode(fl validator.FieldLevel) bool {
	return dealCodeRegex.MatchString(fl.Field().String())
}
