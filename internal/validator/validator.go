// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"wealthwise/internal/category"
)

var (
	isoDateRegex   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	yearMonthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
		_ = v.RegisterValidation("category_id", validateCategoryID)
		_ = v.RegisterValidation("iso_date", validateISODate)
		_ = v.RegisterValidation("year_month", validateYearMonth)
	}
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateCategoryID(fl validator.FieldLevel) bool {
	return category.IsKnown(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	return isoDateRegex.MatchString(fl.Field().String())
}

func validateYearMonth(fl validator.FieldLevel) bool {
	return yearMonthRegex.MatchString(fl.Field().String())
}
