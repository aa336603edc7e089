// Package validator adapts go-playground/validator to echo's Validator
// interface and registers the custom tags used by request DTOs.
package validator

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	ymdRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	hhmmRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Echo wraps a validator.Validate so it satisfies echo.Validator and
// handlers can call c.Validate(&req) directly.
type Echo struct {
	v *validator.Validate
}

// New builds the wrapper with the custom tags registered:
//
//	ymd  – calendar date as YYYY-MM-DD
//	hhmm – wall clock time as HH:MM
func New() *Echo {
	v := validator.New()
	_ = v.RegisterValidation("ymd", validateYMD)
	_ = v.RegisterValidation("hhmm", validateHHMM)
	return &Echo{v: v}
}

// Validate runs struct validation and flattens the first violation into
// a plain error message suitable for a 400 response body.
func (e *Echo) Validate(i any) error {
	err := e.v.Struct(i)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return err
	}
	ve := vErrs[0]
	var msg string
	switch ve.Tag() {
	case "required":
		msg = "field is required"
	case "email":
		msg = "invalid email address"
	case "max":
		msg = "value exceeds maximum"
	case "min", "gt", "gte":
		msg = "value below minimum"
	case "oneof":
		msg = "value not in allowed set"
	case "ymd":
		msg = "expected date as YYYY-MM-DD"
	case "hhmm":
		msg = "expected time as HH:MM"
	default:
		msg = "invalid value"
	}
	return errors.New(ve.Field() + ": " + msg)
}

func validateYMD(fl validator.FieldLevel) bool {
	return ymdRegex.MatchString(fl.Field().String())
}

func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmRegex.MatchString(fl.Field().String())
}
